package usecase

import (
	authdomain "taskmanager-api/internal/auth/domain"
	"taskmanager-api/internal/auth/repository"
	"taskmanager-api/internal/user/dto"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) Register(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrUsernameTaken
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return u.serialize(user)
}

func (u *userUsecase) List() ([]*dto.UserResponse, error) {
	users, err := u.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp, err := u.serialize(user)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (u *userUsecase) Get(id string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return u.serialize(user)
}

func (u *userUsecase) Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	if req.Username != nil && *req.Username != user.Username {
		other, err := u.userRepo.FindByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, authdomain.ErrUsernameTaken
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return u.serialize(user)
}

func (u *userUsecase) Delete(id string) error {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUserNotFound
	}
	return u.userRepo.Delete(id)
}

// serialize builds the public account shape, recomputing the owned-task
// count so it can never go stale.
func (u *userUsecase) serialize(user *authdomain.User) (*dto.UserResponse, error) {
	count, err := u.userRepo.CountTasks(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		DateJoined: user.DateJoined,
		TasksCount: count,
	}, nil
}
