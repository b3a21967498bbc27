package usecase

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authdomain "taskmanager-api/internal/auth/domain"
	authrepo "taskmanager-api/internal/auth/repository"
	taskdomain "taskmanager-api/internal/task/domain"
	taskrepo "taskmanager-api/internal/task/repository"
	"taskmanager-api/internal/user/dto"
)

func setupUsecase(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewUserUsecase(authrepo.NewUserRepository(db)), db
}

func register(t *testing.T, uc UserUsecase, username string) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(dto.CreateUserRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return user
}

func TestRegister_HashesPassword(t *testing.T) {
	uc, db := setupUsecase(t)
	register(t, uc, "alice")

	var stored authdomain.User
	if err := db.First(&stored, "username = ?", "alice").Error; err != nil {
		t.Fatalf("failed to load stored user: %v", err)
	}

	if stored.Password == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if !authrepo.CheckPasswordHash("s3cretpass", stored.Password) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := setupUsecase(t)
	register(t, uc, "alice")

	_, err := uc.Register(dto.CreateUserRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "anotherpass",
	})
	if !errors.Is(err, authdomain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestTasksCount_DerivedPerRead(t *testing.T) {
	uc, db := setupUsecase(t)
	user := register(t, uc, "alice")

	if user.TasksCount != 0 {
		t.Fatalf("fresh user tasks_count = %d, want 0", user.TasksCount)
	}

	tasks := taskrepo.NewGormTaskRepository(db)
	for i := 0; i < 3; i++ {
		err := tasks.Create(&taskdomain.Task{
			UserID:   user.ID,
			Title:    "task",
			DueDate:  time.Now().Add(time.Hour),
			Priority: taskdomain.PriorityMedium,
			Status:   taskdomain.StatusPending,
		})
		if err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
	}

	got, err := uc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TasksCount != 3 {
		t.Fatalf("tasks_count = %d, want 3", got.TasksCount)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	uc, db := setupUsecase(t)
	user := register(t, uc, "alice")

	email := "new@example.com"
	updated, err := uc.Update(user.ID, dto.UpdateUserRequest{Email: &email})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Email != email {
		t.Errorf("email = %q, want %q", updated.Email, email)
	}
	if updated.Username != "alice" {
		t.Errorf("username changed unexpectedly to %q", updated.Username)
	}

	// Old password still valid: nothing but email was touched.
	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("failed to load stored user: %v", err)
	}
	if !authrepo.CheckPasswordHash("s3cretpass", stored.Password) {
		t.Fatal("password hash changed on an email-only update")
	}
}

func TestUpdate_RehashesPassword(t *testing.T) {
	uc, db := setupUsecase(t)
	user := register(t, uc, "alice")

	newPass := "brandnewpass"
	if _, err := uc.Update(user.ID, dto.UpdateUserRequest{Password: &newPass}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("failed to load stored user: %v", err)
	}
	if stored.Password == newPass {
		t.Fatal("password stored in plaintext")
	}
	if !authrepo.CheckPasswordHash(newPass, stored.Password) {
		t.Fatal("stored hash does not verify against the new password")
	}
	if authrepo.CheckPasswordHash("s3cretpass", stored.Password) {
		t.Fatal("old password still verifies after the change")
	}
}

func TestDelete_CascadesTasks(t *testing.T) {
	uc, db := setupUsecase(t)
	user := register(t, uc, "alice")

	tasks := taskrepo.NewGormTaskRepository(db)
	err := tasks.Create(&taskdomain.Task{
		UserID:   user.ID,
		Title:    "doomed",
		DueDate:  time.Now().Add(time.Hour),
		Priority: taskdomain.PriorityMedium,
		Status:   taskdomain.StatusPending,
	})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	if err := uc.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var taskCount int64
	db.Model(&taskdomain.Task{}).Where("user_id = ?", user.ID).Count(&taskCount)
	if taskCount != 0 {
		t.Fatalf("expected owned tasks to cascade, %d remain", taskCount)
	}

	if _, err := uc.Get(user.ID); !errors.Is(err, authdomain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
