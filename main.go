package main

import (
	api "taskmanager-api/cmd/api"
	authdomain "taskmanager-api/internal/auth/domain"
	authRepo "taskmanager-api/internal/auth/repository"
	authUsecase "taskmanager-api/internal/auth/usecase"
	taskdomain "taskmanager-api/internal/task/domain"
	taskRepo "taskmanager-api/internal/task/repository"
	taskUsecase "taskmanager-api/internal/task/usecase"
	userUsecase "taskmanager-api/internal/user/usecase"
	"taskmanager-api/pkg/config"
	"taskmanager-api/pkg/database"
	"taskmanager-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	userUc := userUsecase.NewUserUsecase(userRepository)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, taskUc, cfg)

	log.Info().Str("port", cfg.Port).Str("driver", cfg.Database.Driver).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
