package main

import (
	"log/slog"
	"os"

	api "taskdeck-backend/cmd/api"
	authdomain "taskdeck-backend/internal/auth/domain"
	authRepo "taskdeck-backend/internal/auth/repository"
	authUsecase "taskdeck-backend/internal/auth/usecase"
	taskdomain "taskdeck-backend/internal/task/domain"
	taskRepo "taskdeck-backend/internal/task/repository"
	taskUsecase "taskdeck-backend/internal/task/usecase"
	"taskdeck-backend/pkg/config"
	"taskdeck-backend/pkg/database"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg)

	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
