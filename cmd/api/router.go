package api

import (
	"net/http"

	"taskdeck-backend/internal/auth/delivery"
	authUsecase "taskdeck-backend/internal/auth/usecase"
	taskDelivery "taskdeck-backend/internal/task/delivery"
	taskUsecasePkg "taskdeck-backend/internal/task/usecase"
	"taskdeck-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Profile routes (protected)
	profile := r.Group("/profile")
	profile.Use(delivery.AuthMiddleware(authUc))
	{
		profile.GET("", authHandler.Profile)
		profile.PUT("", authHandler.UpdateProfile)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(delivery.AuthMiddleware(authUc))
	{
		tasks.GET("", taskHandler.GetTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
