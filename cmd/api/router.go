package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "taskmanager-api/internal/auth/delivery"
	authUsecase "taskmanager-api/internal/auth/usecase"
	taskDelivery "taskmanager-api/internal/task/delivery"
	taskUsecase "taskmanager-api/internal/task/usecase"
	userDelivery "taskmanager-api/internal/user/delivery"
	userUsecase "taskmanager-api/internal/user/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, taskUc taskUsecase.TaskUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	// Static pages
	r.GET("/", Welcome)
	r.GET("/api-docs", APIDocs)
	r.GET("/tasks", authDelivery.AuthOptional(authUc), taskHandler.TasksPage)

	// Session endpoints
	auth := r.Group("/api-auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authDelivery.AuthRequired(authUc), authHandler.Me)
	}

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes: registration is open, everything else requires a
		// caller; no per-row ownership beyond that.
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)

			authed := users.Group("", authDelivery.AuthRequired(authUc))
			{
				authed.GET("", userHandler.GetUsers)
				authed.GET("/:id", userHandler.GetUserByID)
				authed.PUT("/:id", userHandler.UpdateUser)
				authed.PATCH("/:id", userHandler.UpdateUser)
				authed.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Task routes: the list answers anonymous callers with an empty
		// set, every other operation requires a caller.
		tasks := api.Group("/tasks")
		{
			tasks.GET("", authDelivery.AuthOptional(authUc), taskHandler.GetTasks)

			authed := tasks.Group("", authDelivery.AuthRequired(authUc))
			{
				authed.POST("", taskHandler.CreateTask)
				authed.GET("/:id", taskHandler.GetTaskByID)
				authed.PUT("/:id", taskHandler.UpdateTask)
				authed.PATCH("/:id", taskHandler.UpdateTask)
				authed.DELETE("/:id", taskHandler.DeleteTask)
				authed.POST("/:id/mark_status", taskHandler.MarkStatus)
			}
		}
	}
}
