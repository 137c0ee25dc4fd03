package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/middleware"
	"github.com/tpms-simple/repositories"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, ds *repositories.Dataset) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authController := NewAuthController(ds)
	userController := NewUserController(ds)
	projectController := NewProjectController(ds)
	taskController := NewTaskController(ds)
	notificationController := NewNotificationController(ds)
	activityController := NewActivityController(ds)
	statsController := NewStatsController(ds)
	adminController := NewAdminController(ds)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}

	// Everything below requires authentication
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	userController.RegisterRoutes(authRouter)
	projectController.RegisterRoutes(authRouter)
	taskController.RegisterRoutes(authRouter)
	notificationController.RegisterRoutes(authRouter)
	activityController.RegisterRoutes(authRouter)
	statsController.RegisterRoutes(authRouter)

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := authRouter.Group("/admin")
	adminGroup.Use(middleware.AdminMiddleware())
	{
		adminGroup.POST("/reset", adminController.Reset)
	}
}
