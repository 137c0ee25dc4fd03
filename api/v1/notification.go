package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/repositories"
	"github.com/tpms-simple/services"
)

// NotificationController handles notification API endpoints
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new notification controller
func NewNotificationController(ds *repositories.Dataset) *NotificationController {
	return &NotificationController{
		notificationService: services.NewNotificationService(ds),
	}
}

// RegisterRoutes registers notification routes
func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", c.ListNotifications)
		notifications.GET("/unread-count", c.UnreadCount)
		notifications.PATCH("/:id/read", c.MarkRead)
		notifications.POST("/read-all", c.MarkAllRead)
	}
}

// ListNotifications retrieves the caller's notifications, newest first
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.notificationService.ListForUser(userID),
	})
}

// UnreadCount retrieves the caller's unread notification count
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"count": c.notificationService.UnreadCount(userID)},
	})
}

// MarkRead flags one notification as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to mark notification read: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification marked as read",
	})
}

// MarkAllRead flags every notification addressed to the caller as read
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	if err := c.notificationService.MarkAllRead(userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark notifications read: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All notifications marked as read",
	})
}
