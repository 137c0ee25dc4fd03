package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/repositories"
	"github.com/tpms-simple/services"
)

// ActivityController exposes the audit trail
type ActivityController struct {
	activityService *services.ActivityService
}

// NewActivityController creates a new activity controller
func NewActivityController(ds *repositories.Dataset) *ActivityController {
	return &ActivityController{
		activityService: services.NewActivityService(ds),
	}
}

// RegisterRoutes registers activity routes
func (c *ActivityController) RegisterRoutes(router *gin.RouterGroup) {
	activity := router.Group("/activity")
	{
		activity.GET("", c.RecentActivity)
		activity.GET("/users/:id", c.UserActivity)
	}
}

// RecentActivity retrieves the newest audit entries
func (c *ActivityController) RecentActivity(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.activityService.Recent(limit),
	})
}

// UserActivity retrieves the audit entries recorded for one acting user
func (c *ActivityController) UserActivity(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.activityService.ForUser(ctx.Param("id")),
	})
}
