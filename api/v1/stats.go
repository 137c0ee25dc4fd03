package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/repositories"
	"github.com/tpms-simple/services"
)

// StatsController exposes the role-scoped aggregate views
type StatsController struct {
	statsService *services.StatsService
	authService  *services.AuthService
}

// NewStatsController creates a new stats controller
func NewStatsController(ds *repositories.Dataset) *StatsController {
	return &StatsController{
		statsService: services.NewStatsService(ds),
		authService:  services.NewAuthService(ds),
	}
}

// RegisterRoutes registers stats routes
func (c *StatsController) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/dashboard", c.Dashboard)
		stats.GET("/progress", c.Progress)
	}
}

// Dashboard retrieves the headline numbers for the caller's scope
func (c *StatsController) Dashboard(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.statsService.Dashboard(user),
	})
}

// Progress retrieves the full aggregate view for the caller's scope
func (c *StatsController) Progress(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.statsService.Progress(user),
	})
}
