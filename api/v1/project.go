package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
	"github.com/tpms-simple/services"
)

// ProjectController handles project API endpoints
type ProjectController struct {
	projectService *services.ProjectService
	statsService   *services.StatsService
	authService    *services.AuthService
}

// NewProjectController creates a new project controller
func NewProjectController(ds *repositories.Dataset) *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(ds),
		statsService:   services.NewStatsService(ds),
		authService:    services.NewAuthService(ds),
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.POST("", c.CreateProject)
		projects.GET("/:id", c.GetProject)
		projects.PUT("/:id", c.UpdateProject)
		projects.DELETE("/:id", c.DeleteProject)
		projects.GET("/:id/tasks", c.GetProjectTasks)
		projects.GET("/:id/stats", c.GetProjectStats)
	}
}

// ListProjects retrieves the projects within the caller's role scope
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	projects := c.projectService.ListProjects(user)
	if projects == nil {
		projects = []models.Project{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject retrieves one project within the caller's role scope
func (c *ProjectController) GetProject(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	project, err := c.projectService.GetProject(ctx.Param("id"), user)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// GetProjectTasks retrieves the tasks of one project
func (c *ProjectController) GetProjectTasks(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	tasks, err := c.projectService.GetProjectTasks(ctx.Param("id"), user)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// GetProjectStats retrieves the per-project dashboard payload
func (c *ProjectController) GetProjectStats(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	stats, err := c.statsService.ProjectStats(ctx.Param("id"), user)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to get project statistics: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// CreateProject creates a new project (admins and project managers)
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}
	if user.Role == models.RoleTeamMember {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Project manager privileges required"})
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// A manager can only create projects they manage themselves
	if user.Role == models.RoleProjectManager {
		req.ManagerID = user.ID
	}

	project, err := c.projectService.CreateProject(req, user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject updates an existing project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	projectID := ctx.Param("id")
	existing, err := c.projectService.GetProject(projectID, user)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}
	if !user.IsAdmin() && existing.ManagerID != user.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Only the project manager can update this project"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := c.projectService.UpdateProject(projectID, req, user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update project: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject deletes a project and cascades to its tasks
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	projectID := ctx.Param("id")
	existing, err := c.projectService.GetProject(projectID, user)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found or access denied: " + err.Error(),
		})
		return
	}
	if !user.IsAdmin() && existing.ManagerID != user.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Only the project manager can delete this project"})
		return
	}

	if err := c.projectService.DeleteProject(projectID, user.ID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to delete project: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}
