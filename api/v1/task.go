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

// TaskController handles task API endpoints
type TaskController struct {
	taskService *services.TaskService
	authService *services.AuthService
}

// NewTaskController creates a new task controller
func NewTaskController(ds *repositories.Dataset) *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(ds),
		authService: services.NewAuthService(ds),
	}
}

// RegisterRoutes registers task routes
func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", c.ListTasks)
		tasks.POST("", c.CreateTask)
		tasks.GET("/:id", c.GetTask)
		tasks.PUT("/:id", c.UpdateTask)
		tasks.DELETE("/:id", c.DeleteTask)
		tasks.PATCH("/:id/status", c.UpdateTaskStatus)
		tasks.POST("/:id/comments", c.AddComment)
		tasks.POST("/:id/subtasks", c.AddSubTask)
		tasks.PATCH("/:id/subtasks/:subtaskId/toggle", c.ToggleSubTask)
	}
}

// ListTasks retrieves the tasks within the caller's role scope
func (c *TaskController) ListTasks(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	tasks := c.taskService.ListTasks(user)
	if tasks == nil {
		tasks = []models.Task{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tasks,
	})
}

// GetTask retrieves one task by id
func (c *TaskController) GetTask(ctx *gin.Context) {
	task, err := c.taskService.GetTask(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Task not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// CreateTask creates a new task
func (c *TaskController) CreateTask(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := c.taskService.CreateTask(req, user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// UpdateTask merges a partial update into an existing task
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Param("id"), req, user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// UpdateTaskStatus moves a task to a new workflow state
func (c *TaskController) UpdateTaskStatus(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := c.taskService.ChangeStatus(ctx.Param("id"), req.Status, user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update task status: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}

// DeleteTask removes a task
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	if err := c.taskService.DeleteTask(ctx.Param("id"), user.ID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to delete task: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Task deleted successfully",
	})
}

// AddComment appends a comment to a task
func (c *TaskController) AddComment(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := c.taskService.AddComment(ctx.Param("id"), req, user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to add comment: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// AddSubTask appends a checklist entry to a task
func (c *TaskController) AddSubTask(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	var req dto.AddSubTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := c.taskService.AddSubTask(ctx.Param("id"), req, user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to add subtask: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   task,
	})
}

// ToggleSubTask flips a checklist entry and recomputes task progress
func (c *TaskController) ToggleSubTask(ctx *gin.Context) {
	user, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	task, err := c.taskService.ToggleSubTask(ctx.Param("id"), ctx.Param("subtaskId"), user.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to toggle subtask: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   task,
	})
}
