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

// UserController handles team member API endpoints
type UserController struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserController creates a new user controller
func NewUserController(ds *repositories.Dataset) *UserController {
	return &UserController{
		userService: services.NewUserService(ds),
		authService: services.NewAuthService(ds),
	}
}

// RegisterRoutes registers user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", c.ListUsers)
		users.POST("", c.CreateUser)
		users.GET("/:id", c.GetUser)
		users.PUT("/:id", c.UpdateUser)
		users.DELETE("/:id", c.DeleteUser)
	}
}

// ListUsers retrieves the full team roster
func (c *UserController) ListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   c.userService.ListUsers(),
	})
}

// GetUser retrieves one user by id
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUser(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// CreateUser creates a new account (admin only)
func (c *UserController) CreateUser(ctx *gin.Context) {
	actor, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Admin privileges required"})
		return
	}

	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := c.userService.CreateUser(req, actor.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   user,
	})
}

// UpdateUser updates an account. Users may update themselves; only
// admins may update others.
func (c *UserController) UpdateUser(ctx *gin.Context) {
	actor, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}

	id := ctx.Param("id")
	if !actor.IsAdmin() && actor.ID != id {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "You can only update your own profile"})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	// Only admins may change roles
	if req.Role != nil && !actor.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Admin privileges required to change roles"})
		return
	}

	user, err := c.userService.UpdateUser(id, req, actor.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to update user: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// DeleteUser removes an account (admin only)
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actor, ok := requestUser(ctx, c.authService)
	if !ok {
		return
	}
	if actor.Role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Admin privileges required"})
		return
	}

	if err := c.userService.DeleteUser(ctx.Param("id"), actor.ID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repositories.ErrNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{
			"status":  "error",
			"message": "Failed to delete user: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
