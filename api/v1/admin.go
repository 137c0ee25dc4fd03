package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/repositories"
)

// AdminController handles administrative endpoints
type AdminController struct {
	ds *repositories.Dataset
}

// NewAdminController creates a new admin controller
func NewAdminController(ds *repositories.Dataset) *AdminController {
	return &AdminController{ds: ds}
}

// Reset clears every storage key and reloads the seed defaults. All data
// entered since the last reset is lost; the session snapshot is cleared
// as well.
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.ds.Reset(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset data: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "All data reset to seed defaults",
	})
}
