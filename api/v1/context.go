package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/services"
)

// requestUser resolves the authenticated user behind the request. The
// middleware guarantees the claims exist; the account itself may have
// been deleted since the token was issued, which counts as unauthorized.
func requestUser(ctx *gin.Context, auth *services.AuthService) (models.User, bool) {
	userID, exists := ctx.Get("userId")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return models.User{}, false
	}

	user, err := auth.GetUser(userID.(string))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return models.User{}, false
	}
	return user, true
}
