package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
)

func TestLoginSuccess(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewAuthService(ds)

	resp, err := svc.Login(dto.LoginRequest{Email: "sarah@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-a1b2c3d4", resp.User.ID)
	assert.Empty(t, resp.User.Password, "password hash never leaves the service")

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-a1b2c3d4", claims.UserID)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewAuthService(ds)

	_, err := svc.Login(dto.LoginRequest{Email: "sarah@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())

	// Unknown email yields the same message, no account enumeration
	_, err = svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	ds := newTestDataset(t)
	users := NewUserService(ds)

	inactive := false
	_, err := users.UpdateUser("user-c9d0e1f2", dto.UpdateUserRequest{IsActive: &inactive}, "user-a1b2c3d4")
	require.NoError(t, err)

	_, err = NewAuthService(ds).Login(dto.LoginRequest{Email: "priya@example.com", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, "account is deactivated", err.Error())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateToken("user-x", "x@example.com", "admin")
	assert.Error(t, err)
}
