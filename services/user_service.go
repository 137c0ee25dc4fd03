package services

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

// UserService handles business logic for team members
type UserService struct {
	users *repositories.UserRepository
	logs  *repositories.ActivityLogRepository
}

// NewUserService creates a new user service instance
func NewUserService(ds *repositories.Dataset) *UserService {
	return &UserService{
		users: repositories.NewUserRepository(ds),
		logs:  repositories.NewActivityLogRepository(ds),
	}
}

// ListUsers retrieves all users with password hashes removed
func (s *UserService) ListUsers() []models.User {
	all := s.users.FindAll()
	users := make([]models.User, 0, len(all))
	for _, u := range all {
		users = append(users, u.Sanitized())
	}
	return users
}

// GetUser retrieves a user by id
func (s *UserService) GetUser(id string) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return models.User{}, err
	}
	return user.Sanitized(), nil
}

// CreateUser creates a new account with a hashed password. Email
// uniqueness is not enforced; duplicate emails make the login winner
// undefined, as in the original tool.
func (s *UserService) CreateUser(req dto.CreateUserRequest, actorID string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user, err := s.users.Create(models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       req.Role,
		Avatar:     req.Avatar,
		Department: req.Department,
		Phone:      req.Phone,
		IsActive:   active,
	})
	if err != nil {
		return models.User{}, err
	}

	s.record(actorID, "created", user.ID, fmt.Sprintf("Created user %q", user.Name))
	return user.Sanitized(), nil
}

// UpdateUser merges the non-nil request fields into the stored user
func (s *UserService) UpdateUser(id string, req dto.UpdateUserRequest, actorID string) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hash)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.users.Update(user); err != nil {
		return models.User{}, err
	}

	s.record(actorID, "updated", user.ID, fmt.Sprintf("Updated user %q", user.Name))
	return user.Sanitized(), nil
}

// DeleteUser removes a user. Tasks assigned to the user keep their
// assignee id as a tombstone.
func (s *UserService) DeleteUser(id string, actorID string) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(id); err != nil {
		return err
	}
	s.record(actorID, "deleted", id, fmt.Sprintf("Deleted user %q", user.Name))
	return nil
}

func (s *UserService) record(actorID, action, entityID, details string) {
	if _, err := s.logs.Append(models.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: models.EntityUser,
		EntityID:   entityID,
		Details:    details,
	}); err != nil {
		// Audit failures never veto the primary operation
		log.Printf("Warning: failed to record activity: %v", err)
	}
}
