package repositories

import (
	"time"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/utils"
)

// UserRepository handles store operations for users
type UserRepository struct {
	ds *Dataset
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(ds *Dataset) *UserRepository {
	return &UserRepository{ds: ds}
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() []models.User {
	return r.ds.Users
}

// FindByID retrieves a user by id
func (r *UserRepository) FindByID(id string) (models.User, error) {
	for _, u := range r.ds.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByEmail retrieves a user by email address. When duplicate emails
// exist the first match wins; uniqueness is not enforced.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	for _, u := range r.ds.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Create stamps a fresh id, appends the user and persists the collection
func (r *UserRepository) Create(user models.User) (models.User, error) {
	user.ID = utils.GenerateEntityID(utils.PrefixUser)
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now().UTC()
	}
	r.ds.Users = append(r.ds.Users, user)
	if err := r.ds.persistUsers(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update replaces the user with the matching id
func (r *UserRepository) Update(user models.User) error {
	for i := range r.ds.Users {
		if r.ds.Users[i].ID == user.ID {
			r.ds.Users[i] = user
			return r.ds.persistUsers()
		}
	}
	return ErrNotFound
}

// Delete removes the user with the matching id
func (r *UserRepository) Delete(id string) error {
	for i := range r.ds.Users {
		if r.ds.Users[i].ID == id {
			r.ds.Users = append(r.ds.Users[:i], r.ds.Users[i+1:]...)
			return r.ds.persistUsers()
		}
	}
	return ErrNotFound
}

// CountActive counts users with the active flag set
func (r *UserRepository) CountActive() int {
	count := 0
	for _, u := range r.ds.Users {
		if u.IsActive {
			count++
		}
	}
	return count
}
