// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail(email)
package users

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DontEatRice/bookmarks/internal/entities"
)

var (
	// ErrEmailTaken is returned when the email unique index rejects an insert
	// or update. Uniqueness is enforced by the database constraint only, so
	// two concurrent signups with the same email yield exactly one success.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser persists a new user with the given email and password hash.
// Returns ErrEmailTaken when the email is already registered.
func (r *Repository) CreateUser(email, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial profile update to the user with the given ID
// and returns the updated record. Only non-nil fields are changed.
// Returns ErrEmailTaken when changing the email collides with another user.
func (r *Repository) UpdateUser(id uint, update UserUpdate) (*entities.User, error) {
	changes := map[string]any{}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if update.FirstName != nil {
		changes["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		changes["last_name"] = *update.LastName
	}

	if len(changes) > 0 {
		result := r.db.Model(&entities.User{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to update user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return r.GetUserByID(id)
}

// UserUpdate describes a partial profile edit. Nil fields are left untouched.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}
