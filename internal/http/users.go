package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/database/users"
	"github.com/DontEatRice/bookmarks/internal/entities"
)

// UserStore defines database operations for user profile management.
type UserStore interface {
	UpdateUser(id uint, update users.UserUpdate) (*entities.User, error)
}

// UpdateUserRequest is the request body for partial profile edits.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserController handles the current-user endpoints.
type UserController struct {
	store UserStore
}

// NewUserController creates a new UserController.
func NewUserController(store UserStore) *UserController {
	return &UserController{store: store}
}

// GetMe returns the authenticated user. The password hash is excluded from
// the JSON serialization of the entity.
// GET /users/me
func (uc *UserController) GetMe(c *gin.Context) {
	user, ok := auth.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial profile update to the authenticated user only.
// PATCH /users
func (uc *UserController) UpdateMe(c *gin.Context) {
	user, ok := auth.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid profile fields")
		return
	}

	updated, err := uc.store.UpdateUser(user.ID, users.UserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			respondForbidden(c, users.ErrEmailTaken.Error())
			return
		}
		respondInternalError(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, updated)
}
