package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/database/users"
)

// AuthRequest is the request body for both signup and signin.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles signup and signin.
type AuthController struct {
	service *auth.Service
}

// NewAuthController creates a new AuthController.
func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// Signup registers a new user.
// POST /auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	token, err := ac.service.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			respondForbidden(c, users.ErrEmailTaken.Error())
			return
		}
		if errors.Is(err, auth.ErrPasswordTooLong) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "signup")
		return
	}

	respondCreated(c, TokenResponse{AccessToken: token})
}

// Signin verifies credentials and issues an access token.
// POST /auth/signin
func (ac *AuthController) Signin(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	token, err := ac.service.Signin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondForbidden(c, auth.ErrInvalidCredentials.Error())
			return
		}
		respondInternalError(c, err, "signin")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}
