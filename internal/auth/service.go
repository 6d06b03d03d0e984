package auth

import (
	"errors"
	"fmt"

	"github.com/DontEatRice/bookmarks/internal/config"
	"github.com/DontEatRice/bookmarks/internal/database/users"
	"github.com/DontEatRice/bookmarks/internal/entities"
)

// ErrInvalidCredentials is returned for both "no such user" and "wrong
// password" on signin. The two cases must stay indistinguishable to prevent
// account enumeration via differing error text.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore defines the user data access the service needs.
type UserStore interface {
	CreateUser(email, passwordHash string) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
}

// Service orchestrates signup and signin: credential hashing, persistence,
// verification and token issuance. Hashing and signing are delegated to
// bcrypt and the JWT library; the service only defines the claim shape and
// expiry policy.
type Service struct {
	users  UserStore
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(store UserStore, cfg config.Auth) *Service {
	return &Service{
		users:  store,
		config: cfg,
	}
}

// Signup registers a new user and returns an access token bound to the new
// identity. Returns users.ErrEmailTaken when the email is already
// registered; any other store failure propagates unchanged.
func (s *Service) Signup(email, password string) (string, error) {
	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(email, hash)
	if err != nil {
		return "", err
	}

	return s.signToken(user.ID, user.Email)
}

// Signin verifies credentials and returns an access token. A missing user
// and a password mismatch both return ErrInvalidCredentials.
func (s *Service) Signin(email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return s.signToken(user.ID, user.Email)
}

func (s *Service) signToken(userID uint, email string) (string, error) {
	return SignToken(userID, email, []byte(s.config.JWTSecret), s.config.TokenExpiry)
}
