package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DontEatRice/bookmarks/internal/config"
	"github.com/DontEatRice/bookmarks/internal/entities"
)

// ContextKeyUser is the gin context key under which the authenticated user
// is stored.
const ContextKeyUser = "auth_user"

// UserResolver resolves a token subject to a persisted user record.
type UserResolver interface {
	GetUserByID(id uint) (*entities.User, error)
}

// Middleware authenticates requests via the Authorization bearer header.
// Each request moves through extract -> verify -> resolve -> attach; any
// failure rejects with 401 before the handler runs. No state is shared
// between requests.
type Middleware struct {
	users  UserResolver
	config config.Auth
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(users UserResolver, cfg config.Auth) *Middleware {
	return &Middleware{
		users:  users,
		config: cfg,
	}
}

// Handler returns a gin middleware that authenticates requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		claims, err := VerifyToken(token, []byte(m.config.JWTSecret))
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		// Fresh lookup: the claims are trusted for identity only, the user
		// record itself always comes from the store.
		user, err := m.users.GetUserByID(userID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "authentication required",
	})
}

// GetUser retrieves the authenticated user from the gin context.
func GetUser(c *gin.Context) (*entities.User, bool) {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user, true
		}
	}
	return nil, false
}

// GetUserID retrieves the authenticated user's ID from the gin context.
// Returns 0 if the request is not authenticated.
func GetUserID(c *gin.Context) uint {
	if user, ok := GetUser(c); ok {
		return user.ID
	}
	return 0
}
