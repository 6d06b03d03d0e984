package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DontEatRice/bookmarks/internal/database/users"
	"github.com/DontEatRice/bookmarks/internal/entities"
)

// fakeUserResolver resolves user IDs from a fixed map.
type fakeUserResolver struct {
	byID map[uint]*entities.User
}

func (f *fakeUserResolver) GetUserByID(id uint) (*entities.User, error) {
	user, exists := f.byID[id]
	if !exists {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func setupMiddlewareRouter(t *testing.T) (*gin.Engine, *fakeUserResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := &fakeUserResolver{byID: map[uint]*entities.User{
		1: {ID: 1, Email: "123@example.com"},
	}}
	middleware := NewMiddleware(resolver, testAuthConfig())

	router := gin.New()
	router.GET("/protected", middleware.Handler(), func(c *gin.Context) {
		user, ok := GetUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "email": user.Email})
	})
	return router, resolver
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_ValidToken(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	token, err := SignToken(1, "123@example.com", []byte("test-secret"), 30*time.Minute)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "123@example.com")
}

func TestMiddleware_MissingHeader(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
		w := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	token, err := SignToken(1, "123@example.com", []byte("test-secret"), -time.Minute)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_TamperedToken(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	token, err := SignToken(1, "123@example.com", []byte("test-secret"), 30*time.Minute)
	require.NoError(t, err)

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	w := doRequest(router, "Bearer "+string(tampered))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_UnknownSubject(t *testing.T) {
	router, _ := setupMiddlewareRouter(t)

	// Valid signature but the subject no longer resolves to a stored user
	token, err := SignToken(999, "ghost@example.com", []byte("test-secret"), 30*time.Minute)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
