package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/config"
	"github.com/DontEatRice/bookmarks/internal/database"
	"github.com/DontEatRice/bookmarks/internal/database/bookmarks"
	"github.com/DontEatRice/bookmarks/internal/database/users"
)

const testJWTSecret = "test-secret"

// setupTestRouter wires a full router against a fresh sqlite database.
func setupTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cfg := config.Auth{
		JWTSecret:   testJWTSecret,
		TokenExpiry: 30 * time.Minute,
		BcryptCost:  bcrypt.MinCost,
	}

	usersRepo := users.NewRepository(db.DB)
	bookmarksRepo := bookmarks.NewRepository(db.DB)

	router := NewRouter(RouterConfig{
		Database:       db,
		AuthService:    auth.NewService(usersRepo, cfg),
		AuthMiddleware: auth.NewMiddleware(usersRepo, cfg),
		UserStore:      usersRepo,
		BookmarkStore:  bookmarksRepo,
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupUser registers a user and returns the issued access token.
func signupUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(router, "POST", "/auth/signup", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code, "signup response: %s", w.Body.String())

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}
