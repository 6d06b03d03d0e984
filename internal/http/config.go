package http

import (
	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter for
// better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// Stores
	UserStore     UserStore
	BookmarkStore BookmarkStore

	// Application info
	Version string
}
