// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── users/           # User creation, lookup and profile updates
//	└── bookmarks/       # Bookmark CRUD operations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookmarks.db")
//
//	// Create domain-specific repositories
//	usersRepo := users.NewRepository(db.DB)
//	bookmarksRepo := bookmarks.NewRepository(db.DB)
//
//	// Use repositories
//	user, err := usersRepo.GetUserByEmail("ada@example.com")
//	list, err := bookmarksRepo.GetBookmarksByUser(user.ID)
//
// # Adding a New Domain
//
// To add a new domain:
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the required interface
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
