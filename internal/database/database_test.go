package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DontEatRice/bookmarks/internal/entities"
)

func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestNewDatabase_MigratesEntities(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.True(t, db.DB.Migrator().HasTable(&entities.User{}))
	assert.True(t, db.DB.Migrator().HasTable(&entities.Bookmark{}))
}

func TestNewDatabase_TranslatesUniqueViolations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.DB.Create(&entities.User{Email: "123@example.com", PasswordHash: "h"}).Error)

	err := db.DB.Create(&entities.User{Email: "123@example.com", PasswordHash: "h"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDatabase_Ping(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, db.Ping())
}
