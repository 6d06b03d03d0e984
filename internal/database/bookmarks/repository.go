// Package bookmarks provides database operations for bookmark management.
//
// # Usage
//
//	repo := bookmarks.NewRepository(db)
//	list, err := repo.GetBookmarksByUser(userID)
package bookmarks

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DontEatRice/bookmarks/internal/entities"
)

// ErrBookmarkNotFound is returned when no bookmark matches the lookup.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// Repository handles all bookmark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBookmark persists a new bookmark. The UserID must already be set to
// the authenticated owner by the caller.
func (r *Repository) CreateBookmark(bookmark *entities.Bookmark) error {
	if err := r.db.Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// GetBookmarksByUser returns all bookmarks owned by the given user,
// newest first.
func (r *Repository) GetBookmarksByUser(userID uint) ([]entities.Bookmark, error) {
	list := []entities.Bookmark{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// GetBookmarkByID retrieves a bookmark by ID.
func (r *Repository) GetBookmarkByID(id uint) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := r.db.First(&bookmark, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}
	return &bookmark, nil
}

// UpdateBookmark applies a partial update to the bookmark with the given ID
// and returns the updated record. Only non-nil fields are changed. The owner
// field is never touched.
func (r *Repository) UpdateBookmark(id uint, update BookmarkUpdate) (*entities.Bookmark, error) {
	changes := map[string]any{}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Link != nil {
		changes["link"] = *update.Link
	}

	if len(changes) > 0 {
		result := r.db.Model(&entities.Bookmark{}).Where("id = ?", id).Updates(changes)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update bookmark: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrBookmarkNotFound
		}
	}

	return r.GetBookmarkByID(id)
}

// DeleteBookmark removes the bookmark with the given ID.
func (r *Repository) DeleteBookmark(id uint) error {
	result := r.db.Delete(&entities.Bookmark{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

// BookmarkUpdate describes a partial bookmark edit. Nil fields are left
// untouched.
type BookmarkUpdate struct {
	Title       *string
	Description *string
	Link        *string
}
