package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/database/bookmarks"
	"github.com/DontEatRice/bookmarks/internal/entities"
)

// BookmarkStore defines database operations for bookmark management.
type BookmarkStore interface {
	CreateBookmark(bookmark *entities.Bookmark) error
	GetBookmarksByUser(userID uint) ([]entities.Bookmark, error)
	GetBookmarkByID(id uint) (*entities.Bookmark, error)
	UpdateBookmark(id uint, update bookmarks.BookmarkUpdate) (*entities.Bookmark, error)
	DeleteBookmark(id uint) error
}

// CreateBookmarkRequest is the request body for bookmark creation.
// The owner is never part of the body; it is taken from the authenticated
// identity.
type CreateBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required"`
}

// UpdateBookmarkRequest is the request body for partial bookmark edits.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// BookmarksController handles ownership-scoped bookmark CRUD.
type BookmarksController struct {
	store BookmarkStore
}

// NewBookmarksController creates a new BookmarksController.
func NewBookmarksController(store BookmarkStore) *BookmarksController {
	return &BookmarksController{store: store}
}

// CreateBookmark creates a bookmark owned by the authenticated user.
// POST /bookmarks
func (bc *BookmarksController) CreateBookmark(c *gin.Context) {
	var req CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and link are required")
		return
	}

	bookmark := &entities.Bookmark{
		UserID:      auth.GetUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	if err := bc.store.CreateBookmark(bookmark); err != nil {
		respondInternalError(c, err, "create bookmark")
		return
	}

	respondCreated(c, bookmark)
}

// ListBookmarks returns all bookmarks owned by the authenticated user.
// GET /bookmarks
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	list, err := bc.store.GetBookmarksByUser(auth.GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetBookmark returns a single bookmark if owned by the authenticated user.
// A bookmark owned by someone else is reported as not found, so the
// response does not reveal whether the ID exists.
// GET /bookmarks/:id
func (bc *BookmarksController) GetBookmark(c *gin.Context) {
	bookmark, ok := bc.ownedBookmark(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// UpdateBookmark applies a partial edit to an owned bookmark.
// PATCH /bookmarks/:id
func (bc *BookmarksController) UpdateBookmark(c *gin.Context) {
	bookmark, ok := bc.ownedBookmark(c)
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid bookmark fields")
		return
	}

	updated, err := bc.store.UpdateBookmark(bookmark.ID, bookmarks.BookmarkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		respondInternalError(c, err, "update bookmark")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBookmark removes an owned bookmark.
// DELETE /bookmarks/:id
func (bc *BookmarksController) DeleteBookmark(c *gin.Context) {
	bookmark, ok := bc.ownedBookmark(c)
	if !ok {
		return
	}

	if err := bc.store.DeleteBookmark(bookmark.ID); err != nil {
		respondInternalError(c, err, "delete bookmark")
		return
	}

	c.Status(http.StatusNoContent)
}

// ownedBookmark fetches the bookmark from the path ID and verifies the
// authenticated user owns it. An ownership mismatch responds 404, identical
// to a nonexistent ID.
func (bc *BookmarksController) ownedBookmark(c *gin.Context) (*entities.Bookmark, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	bookmark, err := bc.store.GetBookmarkByID(id)
	if err != nil {
		if errors.Is(err, bookmarks.ErrBookmarkNotFound) {
			respondNotFound(c, "bookmark")
			return nil, false
		}
		respondInternalError(c, err, "get bookmark")
		return nil, false
	}

	if bookmark.UserID != auth.GetUserID(c) {
		respondNotFound(c, "bookmark")
		return nil, false
	}

	return bookmark, true
}
