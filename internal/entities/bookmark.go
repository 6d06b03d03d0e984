package entities

import (
	"time"
)

type Bookmark struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"` // Owner, set at creation from the authenticated identity
	Title       string    `gorm:"size:512" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Link        string    `gorm:"size:2048" json:"link"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
