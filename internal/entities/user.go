package entities

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // bcrypt hash, hidden from JSON
	FirstName    string    `gorm:"size:100" json:"first_name,omitempty"`
	LastName     string    `gorm:"size:100" json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
