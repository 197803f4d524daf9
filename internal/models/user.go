package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind authentication. Display and role
// metadata live on the Profile row provisioned alongside it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	AuthProvider string    `gorm:"size:50;default:'email'" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
