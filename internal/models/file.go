package models

import (
	"time"

	"github.com/google/uuid"
)

// File is an uploaded attachment's metadata; the bytes live under the
// uploads directory at URL.
type File struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Type      string    `gorm:"size:100" json:"type"`
	Size      int64     `gorm:"not null;default:0" json:"size"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	Owner     Profile   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (File) TableName() string {
	return "files"
}
