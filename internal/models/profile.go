package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleFree  = "free"
	RolePro   = "pro"
	RoleAdmin = "admin"
)

var ProfileRoles = []string{RoleFree, RolePro, RoleAdmin}

// Profile mirrors a User 1:1 (same primary key) and carries the display
// and role metadata domain rows hang off. Created in the same transaction
// as the User, never by client code.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	FullName  *string   `gorm:"size:255" json:"full_name"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url"`
	Role      string    `gorm:"size:20;not null;default:'free';check:role IN ('free','pro','admin')" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
