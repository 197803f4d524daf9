package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

var LeadStatuses = []string{
	LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
	LeadStatusConverted, LeadStatusLost,
}

// Lead is a marketing contact owned by exactly one profile. Tags is an
// unordered set of free-text labels stored as a JSON array.
type Lead struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Email     string         `gorm:"size:255" json:"email"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Tags      datatypes.JSON `gorm:"default:'[]'" json:"tags"`
	Source    string         `gorm:"size:100" json:"source"`
	Status    string         `gorm:"size:20;not null;default:'new';check:status IN ('new','contacted','qualified','converted','lost')" json:"status"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Owner     Profile        `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
