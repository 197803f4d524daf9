package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

var CampaignStatuses = []string{
	CampaignStatusDraft, CampaignStatusActive,
	CampaignStatusPaused, CampaignStatusCompleted,
}

type Campaign struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string     `gorm:"not null;size:255" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null;default:'draft';check:status IN ('draft','active','paused','completed')" json:"status"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	Budget      *float64   `gorm:"type:numeric(12,2);check:budget IS NULL OR budget >= 0" json:"budget"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Owner       Profile    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
