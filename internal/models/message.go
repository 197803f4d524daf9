package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeEmail = "email"
	MessageTypeSMS   = "sms"
	MessageTypeCall  = "call"

	MessageStatusDraft     = "draft"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
)

var (
	MessageTypes    = []string{MessageTypeEmail, MessageTypeSMS, MessageTypeCall}
	MessageStatuses = []string{MessageStatusDraft, MessageStatusSent, MessageStatusDelivered, MessageStatusFailed}
)

// Message is an outreach record tied to a lead. Deleting the lead removes
// its messages; deleting the campaign only clears campaign_id.
type Message struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	LeadID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"lead_id"`
	CampaignID *uuid.UUID `gorm:"type:uuid;index" json:"campaign_id"`
	Type       string     `gorm:"size:10;not null;check:type IN ('email','sms','call')" json:"type"`
	Content    string     `gorm:"type:text" json:"content"`
	Status     string     `gorm:"size:20;not null;default:'draft';check:status IN ('draft','sent','delivered','failed')" json:"status"`
	SentAt     *time.Time `json:"sent_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Owner      Profile    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Lead       Lead       `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
	Campaign   *Campaign  `gorm:"foreignKey:CampaignID;constraint:OnDelete:SET NULL" json:"-"`
}
