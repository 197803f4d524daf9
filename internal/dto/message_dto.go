package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	LeadID     uuid.UUID  `json:"lead_id"`
	CampaignID *uuid.UUID `json:"campaign_id"`
	Type       string     `json:"type"`
	Content    string     `json:"content"`
}

type UpdateMessageRequest struct {
	// CampaignID set to the zero UUID clears the campaign reference.
	CampaignID *uuid.UUID `json:"campaign_id"`
	Content    *string    `json:"content"`
	Status     *string    `json:"status"`
}

type MessageResponse struct {
	ID         uuid.UUID  `json:"id"`
	LeadID     uuid.UUID  `json:"lead_id"`
	CampaignID *uuid.UUID `json:"campaign_id"`
	Type       string     `json:"type"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sent_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
