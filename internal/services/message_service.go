package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/metrics"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound      = errors.New("message not found")
	ErrInvalidMessageType   = errors.New("invalid message type")
	ErrInvalidMessageStatus = errors.New("invalid message status")
	ErrMessageNotDraft      = errors.New("only draft or failed messages can be sent")
	ErrLeadHasNoEmail       = errors.New("lead has no email address")
)

type MessageService struct {
	db     *gorm.DB
	mailer *Mailer
}

func NewMessageService(db *gorm.DB, mailer *Mailer) *MessageService {
	return &MessageService{db: db, mailer: mailer}
}

// Create records an outreach message against one of the caller's leads.
// Both the lead and, when given, the campaign must be owned by the caller;
// an unowned id behaves like a missing one.
func (s *MessageService) Create(ownerID uuid.UUID, req *dto.CreateMessageRequest) (*models.Message, error) {
	if !isOneOf(req.Type, models.MessageTypes) {
		return nil, ErrInvalidMessageType
	}

	var lead models.Lead
	if err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&lead, "id = ?", req.LeadID).Error; err != nil {
		return nil, ErrLeadNotFound
	}

	if req.CampaignID != nil {
		var campaign models.Campaign
		if err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&campaign, "id = ?", *req.CampaignID).Error; err != nil {
			return nil, ErrCampaignNotFound
		}
	}

	message := models.Message{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		LeadID:     req.LeadID,
		CampaignID: req.CampaignID,
		Type:       req.Type,
		Content:    req.Content,
		Status:     models.MessageStatusDraft,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &message, nil
}

func (s *MessageService) List(ownerID uuid.UUID, leadID, campaignID *uuid.UUID, status string, limit, offset int) ([]models.Message, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(ownership.ForOwner(ownerID))
		if leadID != nil {
			db = db.Where("lead_id = ?", *leadID)
		}
		if campaignID != nil {
			db = db.Where("campaign_id = ?", *campaignID)
		}
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}

	var total int64
	if err := s.db.Model(&models.Message{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	if err := s.db.Scopes(filter).Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (s *MessageService) Get(ownerID, messageID uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&message, "id = ?", messageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *MessageService) Update(ownerID, messageID uuid.UUID, req *dto.UpdateMessageRequest) (*models.Message, error) {
	message, err := s.Get(ownerID, messageID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !isOneOf(*req.Status, models.MessageStatuses) {
		return nil, ErrInvalidMessageStatus
	}
	if req.CampaignID != nil {
		if *req.CampaignID == uuid.Nil {
			// The zero UUID detaches the message from its campaign.
			message.CampaignID = nil
		} else {
			var campaign models.Campaign
			if err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&campaign, "id = ?", *req.CampaignID).Error; err != nil {
				return nil, ErrCampaignNotFound
			}
			message.CampaignID = req.CampaignID
		}
	}

	if req.Content != nil {
		message.Content = *req.Content
	}
	if req.Status != nil {
		message.Status = *req.Status
	}

	if err := s.db.Save(message).Error; err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return message, nil
}

func (s *MessageService) Delete(ownerID, messageID uuid.UUID) error {
	result := s.db.Scopes(ownership.ForOwner(ownerID)).Delete(&models.Message{}, "id = ?", messageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// Send dispatches a draft message. Email-type messages go out over SMTP to
// the lead's address; sms and call types are only marked sent, dispatch for
// those channels happens outside this service.
func (s *MessageService) Send(ownerID, messageID uuid.UUID) (*models.Message, error) {
	message, err := s.Get(ownerID, messageID)
	if err != nil {
		return nil, err
	}
	if message.Status != models.MessageStatusDraft && message.Status != models.MessageStatusFailed {
		return nil, ErrMessageNotDraft
	}

	if message.Type == models.MessageTypeEmail {
		var lead models.Lead
		if err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&lead, "id = ?", message.LeadID).Error; err != nil {
			return nil, ErrLeadNotFound
		}
		if lead.Email == "" {
			return nil, ErrLeadHasNoEmail
		}

		subject := "Message from your contact at Leadboard"
		if err := s.mailer.Send(lead.Email, subject, message.Content); err != nil {
			slog.Error("message dispatch failed", "message_id", message.ID.String(), "error", err)
			message.Status = models.MessageStatusFailed
			if saveErr := s.db.Save(message).Error; saveErr != nil {
				slog.Error("failed to record dispatch failure", "message_id", message.ID.String(), "error", saveErr)
			}
			metrics.RecordMessageDispatch(message.Type, models.MessageStatusFailed)
			return nil, err
		}
	}

	now := time.Now()
	message.Status = models.MessageStatusSent
	message.SentAt = &now
	if err := s.db.Save(message).Error; err != nil {
		return nil, fmt.Errorf("failed to mark message sent: %w", err)
	}
	metrics.RecordMessageDispatch(message.Type, models.MessageStatusSent)
	return message, nil
}
