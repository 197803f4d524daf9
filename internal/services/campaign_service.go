package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrNegativeBudget        = errors.New("budget must be non-negative")
)

type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

func (s *CampaignService) Create(ownerID uuid.UUID, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}

	status := req.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if !isOneOf(status, models.CampaignStatuses) {
		return nil, ErrInvalidCampaignStatus
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, ErrNegativeBudget
	}

	campaign := models.Campaign{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	}

	if err := s.db.Create(&campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return &campaign, nil
}

func (s *CampaignService) List(ownerID uuid.UUID, status string, limit, offset int) ([]models.Campaign, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(ownership.ForOwner(ownerID))
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}

	var total int64
	if err := s.db.Model(&models.Campaign{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []models.Campaign
	if err := s.db.Scopes(filter).Order("created_at DESC").Limit(limit).Offset(offset).Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (s *CampaignService) Get(ownerID, campaignID uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&campaign, "id = ?", campaignID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) Update(ownerID, campaignID uuid.UUID, req *dto.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.Get(ownerID, campaignID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !isOneOf(*req.Status, models.CampaignStatuses) {
		return nil, ErrInvalidCampaignStatus
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, ErrNegativeBudget
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}
	if req.StartDate != nil {
		campaign.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = req.EndDate
	}
	if req.Budget != nil {
		campaign.Budget = req.Budget
	}

	if err := s.db.Save(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// Delete removes the campaign and clears campaign_id on messages that
// referenced it. The messages themselves stay.
func (s *CampaignService) Delete(ownerID, campaignID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Message{}).Scopes(ownership.ForOwner(ownerID)).
			Where("campaign_id = ?", campaignID).
			Update("campaign_id", nil).Error; err != nil {
			return err
		}
		result := tx.Scopes(ownership.ForOwner(ownerID)).Delete(&models.Campaign{}, "id = ?", campaignID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCampaignNotFound
		}
		return nil
	})
}
