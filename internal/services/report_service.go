package services

import (
	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService computes the aggregates behind the dashboard charts. Every
// query is scoped to the caller's rows.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) Overview(ownerID uuid.UUID) (*dto.OverviewResponse, error) {
	overview := &dto.OverviewResponse{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Lead{}, &overview.Leads},
		{&models.Campaign{}, &overview.Campaigns},
		{&models.Message{}, &overview.Messages},
		{&models.File{}, &overview.Files},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Scopes(ownership.ForOwner(ownerID)).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return overview, nil
}

func (s *ReportService) LeadsByStatus(ownerID uuid.UUID) (*dto.BucketCountsResponse, error) {
	return s.countBy(&models.Lead{}, ownerID, "status")
}

func (s *ReportService) LeadsBySource(ownerID uuid.UUID) (*dto.BucketCountsResponse, error) {
	return s.countBy(&models.Lead{}, ownerID, "source")
}

func (s *ReportService) MessagesByStatus(ownerID uuid.UUID) (*dto.BucketCountsResponse, error) {
	return s.countBy(&models.Message{}, ownerID, "status")
}

func (s *ReportService) countBy(model interface{}, ownerID uuid.UUID, column string) (*dto.BucketCountsResponse, error) {
	var buckets []dto.BucketCount
	err := s.db.Model(model).Scopes(ownership.ForOwner(ownerID)).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []dto.BucketCount{}
	}
	return &dto.BucketCountsResponse{Buckets: buckets}, nil
}

// CampaignPerformance returns per-campaign message totals alongside budget,
// the raw material for the spend-vs-outreach chart.
func (s *ReportService) CampaignPerformance(ownerID uuid.UUID) (*dto.CampaignPerformanceResponse, error) {
	var campaigns []models.Campaign
	if err := s.db.Scopes(ownership.ForOwner(ownerID)).
		Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}

	result := &dto.CampaignPerformanceResponse{Campaigns: []dto.CampaignPerformance{}}
	for _, campaign := range campaigns {
		var total, sent int64
		if err := s.db.Model(&models.Message{}).Scopes(ownership.ForOwner(ownerID)).
			Where("campaign_id = ?", campaign.ID).Count(&total).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.Message{}).Scopes(ownership.ForOwner(ownerID)).
			Where("campaign_id = ? AND status IN ?", campaign.ID,
				[]string{models.MessageStatusSent, models.MessageStatusDelivered}).
			Count(&sent).Error; err != nil {
			return nil, err
		}

		result.Campaigns = append(result.Campaigns, dto.CampaignPerformance{
			CampaignID:    campaign.ID.String(),
			Name:          campaign.Name,
			Status:        campaign.Status,
			Budget:        campaign.Budget,
			MessagesTotal: total,
			MessagesSent:  sent,
		})
	}
	return result, nil
}
