package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/metrics"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type LeadService struct {
	db *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{db: db}
}

func (s *LeadService) Create(ownerID uuid.UUID, req *dto.CreateLeadRequest) (*models.Lead, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}

	status := req.Status
	if status == "" {
		status = models.LeadStatusNew
	}
	if !isOneOf(status, models.LeadStatuses) {
		return nil, ErrInvalidLeadStatus
	}

	lead := models.Lead{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Tags:    tagsToJSON(req.Tags),
		Source:  req.Source,
		Status:  status,
		Notes:   req.Notes,
	}

	if err := s.db.Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &lead, nil
}

// List returns the caller's leads, optionally filtered by status and a
// free-text search over name and email.
func (s *LeadService) List(ownerID uuid.UUID, status, search string, limit, offset int) ([]models.Lead, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(ownership.ForOwner(ownerID))
		if status != "" {
			db = db.Where("status = ?", status)
		}
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
		}
		return db
	}

	var total int64
	if err := s.db.Model(&models.Lead{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []models.Lead
	if err := s.db.Scopes(filter).Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func (s *LeadService) Get(ownerID, leadID uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&lead, "id = ?", leadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *LeadService) Update(ownerID, leadID uuid.UUID, req *dto.UpdateLeadRequest) (*models.Lead, error) {
	lead, err := s.Get(ownerID, leadID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !isOneOf(*req.Status, models.LeadStatuses) {
		return nil, ErrInvalidLeadStatus
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Tags != nil {
		lead.Tags = tagsToJSON(*req.Tags)
	}
	if req.Source != nil {
		lead.Source = *req.Source
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}

	if err := s.db.Save(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

// Delete removes the lead and its messages in one transaction.
func (s *LeadService) Delete(ownerID, leadID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(ownership.ForOwner(ownerID)).
			Where("lead_id = ?", leadID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		result := tx.Scopes(ownership.ForOwner(ownerID)).Delete(&models.Lead{}, "id = ?", leadID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLeadNotFound
		}
		return nil
	})
}

var csvHeader = []string{"name", "email", "phone", "tags", "source", "status", "notes"}

// ExportCSV streams all of the caller's leads as CSV. Tags are joined
// with ";" inside their column.
func (s *LeadService) ExportCSV(ownerID uuid.UUID, w io.Writer) error {
	var leads []models.Lead
	if err := s.db.Scopes(ownership.ForOwner(ownerID)).
		Order("created_at ASC").Find(&leads).Error; err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, lead := range leads {
		record := []string{
			lead.Name,
			lead.Email,
			lead.Phone,
			strings.Join(TagsFromJSON(lead.Tags), ";"),
			lead.Source,
			lead.Status,
			lead.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads a CSV with the export header and inserts each valid row
// as a lead owned by the caller. Invalid rows are skipped and reported;
// they never abort the rows around them.
func (s *LeadService) ImportCSV(ownerID uuid.UUID, r io.Reader, maxRows int) (*dto.ImportResultResponse, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.New("empty or unreadable CSV")
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, errors.New("CSV must have a name column")
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	result := &dto.ImportResultResponse{Errors: []dto.ImportRowError{}}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: "malformed row"})
			continue
		}
		if result.Imported+result.Skipped >= maxRows {
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: "row limit reached, remaining rows ignored"})
			break
		}

		req := dto.CreateLeadRequest{
			Name:   field(record, "name"),
			Email:  field(record, "email"),
			Phone:  field(record, "phone"),
			Source: field(record, "source"),
			Status: field(record, "status"),
			Notes:  field(record, "notes"),
		}
		if tags := field(record, "tags"); tags != "" {
			req.Tags = strings.Split(tags, ";")
		}

		if _, err := s.Create(ownerID, &req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: err.Error()})
			metrics.RecordLeadImport("skipped")
			continue
		}
		result.Imported++
		metrics.RecordLeadImport("imported")
	}

	return result, nil
}

func isOneOf(value string, valid []string) bool {
	for _, v := range valid {
		if v == value {
			return true
		}
	}
	return false
}

// tagsToJSON normalizes a tag list into a deduplicated JSON array.
func tagsToJSON(tags []string) datatypes.JSON {
	seen := make(map[string]bool, len(tags))
	set := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		set = append(set, t)
	}
	b, _ := json.Marshal(set)
	return datatypes.JSON(b)
}

func TagsFromJSON(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return []string{}
	}
	return tags
}
