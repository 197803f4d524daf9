package services

import (
	"errors"
	"fmt"

	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFileNotFound = errors.New("file not found")

type FileService struct {
	db *gorm.DB
}

func NewFileService(db *gorm.DB) *FileService {
	return &FileService{db: db}
}

func (s *FileService) Create(ownerID uuid.UUID, name, contentType string, size int64, url string) (*models.File, error) {
	file := models.File{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Type:    contentType,
		Size:    size,
		URL:     url,
	}

	if err := s.db.Create(&file).Error; err != nil {
		return nil, fmt.Errorf("failed to record file: %w", err)
	}
	return &file, nil
}

func (s *FileService) List(ownerID uuid.UUID, limit, offset int) ([]models.File, int64, error) {
	var total int64
	if err := s.db.Model(&models.File{}).Scopes(ownership.ForOwner(ownerID)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []models.File
	if err := s.db.Scopes(ownership.ForOwner(ownerID)).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&files).Error; err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (s *FileService) Get(ownerID, fileID uuid.UUID) (*models.File, error) {
	var file models.File
	err := s.db.Scopes(ownership.ForOwner(ownerID)).First(&file, "id = ?", fileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Delete removes the metadata row and returns the stored URL so the caller
// can unlink the bytes.
func (s *FileService) Delete(ownerID, fileID uuid.UUID) (string, error) {
	file, err := s.Get(ownerID, fileID)
	if err != nil {
		return "", err
	}
	if err := s.db.Delete(file).Error; err != nil {
		return "", err
	}
	return file.URL, nil
}
