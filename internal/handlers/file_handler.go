package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/canberkoz/leadboard-backend/internal/config"
	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/canberkoz/leadboard-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FileHandler struct {
	fileService *services.FileService
	cfg         *config.Config
}

func NewFileHandler(fileService *services.FileService, cfg *config.Config) *FileHandler {
	return &FileHandler{fileService: fileService, cfg: cfg}
}

var allowedFileTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"text/csv":        true,
	"text/plain":      true,
}

func fileToResponse(file *models.File) dto.FileResponse {
	return dto.FileResponse{
		ID:        file.ID,
		Name:      file.Name,
		Type:      file.Type,
		Size:      file.Size,
		URL:       file.URL,
		CreatedAt: file.CreatedAt,
	}
}

// Upload handles POST /files - stores the bytes under the uploads dir and
// records metadata owned by the caller.
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File is required",
		})
	}

	if fileHeader.Size > h.cfg.MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: fmt.Sprintf("File size must be less than %dMB", h.cfg.MaxUploadSize/(1024*1024)),
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if !allowedFileTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unsupported file type: " + contentType,
		})
	}

	fileExt := filepath.Ext(fileHeader.Filename)
	storedName := fmt.Sprintf("%s_%s%s", userID.String()[:8], uuid.New().String()[:8], fileExt)
	savePath := filepath.Join(h.cfg.UploadDir, storedName)
	if err := c.SaveFile(fileHeader, savePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save file",
		})
	}

	url := "/uploads/" + storedName
	file, err := h.fileService.Create(userID, fileHeader.Filename, contentType, fileHeader.Size, url)
	if err != nil {
		os.Remove(savePath)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record file",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fileToResponse(file))
}

func (h *FileHandler) List(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	page, limit, offset := pagination(c)
	files, total, err := h.fileService.List(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list files",
		})
	}

	resp := dto.FileListResponse{
		Files: make([]dto.FileResponse, 0, len(files)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i := range files {
		resp.Files = append(resp.Files, fileToResponse(&files[i]))
	}
	return c.JSON(resp)
}

func (h *FileHandler) Get(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid file id",
		})
	}

	file, err := h.fileService.Get(userID, fileID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "File not found",
		})
	}
	return c.JSON(fileToResponse(file))
}

func (h *FileHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid file id",
		})
	}

	url, err := h.fileService.Delete(userID, fileID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "File not found",
		})
	}

	if strings.HasPrefix(url, "/uploads/") {
		os.Remove(filepath.Join(h.cfg.UploadDir, strings.TrimPrefix(url, "/uploads/")))
	}
	return c.JSON(fiber.Map{"message": "file deleted"})
}
