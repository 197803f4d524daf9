package handlers

import (
	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/canberkoz/leadboard-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) withUser(c *fiber.Ctx, fn func(uuid.UUID) (interface{}, error)) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := fn(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build report",
		})
	}
	return c.JSON(resp)
}

func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	return h.withUser(c, func(userID uuid.UUID) (interface{}, error) {
		return h.reportService.Overview(userID)
	})
}

func (h *ReportHandler) LeadsByStatus(c *fiber.Ctx) error {
	return h.withUser(c, func(userID uuid.UUID) (interface{}, error) {
		return h.reportService.LeadsByStatus(userID)
	})
}

func (h *ReportHandler) LeadsBySource(c *fiber.Ctx) error {
	return h.withUser(c, func(userID uuid.UUID) (interface{}, error) {
		return h.reportService.LeadsBySource(userID)
	})
}

func (h *ReportHandler) MessagesByStatus(c *fiber.Ctx) error {
	return h.withUser(c, func(userID uuid.UUID) (interface{}, error) {
		return h.reportService.MessagesByStatus(userID)
	})
}

func (h *ReportHandler) CampaignPerformance(c *fiber.Ctx) error {
	return h.withUser(c, func(userID uuid.UUID) (interface{}, error) {
		return h.reportService.CampaignPerformance(userID)
	})
}
