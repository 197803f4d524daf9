package handlers

import (
	"errors"

	"github.com/canberkoz/leadboard-backend/internal/dto"
	"github.com/canberkoz/leadboard-backend/internal/models"
	"github.com/canberkoz/leadboard-backend/internal/ownership"
	"github.com/canberkoz/leadboard-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func messageToResponse(message *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         message.ID,
		LeadID:     message.LeadID,
		CampaignID: message.CampaignID,
		Type:       message.Type,
		Content:    message.Content,
		Status:     message.Status,
		SentAt:     message.SentAt,
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.UpdatedAt,
	}
}

func messageErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrLeadNotFound),
		errors.Is(err, services.ErrCampaignNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidMessageType),
		errors.Is(err, services.ErrInvalidMessageStatus),
		errors.Is(err, services.ErrMessageNotDraft),
		errors.Is(err, services.ErrLeadHasNoEmail):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *MessageHandler) Create(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	message, err := h.messageService.Create(userID, &req)
	if err != nil {
		return c.Status(messageErrorStatus(err)).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(messageToResponse(message))
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var leadID, campaignID *uuid.UUID
	if raw := c.Query("lead_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid lead_id",
			})
		}
		leadID = &id
	}
	if raw := c.Query("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid campaign_id",
			})
		}
		campaignID = &id
	}

	page, limit, offset := pagination(c)
	messages, total, err := h.messageService.List(userID, leadID, campaignID, c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list messages",
		})
	}

	resp := dto.MessageListResponse{
		Messages: make([]dto.MessageResponse, 0, len(messages)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, messageToResponse(&messages[i]))
	}
	return c.JSON(resp)
}

func (h *MessageHandler) Get(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message id",
		})
	}

	message, err := h.messageService.Get(userID, messageID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Message not found",
		})
	}
	return c.JSON(messageToResponse(message))
}

func (h *MessageHandler) Update(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message id",
		})
	}

	var req dto.UpdateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	message, err := h.messageService.Update(userID, messageID, &req)
	if err != nil {
		return c.Status(messageErrorStatus(err)).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(messageToResponse(message))
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message id",
		})
	}

	if err := h.messageService.Delete(userID, messageID); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Message not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete message",
		})
	}
	return c.JSON(fiber.Map{"message": "message deleted"})
}

// Send dispatches a draft message through its channel.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	userID, err := ownership.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid message id",
		})
	}

	message, err := h.messageService.Send(userID, messageID)
	if err != nil {
		if errors.Is(err, services.ErrMailerDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(messageErrorStatus(err)).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(messageToResponse(message))
}
