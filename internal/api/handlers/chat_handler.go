package handlers

import (
	"errors"

	"monastery-guide/internal/dto"
	"monastery-guide/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 20

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask the AI guide
// @Description Forward a message to the AI guide, optionally with a monastery as context
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := decodeBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(detail("Invalid request body: " + err.Error()))
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(detail("message is required"))
	}
	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(detail("session_id is required"))
	}

	resp, err := h.chatService.Chat(c.Context(), &req)
	if err != nil {
		var aiErr *service.AIServiceError
		switch {
		case errors.Is(err, service.ErrAINotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(detail("AI service not configured"))
		case errors.As(err, &aiErr):
			return c.Status(fiber.StatusInternalServerError).JSON(detail(aiErr.Error()))
		default:
			h.logger.Error("Chat request failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(detail("AI service error: " + err.Error()))
		}
	}
	return c.JSON(resp)
}

// History godoc
// @Summary Get chat history for a session
// @Tags chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Param limit query int false "Maximum number of messages" default(20)
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /api/chat/history/{session_id} [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	limit := c.QueryInt("limit", defaultHistoryLimit)

	resp, err := h.chatService.History(c.Context(), sessionID, limit)
	if err != nil {
		h.logger.Error("Failed to load chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to load chat history"))
	}
	return c.JSON(resp)
}
