package handlers

import (
	"monastery-guide/internal/dto"
	"monastery-guide/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatusHandler struct {
	statusService *service.StatusService
	logger        *zap.Logger
}

func NewStatusHandler(statusService *service.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a status check
// @Tags status
// @Accept json
// @Produce json
// @Param request body dto.CreateStatusCheckRequest true "Status check"
// @Success 200 {object} dto.StatusCheckResponse
// @Failure 400 {object} map[string]string
// @Router /api/status [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStatusCheckRequest
	if err := decodeBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(detail("Invalid request body: " + err.Error()))
	}
	if req.ClientName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(detail("client_name is required"))
	}

	check, err := h.statusService.Create(c.Context(), req.ClientName)
	if err != nil {
		h.logger.Error("Failed to create status check", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to create status check"))
	}
	return c.JSON(dto.NewStatusCheckResponse(check))
}

// List godoc
// @Summary List status checks
// @Tags status
// @Produce json
// @Success 200 {array} dto.StatusCheckResponse
// @Router /api/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.statusService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list status checks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to list status checks"))
	}

	responses := make([]dto.StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		responses = append(responses, dto.NewStatusCheckResponse(check))
	}
	return c.JSON(responses)
}
