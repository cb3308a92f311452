package handlers

import (
	"errors"

	"monastery-guide/internal/dto"
	"monastery-guide/internal/repository"
	"monastery-guide/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MonasteryHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewMonasteryHandler(catalogService *service.CatalogService, logger *zap.Logger) *MonasteryHandler {
	return &MonasteryHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Initialize godoc
// @Summary Seed the monastery catalog
// @Description Insert the built-in monastery records; no-op if the store already holds any
// @Tags monasteries
// @Produce json
// @Success 200 {object} dto.InitializeResponse
// @Router /api/monasteries/initialize [post]
func (h *MonasteryHandler) Initialize(c *fiber.Ctx) error {
	message, err := h.catalogService.Initialize(c.Context())
	if err != nil {
		h.logger.Error("Failed to initialize monasteries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail(err.Error()))
	}
	return c.JSON(dto.InitializeResponse{Message: message})
}

// List godoc
// @Summary List monasteries
// @Description List monasteries, optionally filtered by district, tradition, or a search term
// @Tags monasteries
// @Produce json
// @Param district query string false "Filter by district (substring, case-insensitive)"
// @Param tradition query string false "Filter by tradition (substring, case-insensitive)"
// @Param search query string false "Search in name, description, or location"
// @Success 200 {array} dto.MonasteryResponse
// @Router /api/monasteries [get]
func (h *MonasteryHandler) List(c *fiber.Ctx) error {
	filter := repository.MonasteryFilter{
		District:  c.Query("district"),
		Tradition: c.Query("tradition"),
		Search:    c.Query("search"),
	}

	monasteries, err := h.catalogService.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list monasteries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to list monasteries"))
	}
	return c.JSON(dto.NewMonasteryResponses(monasteries))
}

// Get godoc
// @Summary Fetch one monastery
// @Tags monasteries
// @Produce json
// @Param id path string true "Monastery ID"
// @Success 200 {object} dto.MonasteryResponse
// @Failure 404 {object} map[string]string
// @Router /api/monasteries/{id} [get]
func (h *MonasteryHandler) Get(c *fiber.Ctx) error {
	m, err := h.catalogService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(detail("Monastery not found"))
		}
		h.logger.Error("Failed to get monastery", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to get monastery"))
	}
	return c.JSON(dto.NewMonasteryResponse(m))
}

// Create godoc
// @Summary Create a monastery
// @Description Persist a whole record; the identifier is assigned server-side
// @Tags monasteries
// @Accept json
// @Produce json
// @Param monastery body dto.CreateMonasteryRequest true "Monastery"
// @Success 200 {object} dto.MonasteryResponse
// @Failure 400 {object} map[string]string
// @Router /api/monasteries [post]
func (h *MonasteryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMonasteryRequest
	if err := decodeBody(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(detail("Invalid request body: " + err.Error()))
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(detail("name is required"))
	}

	m, err := h.catalogService.Create(c.Context(), req.ToModel())
	if err != nil {
		h.logger.Error("Failed to create monastery", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to create monastery"))
	}
	return c.JSON(dto.NewMonasteryResponse(m))
}

// Districts godoc
// @Summary List districts with monasteries
// @Tags monasteries
// @Produce json
// @Success 200 {object} dto.DistrictsResponse
// @Router /api/districts [get]
func (h *MonasteryHandler) Districts(c *fiber.Ctx) error {
	districts, err := h.catalogService.Districts(c.Context())
	if err != nil {
		h.logger.Error("Failed to list districts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to list districts"))
	}
	return c.JSON(dto.DistrictsResponse{Districts: districts})
}

// Traditions godoc
// @Summary List Buddhist traditions
// @Tags monasteries
// @Produce json
// @Success 200 {object} dto.TraditionsResponse
// @Router /api/traditions [get]
func (h *MonasteryHandler) Traditions(c *fiber.Ctx) error {
	traditions, err := h.catalogService.Traditions(c.Context())
	if err != nil {
		h.logger.Error("Failed to list traditions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to list traditions"))
	}
	return c.JSON(dto.TraditionsResponse{Traditions: traditions})
}

// Festivals godoc
// @Summary List all festivals across monasteries
// @Tags monasteries
// @Produce json
// @Success 200 {object} dto.FestivalsResponse
// @Router /api/festivals [get]
func (h *MonasteryHandler) Festivals(c *fiber.Ctx) error {
	festivals, err := h.catalogService.Festivals(c.Context())
	if err != nil {
		h.logger.Error("Failed to list festivals", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(detail("Failed to list festivals"))
	}
	return c.JSON(dto.FestivalsResponse{Festivals: festivals})
}
