package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/middleware"
	"github.com/campushq/sis-api/internal/service"
	"github.com/campushq/sis-api/internal/utils"
)

// MarkHandler wires the mark CRUD endpoints.
type MarkHandler struct {
	service service.MarkService
	logger  zerolog.Logger
}

// NewMarkHandler constructs the handler.
func NewMarkHandler(service service.MarkService, logger zerolog.Logger) *MarkHandler {
	return &MarkHandler{
		service: service,
		logger:  logger.With().Str("component", "mark_handler").Logger(),
	}
}

// Register attaches mark routes to the router group.
func (h *MarkHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *MarkHandler) list(c *fiber.Ctx) error {
	marks, err := h.service.List(c.Context(), middleware.PrincipalFromContext(c))
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to list marks")
	}

	return utils.SendSuccess(c, "marks retrieved", marks)
}

func (h *MarkHandler) create(c *fiber.Ctx) error {
	var payload dto.MarkCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	mark, err := h.service.Create(c.Context(), middleware.PrincipalFromContext(c), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to create mark")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "mark created", mark)
}

func (h *MarkHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.MarkUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	mark, err := h.service.Update(c.Context(), middleware.PrincipalFromContext(c), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to update mark")
	}

	return utils.SendSuccess(c, "mark updated", mark)
}

func (h *MarkHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), middleware.PrincipalFromContext(c), id); err != nil {
		return sendDomainError(c, h.logger, err, "failed to delete mark")
	}

	return utils.SendSuccess(c, "mark deleted", fiber.Map{"id": id})
}
