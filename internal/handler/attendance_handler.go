package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/middleware"
	"github.com/campushq/sis-api/internal/service"
	"github.com/campushq/sis-api/internal/utils"
)

// AttendanceHandler wires the attendance CRUD endpoints.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance routes to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context(), middleware.PrincipalFromContext(c))
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to list attendance")
	}

	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) create(c *fiber.Ctx) error {
	var payload dto.AttendanceCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Create(c.Context(), middleware.PrincipalFromContext(c), payload)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to record attendance")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance recorded", record)
}

func (h *AttendanceHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.AttendanceUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	record, err := h.service.Update(c.Context(), middleware.PrincipalFromContext(c), id, payload)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to update attendance")
	}

	return utils.SendSuccess(c, "attendance updated", record)
}

func (h *AttendanceHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), middleware.PrincipalFromContext(c), id); err != nil {
		return sendDomainError(c, h.logger, err, "failed to delete attendance")
	}

	return utils.SendSuccess(c, "attendance deleted", fiber.Map{"id": id})
}
