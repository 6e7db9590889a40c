package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/service"
	"github.com/campushq/sis-api/internal/utils"
)

// SeedHandler wires the demo seeding endpoint.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs the handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register attaches the seeding endpoint.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/demo", h.seedDemo)
}

type seedRequest struct {
	Token string `json:"token"`
}

func (h *SeedHandler) seedDemo(c *fiber.Ctx) error {
	var payload seedRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	summary, err := h.service.SeedDemo(c.Context(), payload.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeedDisabled):
			return utils.SendError(c, fiber.StatusForbidden, "seeding is disabled")
		case errors.Is(err, service.ErrSeedUnauthorized):
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid seed token")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to seed demo data")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to seed demo data")
		}
	}

	return utils.SendSuccess(c, "demo data seeded", summary)
}
