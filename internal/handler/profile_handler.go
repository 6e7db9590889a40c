package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/middleware"
	"github.com/campushq/sis-api/internal/service"
	"github.com/campushq/sis-api/internal/utils"
)

// ProfileHandler exposes the logged-in student's profile view.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register attaches the profile endpoint.
func (h *ProfileHandler) Register(router fiber.Router) {
	router.Get("/profile", h.getProfile)
}

func (h *ProfileHandler) getProfile(c *fiber.Ctx) error {
	identity := middleware.IdentityFromContext(c)

	profile, err := h.service.GetProfile(c.Context(), identity)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to load profile")
	}

	return utils.SendSuccess(c, "profile retrieved", profile)
}
