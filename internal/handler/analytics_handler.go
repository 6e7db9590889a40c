package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/service"
	"github.com/campushq/sis-api/internal/utils"
)

// AnalyticsHandler exposes the dashboard performance analytics endpoint.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("component", "analytics_handler").Logger(),
	}
}

// Register attaches the analytics endpoint.
func (h *AnalyticsHandler) Register(router fiber.Router) {
	router.Get("/performance", h.getPerformance)
}

func (h *AnalyticsHandler) getPerformance(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Query("year"))
	division := strings.TrimSpace(c.Query("division"))

	response, err := h.service.GetPerformance(c.Context(), year, division)
	if err != nil {
		return sendDomainError(c, h.logger, err, "failed to compute analytics")
	}

	return utils.SendSuccess(c, "analytics computed", response)
}
