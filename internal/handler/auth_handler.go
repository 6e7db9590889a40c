package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/middleware"
)

// Whoami reports the current identity and its role groups for frontend role
// checks. Anonymous requests are a normal answer here, not an error.
func Whoami() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := middleware.IdentityFromContext(c)
		if !identity.Authenticated {
			return c.JSON(dto.WhoamiResponse{IsAuthenticated: false})
		}

		return c.JSON(dto.WhoamiResponse{
			IsAuthenticated: true,
			Username:        identity.Username,
			Groups:          identity.Groups,
		})
	}
}
