package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/utils"
)

// ResolvePrincipal classifies the request identity exactly once and stores
// the resulting tagged principal in the request locals, so downstream code
// never re-probes the identity ad hoc.
func ResolvePrincipal(resolver *principal.Resolver, logger zerolog.Logger) fiber.Handler {
	log := logger.With().Str("component", "principal_middleware").Logger()

	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)

		p, err := resolver.Resolve(c.Context(), identity)
		if err != nil {
			log.Error().Err(err).Str("username", identity.Username).Msg("failed to resolve principal")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve principal")
		}

		c.Locals("principal", p)
		return c.Next()
	}
}

// PrincipalFromContext returns the resolved principal, defaulting to the
// unscoped admin-like principal when resolution did not run.
func PrincipalFromContext(c *fiber.Ctx) principal.Principal {
	if v, ok := c.Locals("principal").(principal.Principal); ok {
		return v
	}
	return principal.Principal{Kind: principal.KindAdmin}
}
