package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/utils"
)

// Authenticate validates an optional JWT bearer token. Requests without an
// Authorization header pass through as anonymous; the scoping layer decides
// what anonymous access means. A present-but-invalid token is rejected so a
// forged identity can never fall back to anonymous visibility.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return c.Next()
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		username := extractUsernameFromClaims(claims)
		if username == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token subject")
		}

		c.Locals("username", username)
		c.Locals("groups", extractGroupsFromClaims(claims))
		c.Locals("authenticated", true)

		return c.Next()
	}
}

func extractUsernameFromClaims(claims jwt.MapClaims) string {
	keys := []string{"username", "sub", "user"}
	for _, key := range keys {
		if value, ok := claims[key]; ok {
			if str, ok := value.(string); ok {
				if trimmed := strings.TrimSpace(str); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

func extractGroupsFromClaims(claims jwt.MapClaims) []string {
	value, ok := claims["groups"]
	if !ok {
		return nil
	}

	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	groups := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			trimmed := strings.TrimSpace(str)
			if trimmed != "" {
				groups = append(groups, trimmed)
			}
		}
	}
	return groups
}

// IdentityFromContext rebuilds the request identity from the locals the
// Authenticate middleware populated.
func IdentityFromContext(c *fiber.Ctx) principal.Identity {
	identity := principal.Identity{}
	if v, ok := c.Locals("authenticated").(bool); ok {
		identity.Authenticated = v
	}
	if v, ok := c.Locals("username").(string); ok {
		identity.Username = v
	}
	if v, ok := c.Locals("groups").([]string); ok {
		identity.Groups = v
	}
	return identity
}
