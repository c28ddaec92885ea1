package middleware

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/tradeflows/promoflow/configs"
	"github.com/tradeflows/promoflow/pkg/utils"
)

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// AuthMiddleware accepts either the operator key directly or a bearer token
// previously minted from it.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("X-API-Key")
		bearer := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

		if apiKey == "" && bearer == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing API key or token",
			})
		}

		if apiKey != "" {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.OperatorKey)) != 1 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid API key",
				})
			}
			return c.Next()
		}

		if _, err := utils.ValidateToken(m.cfg.SecretKey, bearer); err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		return c.Next()
	}
}
