package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/tradeflows/promoflow/configs"
	"github.com/tradeflows/promoflow/internal/transfer"
	"github.com/tradeflows/promoflow/pkg/utils"
)

type AuthHandler struct {
	cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// CreateToken exchanges the operator key for a short-lived bearer token.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	var req transfer.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.OperatorKey), []byte(h.cfg.OperatorKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid operator key",
		})
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, "operator", 12*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to generate token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(transfer.TokenResponse{Token: token})
}
