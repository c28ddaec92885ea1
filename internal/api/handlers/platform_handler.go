package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tradeflows/promoflow/internal/platform"
)

type PlatformHandler struct {
	registry *platform.Registry
}

func NewPlatformHandler(registry *platform.Registry) *PlatformHandler {
	return &PlatformHandler{registry: registry}
}

type platformStatus struct {
	Platform      string `json:"platform"`
	Configured    bool   `json:"configured"`
	Authenticated bool   `json:"authenticated"`
}

func (h *PlatformHandler) Status(c *fiber.Ctx) error {
	var statuses []platformStatus
	for _, name := range h.registry.Names() {
		adapter, _ := h.registry.Get(name)
		statuses = append(statuses, platformStatus{
			Platform:      name,
			Configured:    adapter.IsConfigured(),
			Authenticated: adapter.IsAuthenticated(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"platforms": statuses})
}

func (h *PlatformHandler) Authenticate(c *fiber.Ctx) error {
	results := h.registry.AuthenticateAll(c.Context())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
