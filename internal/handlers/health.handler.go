package handlers

import (
	"directory/config"
	"directory/internal/websockets"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler(router fiber.Router, config config.Config, ws *websockets.Manager) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"environment": config.Environment,
			"wsClients":   ws.ClientCount(),
		})
	})
}
