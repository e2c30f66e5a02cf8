package handlers

import (
	"strings"

	"directory/internal/app"
	employeesController "directory/internal/controllers/employees"
	"directory/internal/handlers/middleware"
	"directory/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	setupWebSocketRoute(router, app)

	api := router.Group("/api")
	HealthHandler(api, app.Config, app.Websocket)
	NewEmployeeHandler(*app, api).Register()

	// Everything unrecognized lands on the list route; API misses stay 404s.
	router.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "not found"})
		}
		return c.Redirect(employeesController.RouteList)
	})

	return nil
}

func setupWebSocketRoute(router fiber.Router, app *app.App) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(func(c *websocket.Conn) {
		app.Websocket.HandleWebSocket(c)
	}))
}
