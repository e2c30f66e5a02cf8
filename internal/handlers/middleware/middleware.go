package middleware

import (
	"time"

	"directory/config"
	"directory/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		config: config,
		log:    logger.New("middleware"),
	}
}

// RequestLogger logs every request with method, path, status, and duration.
func (m Middleware) RequestLogger() fiber.Handler {
	log := m.log.Function("RequestLogger")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}

// Recover converts panics in handlers into 500 responses; no request may
// crash the process.
func (m Middleware) Recover() fiber.Handler {
	log := m.log.Function("Recover")

	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.ErMsg("panic recovered", "panic", r, "path", c.Path())
				err = c.Status(fiber.StatusInternalServerError).
					JSON(fiber.Map{"message": "error", "error": "internal server error"})
			}
		}()

		return c.Next()
	}
}
