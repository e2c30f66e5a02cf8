package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"directory/internal/app"
	"directory/internal/handlers"
	"directory/internal/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close application cleanly", err)
		}
	}()

	server := fiber.New(fiber.Config{
		AppName:      "employee-directory",
		ErrorHandler: errorHandler(log),
	})

	server.Use(application.Middleware.Recover())
	server.Use(application.Middleware.RequestLogger())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		// os.Exit skips the deferred close; release the pools here.
		if closeErr := application.Close(); closeErr != nil {
			log.Er("failed to close application cleanly", closeErr)
		}
		os.Exit(1)
	}

	address := application.Config.ServerHost + ":" + application.Config.ServerPort

	go func() {
		if err := server.Listen(address); err != nil {
			log.Er("server stopped", err)
		}
	}()

	log.Info("server listening", "address", address)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Er("failed to shut down server cleanly", err)
	}
}

func errorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.Er("request failed", err, "path", c.Path(), "status", code)
		return c.Status(code).JSON(fiber.Map{"message": "error", "error": err.Error()})
	}
}
