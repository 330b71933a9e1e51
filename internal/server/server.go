package server

import (
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/config"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// New initializes the Fiber application with timeouts and global
// middlewares. Routes are registered by the caller.
func New(cfg *config.Config, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	})

	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logger))

	return app
}
