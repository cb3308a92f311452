package api

import (
	"monastery-guide/internal/api/handlers"
	"monastery-guide/internal/catalog"
	"monastery-guide/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	monasteryHandler *handlers.MonasteryHandler,
	chatHandler *handlers.ChatHandler,
	statusHandler *handlers.StatusHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"detail": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Sikkim Monasteries - Virtual Heritage Tours",
		})
	})

	api.Post("/status", statusHandler.Create)
	api.Get("/status", statusHandler.List)

	api.Post("/monasteries/initialize", monasteryHandler.Initialize)
	api.Get("/monasteries", monasteryHandler.List)
	api.Get("/monasteries/:id", monasteryHandler.Get)
	api.Post("/monasteries", monasteryHandler.Create)

	api.Post("/chat", chatHandler.Chat)
	api.Get("/chat/history/:session_id", chatHandler.History)

	api.Get("/districts", monasteryHandler.Districts)
	api.Get("/traditions", monasteryHandler.Traditions)
	api.Get("/festivals", monasteryHandler.Festivals)

	api.Get("/travel-guide", func(c *fiber.Ctx) error {
		return c.JSON(catalog.SikkimTravelGuide())
	})

	return app
}
