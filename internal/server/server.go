package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"thrapy-be/internal/bootstrap"
	"thrapy-be/internal/config"
	"thrapy-be/internal/pkg/serverutils"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(serverutils.RequestLoggerMiddleware(container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	c.AuthController.RegisterRoutes(api)
	c.TherapistController.RegisterRoutes(api, c.AuthMiddleware)
	c.SessionController.RegisterRoutes(api, c.AuthMiddleware)
	c.ChatbotController.RegisterRoutes(api, c.AuthMiddleware)
	c.PaymentController.RegisterRoutes(api, c.AuthMiddleware)
}
