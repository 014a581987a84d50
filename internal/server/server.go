package server

import (
	"log"

	"ai-chat-be/internal/bootstrap"
	"ai-chat-be/internal/config"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/pkg/database"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
	dbManager *database.Manager
}

func New(cfg *config.Config, container *bootstrap.Container, dbManager *database.Manager) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	s := &Server{
		app:       app,
		cfg:       cfg,
		container: container,
		dbManager: dbManager,
	}

	// Routes
	app.Get("/", s.root)
	registerRoutes(app, container)

	return s
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

// root reports which database branch the server is wired to and the
// diagnostic session id of the shared connection.
func (s *Server) root(ctx *fiber.Ctx) error {
	handle, err := s.dbManager.Handle()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"branch":     s.cfg.App.Environment,
		"session_id": handle.SessionId,
	})
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	root := app.Group("/")

	c.ChatSessionController.RegisterRoutes(root)
	c.ChatHistoryController.RegisterRoutes(root)
	c.ChatController.RegisterRoutes(root)
	c.IngestionController.RegisterRoutes(root)
	c.DemoController.RegisterRoutes(root)
}
