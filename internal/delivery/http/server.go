package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/config"
	"github.com/Oliejik/T-No-Posto/internal/delivery/http/handler"
	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/pkg/auth"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	jwtService *auth.JWTService

	stationHandler  *handler.StationHandler
	priceHandler    *handler.PriceHandler
	favoriteHandler *handler.FavoriteHandler
	profileHandler  *handler.ProfileHandler
	reportHandler   *handler.ReportHandler
	fuelTypeHandler *handler.FuelTypeHandler
	adminHandler    *handler.AdminHandler
	liveMapHandler  *handler.LiveMapHandler

	db    HealthChecker
	redis HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	jwtService *auth.JWTService,
	stationHandler *handler.StationHandler,
	priceHandler *handler.PriceHandler,
	favoriteHandler *handler.FavoriteHandler,
	profileHandler *handler.ProfileHandler,
	reportHandler *handler.ReportHandler,
	fuelTypeHandler *handler.FuelTypeHandler,
	adminHandler *handler.AdminHandler,
	liveMapHandler *handler.LiveMapHandler,
	db HealthChecker,
	redis HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Ta No Posto API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		jwtService:      jwtService,
		stationHandler:  stationHandler,
		priceHandler:    priceHandler,
		favoriteHandler: favoriteHandler,
		profileHandler:  profileHandler,
		reportHandler:   reportHandler,
		fuelTypeHandler: fuelTypeHandler,
		adminHandler:    adminHandler,
		liveMapHandler:  liveMapHandler,
		db:              db,
		redis:           redis,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestLogger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Public reads. OptionalAuth lets logged-in callers get favorite flags
	// without making login mandatory for browsing.
	optional := middleware.OptionalAuth(s.jwtService)
	api.Get("/stations", optional, s.stationHandler.List)
	api.Get("/stations/nearby", optional, s.stationHandler.Nearby)
	api.Get("/stations/:id", optional, s.stationHandler.GetByID)
	api.Get("/fuel-types", s.fuelTypeHandler.List)

	// Live map WebSocket.
	s.app.Get("/ws/map", optional, s.liveMapHandler.Upgrade, s.liveMapHandler.Handle())

	// Authenticated user actions.
	authed := middleware.RequireAuth(s.jwtService, s.logger)
	api.Post("/stations/:id/prices", authed, s.priceHandler.Submit)
	api.Post("/stations/:id/prices/:fuel/confirm", authed, s.priceHandler.Confirm)
	api.Get("/profile", authed, s.profileHandler.Get)
	api.Put("/profile", authed, s.profileHandler.Update)
	api.Get("/favorites", authed, s.favoriteHandler.List)
	api.Put("/favorites/:id", authed, s.favoriteHandler.Add)
	api.Delete("/favorites/:id", authed, s.favoriteHandler.Remove)
	api.Post("/reports", authed, s.reportHandler.Create)

	// Admin panel.
	admin := api.Group("/admin", authed, middleware.RequireAdmin())
	admin.Post("/stations", s.stationHandler.Create)
	admin.Put("/stations/:id", s.stationHandler.Update)
	admin.Delete("/stations/:id", s.stationHandler.Delete)
	admin.Put("/fuel-types", s.fuelTypeHandler.Save)
	admin.Get("/users", s.adminHandler.ListUsers)
	admin.Put("/users/:id/status", s.adminHandler.UpdateUserStatus)
	admin.Get("/reports", s.reportHandler.List)
	admin.Put("/reports/:id", s.reportHandler.Moderate)
	admin.Get("/stats", s.adminHandler.Stats)
	admin.Get("/notifications", s.adminHandler.ListNotifications)
	admin.Get("/notifications/reach", s.adminHandler.NotificationReach)
	admin.Post("/notifications", s.adminHandler.SendNotification)
}

func (s *Server) health(c *fiber.Ctx) error {
	status := "healthy"
	checks := fiber.Map{}

	if s.db != nil {
		if err := s.db.Health(c.Context()); err != nil {
			status = "degraded"
			checks["postgres"] = err.Error()
		} else {
			checks["postgres"] = "ok"
		}
	}
	if s.redis != nil {
		if err := s.redis.Health(c.Context()); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber instance for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
