package main

// @title Ta No Posto API
// @version 1.0.0
// @description API do Ta No Posto: precos de combustivel reportados por motoristas. Postos proximos com distancia e menor preco, favoritos, denuncias e painel administrativo.
// @description
// @description Principais recursos:
// @description - Busca de postos por raio com preco por combustivel
// @description - Envio e confirmacao de precos pela comunidade
// @description - Mapa ao vivo via WebSocket
// @description - Favoritos, perfil e denuncias
// @description - Painel administrativo com estatisticas e notificacoes

// @contact.name API Support
// @contact.email suporte@tanoposto.com.br

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Oliejik/T-No-Posto/docs/swagger"
	"github.com/Oliejik/T-No-Posto/internal/config"
	httpDelivery "github.com/Oliejik/T-No-Posto/internal/delivery/http"
	"github.com/Oliejik/T-No-Posto/internal/delivery/http/handler"
	"github.com/Oliejik/T-No-Posto/internal/infrastructure/nominatim"
	"github.com/Oliejik/T-No-Posto/internal/pkg/auth"
	"github.com/Oliejik/T-No-Posto/internal/pkg/logger"
	"github.com/Oliejik/T-No-Posto/internal/repository/cache"
	"github.com/Oliejik/T-No-Posto/internal/repository/postgres"
	redisrepo "github.com/Oliejik/T-No-Posto/internal/repository/redis"
	"github.com/Oliejik/T-No-Posto/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Ta No Posto API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisConn, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisConn.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisConn.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	stationRepo := postgres.NewStationRepository(db)
	priceRepo := postgres.NewPriceRepository(db)
	fuelRepo := postgres.NewFuelTypeRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	cacheRepo := cache.NewCacheRepository(redisConn)
	streamRepo := redisrepo.NewStreamRepository(redisConn.Client(), log)

	geocodeRepo, err := nominatim.NewClient(&cfg.Geocode, log)
	if err != nil {
		log.Fatal("Failed to configure geocoder", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	stationUC := usecase.NewStationUseCase(
		stationRepo,
		favoriteRepo,
		cacheRepo,
		geocodeRepo,
		log,
		cfg.Cache.StationsCacheTTL,
		cfg.Map.DefaultRadiusKm,
	)

	priceUC := usecase.NewPriceUseCase(
		priceRepo,
		stationRepo,
		streamRepo,
		cacheRepo,
		log,
	)

	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, stationRepo, log)
	profileUC := usecase.NewProfileUseCase(profileRepo, log)
	reportUC := usecase.NewReportUseCase(reportRepo, stationRepo, log)
	fuelTypeUC := usecase.NewFuelTypeUseCase(fuelRepo, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, profileRepo, log)

	statsUC := usecase.NewStatsUseCase(
		statsRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize auth
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, 0)

	// 9. Initialize HTTP handlers
	stationHandler := handler.NewStationHandler(stationUC, log)
	priceHandler := handler.NewPriceHandler(priceUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	fuelTypeHandler := handler.NewFuelTypeHandler(fuelTypeUC, log)
	adminHandler := handler.NewAdminHandler(profileUC, statsUC, notificationUC, log)
	liveMapHandler := handler.NewLiveMapHandler(stationUC, cfg.Map, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		jwtService,
		stationHandler,
		priceHandler,
		favoriteHandler,
		profileHandler,
		reportHandler,
		fuelTypeHandler,
		adminHandler,
		liveMapHandler,
		db,
		redisConn,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisConn.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
