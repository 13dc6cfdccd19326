package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"derlgTravel/app/echo-server/router"
	"derlgTravel/business/catalog"
	"derlgTravel/business/recommendation"
	"derlgTravel/internal/middleware"
	psqlRepo "derlgTravel/internal/repository/postgres"
	redisRepo "derlgTravel/internal/repository/redis"
	"derlgTravel/internal/rest"
	"derlgTravel/pkg/config"
	"derlgTravel/pkg/database"
	redisdb "derlgTravel/pkg/database/redis"
	"derlgTravel/pkg/logger"
	"derlgTravel/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting DerLg Recommendation API", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Engine cache: redis-backed when enabled so instances share snapshots,
	// otherwise in-process memory.
	var engineCache recommendation.SnapshotCache
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		engineCache = redisRepo.NewEngineCache(redisClient, time.Duration(cfg.Engine.CacheTTLSeconds)*time.Second)
		logger.Info("Redis engine cache enabled")
	}

	// Init repo
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)
	engineCfgRepo := psqlRepo.NewEngineConfigRepository(db)

	// Init service
	recService := recommendation.NewService(
		interactionRepo,
		catalogRepo,
		eventRepo,
		engineCfgRepo,
		engineCache,
		nil,
		recommendation.DefaultConfig(),
	)
	catalogService := catalog.NewCatalogService(catalogRepo, eventRepo)

	// Init handler
	recHandler := rest.NewRecommendationHandler(recService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	adminHandler := rest.NewEngineAdminHandler(recService)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Environment, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/api/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recHandler)
	router.SetCatalogRoutes(api, catalogHandler)
	router.SetEngineAdminRoutes(api, adminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	logger.Info("Server stopped")
}
