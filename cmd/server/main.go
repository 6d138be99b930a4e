package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/walker-cleaning/site-api/internal/application"
	"github.com/walker-cleaning/site-api/internal/config"
	"github.com/walker-cleaning/site-api/internal/events"
	"github.com/walker-cleaning/site-api/internal/handler"
	"github.com/walker-cleaning/site-api/internal/platform/auth"
	"github.com/walker-cleaning/site-api/internal/platform/database"
	"github.com/walker-cleaning/site-api/internal/platform/health"
	"github.com/walker-cleaning/site-api/internal/platform/logger"
	"github.com/walker-cleaning/site-api/internal/platform/metrics"
	"github.com/walker-cleaning/site-api/internal/platform/middleware"
	"github.com/walker-cleaning/site-api/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "site-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting site-api",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.ServiceModel{},
			&repository.PackageModel{},
			&repository.SettingsModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.AuthConfig.JWTSecret,
		cfg.AuthConfig.SessionTTL,
		cfg.AuthConfig.RememberTTL,
	)

	// Initialize event publisher
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaConfig.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaConfig.Brokers, log)
	}
	defer func() { _ = publisher.Close() }()

	// Initialize metrics
	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	serviceRepo := repository.NewGormServiceRepository(db)
	packageRepo := repository.NewGormPackageRepository(db)
	settingsRepo := repository.NewGormSettingsRepository(db)

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, publisher, m, log)
	catalogService := application.NewCatalogService(serviceRepo, packageRepo, log)
	settingsService := application.NewSettingsService(settingsRepo, log)
	authService := application.NewAuthService(cfg.AuthConfig.AdminPassword, jwtManager, log)

	// Seed default catalog data on an empty store
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogService.EnsureSeeded(seedCtx); err != nil {
		seedCancel()
		log.Fatal("failed to seed default data", zap.Error(err))
	}
	seedCancel()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	authHandler := handler.NewAuthHandler(authService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.MetricsMiddleware(m))

	// Register health check and metrics routes
	healthHandler := health.NewHandler(db, "site-api")
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register routes
	authHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	catalogHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	settingsHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down site-api...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("site-api stopped")
}
