package main

import (
	"context"
	"errors"
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

	"github.com/shareit/service-booking/internal/application"
	"github.com/shareit/service-booking/internal/config"
	"github.com/shareit/service-booking/internal/events"
	"github.com/shareit/service-booking/internal/handler"
	"github.com/shareit/service-booking/internal/platform/database"
	"github.com/shareit/service-booking/internal/platform/health"
	"github.com/shareit/service-booking/internal/platform/kafka"
	"github.com/shareit/service-booking/internal/platform/logger"
	"github.com/shareit/service-booking/internal/platform/metrics"
	"github.com/shareit/service-booking/internal/platform/middleware"
	"github.com/shareit/service-booking/internal/platform/tracing"
	"github.com/shareit/service-booking/internal/repository"
)

const serviceName = "service-booking"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Tracing
	shutdownTracing, err := tracing.Init(context.Background(), serviceName, cfg.AppEnv, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.UserModel{},
			&repository.ItemModel{},
			&repository.BookingModel{},
			&repository.CommentModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsDir, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Booking events
	var publisher application.BookingEventPublisher = events.NoopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		producer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = events.NewBookingPublisher(producer, cfg.KafkaConfig.Topic, log)
	} else {
		log.Info("kafka brokers not configured, booking events disabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)

	// Initialize application services
	userService := application.NewUserService(userRepo, log)
	itemService := application.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, log)
	bookingService := application.NewBookingService(bookingRepo, userService, itemService, publisher, m, log)
	commentService := application.NewCommentService(commentRepo, userRepo, itemRepo, bookingRepo, log)

	// Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService, commentService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminBookingHandler := handler.NewAdminBookingHandler(bookingService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst), log,
	))

	// Register health check and metrics routes
	health.NewHandler(db, serviceName).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register routes
	userHandler.RegisterRoutes(&router.RouterGroup)
	itemHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	adminBookingHandler.RegisterRoutes(&router.RouterGroup)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
