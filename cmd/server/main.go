package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fastex-delivery/service-booking/internal/application"
	"github.com/fastex-delivery/service-booking/internal/config"
	"github.com/fastex-delivery/service-booking/internal/database"
	"github.com/fastex-delivery/service-booking/internal/handler"
	"github.com/fastex-delivery/service-booking/internal/identity"
	"github.com/fastex-delivery/service-booking/internal/kafka"
	"github.com/fastex-delivery/service-booking/internal/logger"
	"github.com/fastex-delivery/service-booking/internal/middleware"
	"github.com/fastex-delivery/service-booking/internal/notification"
	"github.com/fastex-delivery/service-booking/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("notify_mode", cfg.Notify.Mode),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&repository.BookingModel{}); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}

	// Initialize identity provider
	provider := identity.NewJWTProvider(cfg.JWTSecret)

	// Select the notification dispatch strategy. The lifecycle manager only
	// sees the Notifier contract.
	var notifier notification.Notifier
	if cfg.Notify.Mode == "queued" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		defer func() { _ = producer.Close() }()
		notifier = notification.NewQueuedNotifier(producer, cfg.Kafka.NotificationsTopic, log)
	} else {
		mailer := notification.NewSMTPMailer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
		notifier = notification.NewDirectNotifier(mailer, log)
	}

	// Initialize repository and application service
	bookingRepo := repository.NewGormBookingRepository(db)
	bookingService := application.NewBookingService(bookingRepo, notifier, cfg.S3ImageURL, log)

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	masterHandler := handler.NewMasterDataHandler()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RequestID())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db, "service-booking")
	healthHandler.RegisterRoutes(router)

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup, provider)
	masterHandler.RegisterRoutes(&router.RouterGroup)

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

	log.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
