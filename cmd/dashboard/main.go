package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "mountainride-backoffice/internal/api/http"
	"mountainride-backoffice/internal/config"
	"mountainride-backoffice/internal/jobs"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/repository/rest"
	"mountainride-backoffice/internal/scheduler"
	"mountainride-backoffice/internal/service"
	"mountainride-backoffice/internal/session"
	"mountainride-backoffice/internal/storage"
	"mountainride-backoffice/internal/wizard"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Mountain Ride backoffice...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("API configuration", "base_url", cfg.API.BaseURL, "timeout", cfg.RequestTimeout())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize session storage
	var kv storage.Storage
	switch cfg.Session.Backend {
	case "redis":
		logger.Info("Using redis session storage", "addr", cfg.Session.RedisAddr, "db", cfg.Session.RedisDB)
		redisStorage, err := storage.NewRedisStorage(ctx, cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB, cfg.Session.KeyPrefix)
		if err != nil {
			logger.Error("Failed to connect to redis", "error", err)
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisStorage.Close()
		kv = redisStorage
	case "memory":
		logger.Warn("Using in-memory session storage, sessions end with the process")
		kv = storage.NewMemoryStorage()
	default:
		logger.Info("Using file session storage", "path", cfg.Session.Path)
		fileStorage, err := storage.NewFileStorage(cfg.Session.Path)
		if err != nil {
			logger.Error("Failed to initialize file storage", "error", err)
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		kv = fileStorage
	}

	// Session restore runs in the background; pages show a loading state until it ends
	sessions := session.NewStore(kv)
	go func() {
		if err := sessions.Restore(ctx); err != nil {
			logger.Warn("Failed to restore session", "error", err)
		}
	}()

	// Initialize remote repositories
	store := rest.NewStore(rest.NewClient(cfg.API.BaseURL, sessions, cfg.RequestTimeout()))

	// Initialize Services
	productSvc := service.NewProductService(store.ProductRepository, store.ProductTypeRepository)
	notifier := httpapi.NewNotifier()
	router, err := httpapi.NewRouter(httpapi.Dependencies{
		Sessions:     sessions,
		Notifier:     notifier,
		Wizard:       wizard.New(),
		Auth:         service.NewAuthService(store.AuthRepository, sessions),
		Dashboard:    service.NewDashboardService(store.ProductRepository, store.CustomerRepository, store.RentalRepository),
		Customers:    service.NewCustomerService(store.CustomerRepository),
		ProductTypes: service.NewProductTypeService(store.ProductTypeRepository),
		Products:     productSvc,
		Rentals:      service.NewRentalService(store.RentalRepository),
	})
	if err != nil {
		logger.Error("Failed to build router", "error", err)
		log.Fatalf("Failed to build router: %v", err)
	}

	// Initialize scheduled jobs
	cronScheduler, err := scheduler.NewScheduler(jobs.NewJobRunner(sessions, notifier, cfg))
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}
	cronScheduler.Start()
	defer cronScheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Dashboard listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down dashboard...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
