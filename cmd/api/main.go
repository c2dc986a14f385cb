package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	qhandlers "hiretrack-backend/application/queries/handlers"
	"hiretrack-backend/application/services"
	"hiretrack-backend/infrastructure/config"
	"hiretrack-backend/infrastructure/persistence/jsonfile"
	"hiretrack-backend/interfaces/http/rest"
	"hiretrack-backend/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Wire dependencies
	collector := observability.NewCollector("hiretrack")
	store := jsonfile.NewDocumentStore(cfg.DataFile, logger)
	documentService := services.NewDocumentService(store, logger, collector)
	layoutProvider := services.NewLayoutProvider(cfg.LayoutConfig())
	graphData := qhandlers.NewGetGraphDataHandler(store, layoutProvider, logger)

	// Hot reload layout tuning in development
	watcher, err := config.NewLayoutWatcher(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to start layout watcher", zap.Error(err))
	}
	defer watcher.Stop()
	watcher.OnChange(layoutProvider.Update)

	// Create router
	router := rest.NewRouter(cfg, documentService, graphData, collector, logger)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("dataFile", cfg.DataFile),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}

// newLogger builds the zap logger for the configured environment and level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
