package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripboard-service/internal/infrastructure/bootstrap"
	"tripboard-service/internal/infrastructure/config"
	"tripboard-service/internal/infrastructure/router"
	"tripboard-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Tripboard Service", "version", cfg.AppVersion, "storage", cfg.StorageBackend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize service", "error", err)
	}

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(app.Handler, router.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Logger:         log.With("component", "http"),
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := app.Close(shutdownCtx); err != nil {
		log.Error("Storage disconnect error", "error", err)
	}

	log.Info("Tripboard Service stopped")
}
