package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/travel-content-admin/internal/api"
	"github.com/travel-content-admin/internal/config"
	"github.com/travel-content-admin/internal/session"
	"github.com/travel-content-admin/internal/upstream"
	"github.com/travel-content-admin/pkg/logger"
)

func main() {
	// Local .env overrides, ignored when absent
	godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting travel content admin server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Restore the persisted admin session, if any
	sessions := session.NewStore(cfg.Session.FilePath)
	if err := sessions.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load session store")
	}
	if sessions.Token() != "" {
		log.Info().Msg("Restored persisted admin session")
	}

	// Initialize upstream resource clients
	clients := upstream.NewClients(&cfg.Upstream, sessions, log)

	// Initialize router
	router := api.NewRouter(clients, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
