package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yesigotthis/adhd-hub/pkg/assessments"
	"github.com/yesigotthis/adhd-hub/pkg/auth"
	"github.com/yesigotthis/adhd-hub/pkg/catalog/api"
	"github.com/yesigotthis/adhd-hub/pkg/catalog/config"
	"github.com/yesigotthis/adhd-hub/pkg/favorites"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	svc, _, _, err := cfg.BuildService(ctx, logger)
	if err != nil {
		return fmt.Errorf("build service: %w", err)
	}

	tokenAuth := auth.NewVerifier(cfg.Auth.JWTSecret)

	var opts []api.ServerOption
	if cfg.Environment == "development" {
		opts = append(opts, api.WithDevCORS())
	}

	server := api.NewServer(svc, assessments.NewCatalog(), favorites.NewStore(), tokenAuth, opts...)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("content server starting",
			"port", cfg.Port,
			"env", cfg.Environment,
			"store", cfg.StoreBackend,
			"blob", cfg.BlobBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
