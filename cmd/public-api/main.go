package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/public-api/app/server"
	"github.com/muhammadchandra19/public-api/pkg/config"
	"github.com/muhammadchandra19/public-api/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	srv, err := server.InitServer(ctx, *cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(ctx); err != nil {
			srv.Logger.Error(err, logger.Field{Key: "action", Value: "serve_http"})
			quit <- syscall.SIGTERM
		}
	}()

	<-quit

	srv.Logger.Info("Shutting down public api...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()

	if err := srv.Stop(shutdownCtx); err != nil {
		srv.Logger.Error(err, logger.Field{Key: "action", Value: "shutdown"})
	}

	srv.Logger.Info("Public api stopped")
}
