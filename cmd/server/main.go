package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pulsepoll/api/internal/adapters/handler/http"
	"github.com/pulsepoll/api/internal/adapters/repository/memory"
	"github.com/pulsepoll/api/internal/config"
	"github.com/pulsepoll/api/internal/core/services"
)

func main() {
	// A local .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo := memory.NewPollRepository()
	if err := memory.Seed(context.Background(), repo); err != nil {
		slog.Error("failed to seed poll store", "error", err)
		os.Exit(1)
	}

	pollService := services.NewPollService(repo)
	voteService := services.NewVoteService(repo)

	handler := http.NewHandler(
		http.NewPollHandler(pollService),
		http.NewVoteHandler(voteService),
		http.Options{
			AllowedOrigins:  cfg.CORSAllowedOrigins,
			RefreshInterval: cfg.ClientRefreshInterval,
		},
	)

	server := &stdhttp.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.HTTPPort),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
