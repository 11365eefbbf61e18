package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/DailyGarden_Go/docs"
	"github.com/osse101/DailyGarden_Go/internal/bootstrap"
	"github.com/osse101/DailyGarden_Go/internal/config"
	"github.com/osse101/DailyGarden_Go/internal/handler"
	"github.com/osse101/DailyGarden_Go/internal/server"
)

// @title DailyGarden API
// @version 1.0
// @description Idle garden simulation with a local leaderboard
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.CurrentVersion())
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	slog.Info(bootstrap.LogMsgStartingDailyGarden,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store", cfg.StoreBackend)

	ctx := context.Background()
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error(bootstrap.ErrMsgFailedOpenStore, "error", err)
		os.Exit(1)
	}

	eng, err := bootstrap.NewEngine(cfg, st)
	if err != nil {
		slog.Error("Failed to build engine", "error", err)
		_ = st.Close()
		os.Exit(1)
	}
	report := eng.Load(ctx)
	slog.Info("Garden loaded",
		"offline_seconds", report.ElapsedSeconds,
		"plants_readied", report.PlantsReadied,
		"bonus_coins", report.BonusCoins,
		"login_streak", report.ConsecutiveLoginDays)
	eng.Start()

	srv := server.NewServer(server.Options{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
	}, eng, handler.StoreHealthChecker{Store: st})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Engine: eng,
		Store:  st,
	})

	if exitCode != 0 {
		cancel()
		_ = logFile.Close()
		os.Exit(exitCode)
	}
}
