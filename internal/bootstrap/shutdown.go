package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DailyGarden_Go/internal/engine"
	"github.com/osse101/DailyGarden_Go/internal/server"
	"github.com/osse101/DailyGarden_Go/internal/store"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Engine *engine.Engine
	Store  store.Store
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting commands)
// 2. Engine (stop ticks, flush the final snapshot)
// 3. Store (release connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Engine != nil {
		slog.Info(LogMsgStoppingEngine)
		if err := components.Engine.Stop(ctx); err != nil {
			slog.Error(LogMsgEngineStopFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
