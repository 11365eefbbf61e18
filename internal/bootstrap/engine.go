package bootstrap

import (
	"log/slog"

	"github.com/osse101/DailyGarden_Go/internal/config"
	"github.com/osse101/DailyGarden_Go/internal/engine"
	"github.com/osse101/DailyGarden_Go/internal/store"
)

// EngineOptions maps configuration and the optional tuning file onto engine options
func EngineOptions(cfg *config.Config, tuning *config.Tuning) engine.Options {
	opts := engine.DefaultOptions()
	opts.PlayerName = cfg.PlayerName
	opts.MaxGardenCapacity = cfg.MaxGardenCapacity
	opts.TickInterval = cfg.TickInterval
	opts.SimulationInterval = cfg.SimulationInterval
	opts.SaveProbability = cfg.SaveProbability

	if tuning != nil {
		opts.Simulation = tuning.ApplySimulation(opts.Simulation)
		if len(tuning.RosterNames) > 0 {
			opts.RosterNames = tuning.RosterNames
		}
	}
	return opts
}

// NewEngine loads the tuning file and builds an engine over st.
// The caller runs Load and Start.
func NewEngine(cfg *config.Config, st store.Store) (*engine.Engine, error) {
	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		return nil, err
	}
	if cfg.TuningFile != "" {
		slog.Info(LogMsgTuningLoaded, "path", cfg.TuningFile, "roster_names", len(tuning.RosterNames))
	}
	return engine.New(st, EngineOptions(cfg, tuning)), nil
}
