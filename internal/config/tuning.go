package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DailyGarden_Go/internal/leaderboard"
)

// Tuning overrides demo competitor behavior. Unset fields keep the defaults.
type Tuning struct {
	RosterNames []string         `yaml:"roster_names" validate:"omitempty,max=50,dive,required,max=32"`
	Simulation  SimulationTuning `yaml:"simulation"`
}

// SimulationTuning overrides leaderboard.SimulationConfig fields
type SimulationTuning struct {
	ActiveWindow      *time.Duration `yaml:"active_window" validate:"omitempty,gt=0"`
	InactiveOffset    *time.Duration `yaml:"inactive_offset" validate:"omitempty,gt=0"`
	ProgressChance    *float64       `yaml:"progress_chance" validate:"omitempty,gte=0,lte=1"`
	GoInactiveChance  *float64       `yaml:"go_inactive_chance" validate:"omitempty,gte=0,lte=1"`
	ComeBackChance    *float64       `yaml:"come_back_chance" validate:"omitempty,gte=0,lte=1"`
	LevelUpChance     *float64       `yaml:"level_up_chance" validate:"omitempty,gte=0,lte=1"`
	GemChance         *float64       `yaml:"gem_chance" validate:"omitempty,gte=0,lte=1"`
	MinCoinsGained    *int           `yaml:"min_coins_gained" validate:"omitempty,min=0"`
	CoinsGainedSpread *int           `yaml:"coins_gained_spread" validate:"omitempty,min=1"`
	MaxGemsGained     *int           `yaml:"max_gems_gained" validate:"omitempty,min=1"`
}

// LoadTuning reads a YAML tuning file. An empty path yields an empty Tuning.
func LoadTuning(path string) (*Tuning, error) {
	if path == "" {
		return &Tuning{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tuning file: %w", err)
	}
	defer f.Close()
	return ParseTuning(f)
}

// ParseTuning decodes and validates tuning YAML. Unknown keys are rejected.
func ParseTuning(r io.Reader) (*Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := validate.Struct(&t); err != nil {
		return nil, fmt.Errorf("invalid tuning file: %w", err)
	}
	return &t, nil
}

// ApplySimulation applies the overrides to base
func (t *Tuning) ApplySimulation(base leaderboard.SimulationConfig) leaderboard.SimulationConfig {
	s := t.Simulation
	if s.ActiveWindow != nil {
		base.ActiveWindow = *s.ActiveWindow
	}
	if s.InactiveOffset != nil {
		base.InactiveOffset = *s.InactiveOffset
	}
	if s.ProgressChance != nil {
		base.ProgressChance = *s.ProgressChance
	}
	if s.GoInactiveChance != nil {
		base.GoInactiveChance = *s.GoInactiveChance
	}
	if s.ComeBackChance != nil {
		base.ComeBackChance = *s.ComeBackChance
	}
	if s.LevelUpChance != nil {
		base.LevelUpChance = *s.LevelUpChance
	}
	if s.GemChance != nil {
		base.GemChance = *s.GemChance
	}
	if s.MinCoinsGained != nil {
		base.MinCoinsGained = *s.MinCoinsGained
	}
	if s.CoinsGainedSpread != nil {
		base.CoinsGainedSpread = *s.CoinsGainedSpread
	}
	if s.MaxGemsGained != nil {
		base.MaxGemsGained = *s.MaxGemsGained
	}
	return base
}
