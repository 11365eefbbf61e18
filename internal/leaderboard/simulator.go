package leaderboard

import (
	"math/rand/v2"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// SimulationConfig holds the probabilities that drive demo player behavior
type SimulationConfig struct {
	ActiveWindow      time.Duration
	InactiveOffset    time.Duration
	ProgressChance    float64
	GoInactiveChance  float64
	ComeBackChance    float64
	LevelUpChance     float64
	GemChance         float64
	MinCoinsGained    int
	CoinsGainedSpread int
	MaxGemsGained     int
}

// DefaultSimulationConfig returns the stock demo behavior
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		ActiveWindow:      5 * time.Minute,
		InactiveOffset:    10 * time.Minute,
		ProgressChance:    0.3,
		GoInactiveChance:  0.1,
		ComeBackChance:    0.2,
		LevelUpChance:     0.1,
		GemChance:         0.2,
		MinCoinsGained:    20,
		CoinsGainedSpread: 100,
		MaxGemsGained:     3,
	}
}

// Simulator nudges demo entries so the board feels alive
type Simulator struct {
	cfg SimulationConfig
	rng *rand.Rand
}

// NewSimulator creates a simulator with the given source of randomness
func NewSimulator(cfg SimulationConfig, rng *rand.Rand) *Simulator {
	return &Simulator{cfg: cfg, rng: rng}
}

// SimulationResult summarizes one pass
type SimulationResult struct {
	Progressed int
	WentIdle   int
	CameBack   int
}

// Changed reports whether any entry was touched
func (r SimulationResult) Changed() bool {
	return r.Progressed+r.WentIdle+r.CameBack > 0
}

// Step runs one simulation pass over every demo entry on the board.
// Real players are never touched.
func (s *Simulator) Step(b *Board, now time.Time) SimulationResult {
	var result SimulationResult
	updated := make([]domain.LeaderboardEntry, 0, b.Len())

	for _, e := range b.entries {
		if !e.IsDemo {
			continue
		}
		active := e.LastActivity != nil && now.Sub(*e.LastActivity) < s.cfg.ActiveWindow
		r := s.rng.Float64()

		switch {
		case active && r < s.cfg.ProgressChance:
			s.progress(&e, now)
			result.Progressed++
		case active && r < s.cfg.ProgressChance+s.cfg.GoInactiveChance:
			idle := now.Add(-s.cfg.InactiveOffset)
			e.LastActivity = &idle
			result.WentIdle++
		case !active && r < s.cfg.ComeBackChance:
			back := now
			e.LastActivity = &back
			result.CameBack++
		default:
			continue
		}
		updated = append(updated, e)
	}

	if len(updated) > 0 {
		b.Merge(updated)
	}
	return result
}

// progress credits a demo entry with a small amount of play.
// Demo entries keep no wallet, so the non-level part of the score is
// attributed to coins before the gain is applied.
func (s *Simulator) progress(e *domain.LeaderboardEntry, now time.Time) {
	remainder := max(0, e.Score-(e.Level-1)*PointsPerLevel)
	coins := remainder*CoinsPerPoint + s.cfg.MinCoinsGained + s.rng.IntN(max(1, s.cfg.CoinsGainedSpread))

	gems := 0
	if s.rng.Float64() < s.cfg.GemChance {
		gems = s.rng.IntN(max(1, s.cfg.MaxGemsGained)) + 1
	}
	if s.rng.Float64() < s.cfg.LevelUpChance {
		e.Level++
	}

	e.Score = ScoreOf(e.Level, coins, gems, 1)
	t := now
	e.LastActivity = &t
}
