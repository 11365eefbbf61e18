package boost

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Effect is one multiplier granted by a boost
type Effect struct {
	Type       domain.BoostType `json:"type"`
	Multiplier float64          `json:"multiplier"`
}

// Definition describes a purchasable boost
type Definition struct {
	ID       string        `json:"id"`
	Duration time.Duration `json:"duration"`
	Effects  []Effect      `json:"effects"`
}

var catalog = map[string]Definition{
	domain.BoostIDGrowth: {
		ID:       domain.BoostIDGrowth,
		Duration: 30 * time.Minute,
		Effects:  []Effect{{Type: domain.BoostTypeGrowthSpeed, Multiplier: 5}},
	},
	domain.BoostIDCoin: {
		ID:       domain.BoostIDCoin,
		Duration: 30 * time.Minute,
		Effects:  []Effect{{Type: domain.BoostTypeCoinMultiplier, Multiplier: 2}},
	},
	domain.BoostIDMega: {
		ID:       domain.BoostIDMega,
		Duration: 15 * time.Minute,
		Effects: []Effect{
			{Type: domain.BoostTypeGrowthSpeed, Multiplier: 10},
			{Type: domain.BoostTypeCoinMultiplier, Multiplier: 5},
		},
	},
	domain.BoostIDExperience: {
		ID:       domain.BoostIDExperience,
		Duration: 2 * time.Hour,
		Effects:  []Effect{{Type: domain.BoostTypeExperienceMultiplier, Multiplier: 3}},
	},
}

// Lookup returns the definition for a boost id
func Lookup(id string) (Definition, error) {
	def, ok := catalog[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", domain.ErrUnknownBoost, id)
	}
	return def, nil
}

// Definitions returns every boost definition ordered by id
func Definitions() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, def := range catalog {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Stamp creates per-plant boost records for a definition lasting the given time
func Stamp(def Definition, lasting time.Duration) []domain.Boost {
	secs := lasting.Seconds()
	boosts := make([]domain.Boost, 0, len(def.Effects))
	for _, eff := range def.Effects {
		boosts = append(boosts, domain.Boost{
			Type:          eff.Type,
			Multiplier:    eff.Multiplier,
			Duration:      secs,
			RemainingTime: secs,
		})
	}
	return boosts
}
