package boost

import (
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Product multiplies together every live boost of the given type.
// It returns 1 when none apply.
func Product(boosts []domain.Boost, t domain.BoostType) float64 {
	m := 1.0
	for _, b := range boosts {
		if b.Type == t && b.RemainingTime > 0 {
			m *= b.Multiplier
		}
	}
	return m
}

// Decay subtracts elapsed from every boost and drops the ones that ran out.
// The returned slice reuses the input's backing array.
func Decay(boosts []domain.Boost, elapsed time.Duration) []domain.Boost {
	if elapsed <= 0 {
		return boosts
	}
	secs := elapsed.Seconds()
	kept := boosts[:0]
	for _, b := range boosts {
		b.RemainingTime -= secs
		if b.RemainingTime > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}
