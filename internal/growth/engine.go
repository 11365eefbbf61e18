package growth

import (
	"time"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
)

// Engine provides pure growth logic (no state, no clock)
type Engine struct{}

// NewEngine creates a new growth engine
func NewEngine() *Engine {
	return &Engine{}
}

// GrowDuration returns the unboosted time a plant type needs to go from 0 to ready
func (e *Engine) GrowDuration(t domain.PlantType) time.Duration {
	switch t {
	case domain.PlantTypeFlower:
		return FlowerGrowDuration
	case domain.PlantTypeVegetable:
		return VegetableGrowDuration
	case domain.PlantTypeFruit:
		return FruitGrowDuration
	case domain.PlantTypeHerb:
		return HerbGrowDuration
	}
	return 0
}

// BaseRate returns growth points per second for an unboosted plant
func (e *Engine) BaseRate(t domain.PlantType) float64 {
	d := e.GrowDuration(t)
	if d <= 0 {
		return 0
	}
	return domain.MaxGrowth / d.Seconds()
}

// Delta returns the growth gained over one step of elapsed time at the given multiplier
func (e *Engine) Delta(t domain.PlantType, elapsed time.Duration, multiplier float64) float64 {
	if elapsed <= 0 || multiplier <= 0 {
		return 0
	}
	return e.BaseRate(t) * elapsed.Seconds() * multiplier
}

// Multiplier returns the combined growth speed multiplier of a plant's live boosts
func (e *Engine) Multiplier(boosts []domain.Boost) float64 {
	return boost.Product(boosts, domain.BoostTypeGrowthSpeed)
}

// Advance grows a plant by one step using its own boosts.
// It returns true when the plant became ready during this step.
func (e *Engine) Advance(p *domain.Plant, elapsed time.Duration) bool {
	if p.IsReady {
		return false
	}
	p.Growth = Clamp(p.Growth + e.Delta(p.Type, elapsed, e.Multiplier(p.Boosts)))
	return settle(p)
}

// AdvanceFlat grows a plant at OfflineRate, ignoring its type and boosts.
// It returns true when the plant became ready.
func (e *Engine) AdvanceFlat(p *domain.Plant, elapsed time.Duration) bool {
	if p.IsReady || elapsed <= 0 {
		return false
	}
	p.Growth = Clamp(p.Growth + OfflineRate*elapsed.Seconds())
	return settle(p)
}

// Clamp bounds growth to [0, MaxGrowth], snapping values within tolerance of the ceiling
func Clamp(g float64) float64 {
	switch {
	case g < 0:
		return 0
	case g >= domain.MaxGrowth-readyTolerance:
		return domain.MaxGrowth
	}
	return g
}

// Normalize restores the ready invariant on a plant loaded from storage
func Normalize(p *domain.Plant) {
	p.Growth = Clamp(p.Growth)
	p.IsReady = p.Growth >= domain.MaxGrowth
}

func settle(p *domain.Plant) bool {
	if p.Growth >= domain.MaxGrowth {
		p.IsReady = true
		return true
	}
	return false
}
