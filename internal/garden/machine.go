package garden

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/growth"
	"github.com/osse101/DailyGarden_Go/internal/reward"
)

// Machine applies the garden rules: planting, growth ticks, harvesting and capacity.
// It owns no state; callers pass the player and garden they hold.
type Machine struct {
	growth      *growth.Engine
	rewards     *reward.Calculator
	newID       func() string
	maxCapacity int
}

// Option configures a Machine
type Option func(*Machine)

// WithIDGenerator overrides how plant ids are generated
func WithIDGenerator(fn func() string) Option {
	return func(m *Machine) { m.newID = fn }
}

// WithMaxCapacity caps AddCapacity; zero leaves capacity unbounded
func WithMaxCapacity(n int) Option {
	return func(m *Machine) { m.maxCapacity = n }
}

// NewMachine creates a garden state machine
func NewMachine(growthEngine *growth.Engine, rewards *reward.Calculator, opts ...Option) *Machine {
	m := &Machine{
		growth:  growthEngine,
		rewards: rewards,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SeedCost returns the coin price of a seed
func (m *Machine) SeedCost(t domain.PlantType) int {
	switch t {
	case domain.PlantTypeFlower:
		return FlowerSeedCost
	case domain.PlantTypeVegetable:
		return VegetableSeedCost
	case domain.PlantTypeFruit:
		return FruitSeedCost
	case domain.PlantTypeHerb:
		return HerbSeedCost
	}
	return 0
}

// Plant buys and plants a seed. Nothing changes unless both capacity and coins allow it.
func (m *Machine) Plant(p *domain.Player, g *domain.Garden, t domain.PlantType, now time.Time, inherited []domain.Boost) (*domain.Plant, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlantType, t)
	}
	if g.IsFull() {
		return nil, fmt.Errorf("%w: %d/%d plots used", domain.ErrGardenFull, len(g.Plants), g.MaxPlants)
	}
	cost := m.SeedCost(t)
	if p.Coins < cost {
		return nil, fmt.Errorf("%w: %s seed costs %d, have %d", domain.ErrInsufficientFunds, t, cost, p.Coins)
	}

	p.Coins -= cost
	return m.place(g, t, now, inherited), nil
}

// PlantPaid plants a seed that was already paid for, such as a premium seed
func (m *Machine) PlantPaid(g *domain.Garden, t domain.PlantType, now time.Time, inherited []domain.Boost) (*domain.Plant, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlantType, t)
	}
	if g.IsFull() {
		return nil, fmt.Errorf("%w: %d/%d plots used", domain.ErrGardenFull, len(g.Plants), g.MaxPlants)
	}
	return m.place(g, t, now, inherited), nil
}

func (m *Machine) place(g *domain.Garden, t domain.PlantType, now time.Time, inherited []domain.Boost) *domain.Plant {
	plant := &domain.Plant{
		ID:        m.newID(),
		Type:      t,
		PlantedAt: now,
		Boosts:    append([]domain.Boost{}, inherited...),
	}
	g.Plants = append(g.Plants, plant)
	return plant
}

// Harvest removes a ready plant and credits its reward, leveling the player as needed
func (m *Machine) Harvest(p *domain.Player, g *domain.Garden, plantID string, now time.Time) (domain.HarvestResult, error) {
	idx, plant := g.FindPlant(plantID)
	if plant == nil {
		return domain.HarvestResult{}, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}
	if !plant.IsReady {
		return domain.HarvestResult{}, fmt.Errorf("%w: %s at %.1f%%", domain.ErrPlantNotReady, plantID, plant.Growth)
	}

	coins, xp := m.rewards.Harvest(plant)
	p.Coins += coins
	levelUp := m.rewards.GrantExperience(p, xp)

	g.Plants = append(g.Plants[:idx], g.Plants[idx+1:]...)
	g.LastHarvestTime = now

	return domain.HarvestResult{
		PlantID:    plant.ID,
		Type:       plant.Type,
		Coins:      coins,
		Experience: xp,
		LevelUp:    levelUp,
	}, nil
}

// HarvestAllReady harvests every ready plant in collection order
func (m *Machine) HarvestAllReady(p *domain.Player, g *domain.Garden, now time.Time) []domain.HarvestResult {
	var ready []string
	for _, plant := range g.Plants {
		if plant.IsReady {
			ready = append(ready, plant.ID)
		}
	}

	results := make([]domain.HarvestResult, 0, len(ready))
	for _, id := range ready {
		res, err := m.Harvest(p, g, id, now)
		if err != nil {
			continue
		}
		results = append(results, res)
	}
	return results
}

// TickResult reports what a growth tick changed
type TickResult struct {
	// Readied holds plants that crossed the ready threshold during this tick
	Readied []*domain.Plant
	// Grew is true when any plant's growth or boosts changed
	Grew bool
}

// Tick advances every growing plant by elapsed using its own boosts, then decays all boosts
func (m *Machine) Tick(g *domain.Garden, elapsed time.Duration) TickResult {
	var res TickResult
	if elapsed <= 0 {
		return res
	}
	for _, plant := range g.Plants {
		if !plant.IsReady {
			before := plant.Growth
			if m.growth.Advance(plant, elapsed) {
				res.Readied = append(res.Readied, plant)
			}
			if plant.Growth != before {
				res.Grew = true
			}
		}
		if len(plant.Boosts) > 0 {
			plant.Boosts = boost.Decay(plant.Boosts, elapsed)
			res.Grew = true
		}
	}
	return res
}

// StampBoost attaches a fresh copy of every effect of def to each plant in the garden
func (m *Machine) StampBoost(g *domain.Garden, def boost.Definition) {
	for _, plant := range g.Plants {
		plant.Boosts = append(plant.Boosts, boost.Stamp(def, def.Duration)...)
	}
}

// AddCapacity adds one plot to the garden
func (m *Machine) AddCapacity(g *domain.Garden) error {
	if m.maxCapacity > 0 && g.MaxPlants >= m.maxCapacity {
		return fmt.Errorf("%w: %d", domain.ErrCapacityMaxedOut, m.maxCapacity)
	}
	g.MaxPlants++
	return nil
}

// Normalize repairs a garden loaded from storage so every invariant holds
func (m *Machine) Normalize(g *domain.Garden) {
	if g.MaxPlants < 1 {
		g.MaxPlants = domain.DefaultGardenMaxPlants
	}
	if g.Level < 1 {
		g.Level = domain.DefaultGardenLevel
	}
	if g.Productivity <= 0 {
		g.Productivity = domain.DefaultGardenProductivity
	}
	kept := g.Plants[:0]
	for _, plant := range g.Plants {
		if plant == nil || !plant.Type.Valid() {
			continue
		}
		growth.Normalize(plant)
		live := plant.Boosts[:0]
		for _, b := range plant.Boosts {
			if b.RemainingTime > 0 {
				live = append(live, b)
			}
		}
		plant.Boosts = live
		kept = append(kept, plant)
	}
	g.Plants = kept
}
