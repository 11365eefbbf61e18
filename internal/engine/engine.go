// Package engine is the composition root of the garden simulation. It owns every
// piece of mutable state, serializes commands and ticks behind one mutex, and
// publishes snapshots to subscribers after each change.
package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/clock"
	"github.com/osse101/DailyGarden_Go/internal/cooldown"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/garden"
	"github.com/osse101/DailyGarden_Go/internal/growth"
	"github.com/osse101/DailyGarden_Go/internal/leaderboard"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/metrics"
	"github.com/osse101/DailyGarden_Go/internal/offline"
	"github.com/osse101/DailyGarden_Go/internal/reward"
	"github.com/osse101/DailyGarden_Go/internal/scheduler"
	"github.com/osse101/DailyGarden_Go/internal/shop"
	"github.com/osse101/DailyGarden_Go/internal/sse"
	"github.com/osse101/DailyGarden_Go/internal/store"
	"github.com/osse101/DailyGarden_Go/internal/validation"
	"github.com/osse101/DailyGarden_Go/internal/worker"
)

// Options configures an Engine. Zero values fall back to DefaultOptions.
type Options struct {
	Clock    clock.Clock
	Rand     *rand.Rand
	Location *time.Location

	PlayerName        string
	MaxGardenCapacity int

	TickInterval       time.Duration
	SimulationInterval time.Duration
	SaveProbability    float64

	RosterNames []string
	Simulation  leaderboard.SimulationConfig
	Cooldowns   cooldown.Config

	// NewPlantID overrides plant id generation
	NewPlantID func() string
}

// DefaultOptions returns the stock cadence and tuning
func DefaultOptions() Options {
	return Options{
		TickInterval:       DefaultTickInterval,
		SimulationInterval: DefaultSimulationInterval,
		SaveProbability:    DefaultSaveProbability,
		Simulation:         leaderboard.DefaultSimulationConfig(),
	}
}

// Engine owns the player, garden, boosts, premium seeds and leaderboard
type Engine struct {
	mu sync.Mutex

	clock clock.Clock
	rng   *rand.Rand
	loc   *time.Location
	opts  Options

	rewards *reward.Calculator
	garden  *garden.Machine
	offline *offline.Reconciler
	ledger  *boost.Ledger
	board   *leaderboard.Board
	sim     *leaderboard.Simulator
	shop    *shop.Shop
	schemas validation.SchemaValidator

	player     *domain.Player
	field      *domain.Garden
	seeds      garden.SeedInventory
	demoSeeded bool
	lastTick   time.Time

	hub       *sse.Hub
	saver     *store.Saver
	savePool  *worker.Pool
	tickPool  *worker.Pool
	sched     *scheduler.Scheduler
	collector *sse.Subscription

	startOnce sync.Once
	stopOnce  sync.Once
}

// New wires an engine over st. Call Load before Start.
func New(st store.Store, opts Options) *Engine {
	def := DefaultOptions()
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = def.TickInterval
	}
	if opts.SimulationInterval <= 0 {
		opts.SimulationInterval = def.SimulationInterval
	}
	if opts.Simulation == (leaderboard.SimulationConfig{}) {
		opts.Simulation = def.Simulation
	}

	growthEngine := growth.NewEngine()
	rewards := reward.NewCalculator()
	machineOpts := []garden.Option{garden.WithMaxCapacity(opts.MaxGardenCapacity)}
	if opts.NewPlantID != nil {
		machineOpts = append(machineOpts, garden.WithIDGenerator(opts.NewPlantID))
	}

	savePool := worker.NewPool(saveWorkers, saveQueueSize)
	tickPool := worker.NewPool(tickWorkers, tickQueueSize)

	now := opts.Clock.Now()
	return &Engine{
		clock:    opts.Clock,
		rng:      opts.Rand,
		loc:      opts.Location,
		opts:     opts,
		rewards:  rewards,
		garden:   garden.NewMachine(growthEngine, rewards, machineOpts...),
		offline:  offline.NewReconciler(growthEngine, opts.Location),
		ledger:   boost.NewLedger(),
		board:    leaderboard.NewBoard(),
		sim:      leaderboard.NewSimulator(opts.Simulation, opts.Rand),
		shop:     shop.New(cooldown.NewTracker(opts.Cooldowns)),
		schemas:  validation.NewSchemaValidator(),
		player:   domain.NewPlayer(newPlayerID(), opts.PlayerName, now),
		field:    domain.NewGarden(now),
		seeds:    garden.SeedInventory{},
		lastTick: now,
		hub:      sse.NewHub(),
		saver:    store.NewSaver(st, savePool),
		savePool: savePool,
		tickPool: tickPool,
		sched:    scheduler.New(tickPool),
	}
}

// Start begins periodic growth and simulation ticks
func (e *Engine) Start() {
	e.startOnce.Do(func() {
		e.hub.Start()
		collector := metrics.NewEventMetricsCollector()
		e.collector = sse.Subscribe(e.hub, collector.EventTypes(), func(ev sse.Event) {
			collector.HandleEvent(ev.Type, ev.Payload)
		})

		e.savePool.Start()
		e.tickPool.Start()

		e.mu.Lock()
		e.lastTick = e.clock.Now()
		e.mu.Unlock()

		e.sched.Schedule(JobGrowthTick, e.opts.TickInterval, worker.JobFunc(func(ctx context.Context) error {
			e.Tick(ctx)
			return nil
		}))
		e.sched.Schedule(JobSimulationTick, e.opts.SimulationInterval, worker.JobFunc(func(ctx context.Context) error {
			e.Simulate(ctx)
			return nil
		}))

		slog.Info(LogMsgEngineStarted,
			"tick_interval", e.opts.TickInterval,
			"simulation_interval", e.opts.SimulationInterval)
	})
}

// Stop halts ticking, drains queued saves and writes a final snapshot.
// It is safe to call more than once and without a prior Start.
func (e *Engine) Stop(ctx context.Context) error {
	var err error
	e.stopOnce.Do(func() {
		e.sched.Stop()
		e.tickPool.Stop()
		e.savePool.Stop()

		e.mu.Lock()
		snap := e.snapshotLocked(e.clock.Now())
		e.mu.Unlock()
		err = e.saver.SaveNow(ctx, snap)

		if e.collector != nil {
			e.collector.Close()
		}
		e.hub.Stop()
		logger.FromContext(ctx).Info(LogMsgEngineStopped)
	})
	return err
}

// Hub exposes the event hub for stream handlers
func (e *Engine) Hub() *sse.Hub {
	return e.hub
}

// Subscribe registers fn for the given event types; empty means all.
// Close the returned subscription when done.
func (e *Engine) Subscribe(eventTypes []string, fn func(sse.Event)) *sse.Subscription {
	return sse.Subscribe(e.hub, eventTypes, fn)
}

// Player returns a copy of the player
func (e *Engine) Player() *domain.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player.Clone()
}

// Garden returns a copy of the garden
func (e *Engine) Garden() *domain.Garden {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.field.Clone()
}

// Leaderboard returns a copy of the canonical ranked entries
func (e *Engine) Leaderboard() []domain.LeaderboardEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Entries()
}

// LeaderboardView returns the entries re-sorted for a category
func (e *Engine) LeaderboardView(category domain.LeaderboardCategory) []domain.LeaderboardEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.View(category)
}

// ActiveBoost is a ledger entry still running
type ActiveBoost struct {
	ID               string    `json:"id"`
	RemainingSeconds int       `json:"remaining_seconds"`
	ExpiresAt        time.Time `json:"expires_at"`
}

// Status is a read model of everything a client shows at once
type Status struct {
	Player          *domain.Player     `json:"player"`
	Garden          *domain.Garden     `json:"garden"`
	Rank            int                `json:"rank"`
	ActiveBoosts    []ActiveBoost      `json:"active_boosts"`
	BoostCooldowns  map[string]int     `json:"boost_cooldowns"`
	PremiumSeeds    map[string]int     `json:"premium_seeds"`
	CanClaimDaily   bool               `json:"can_claim_daily"`
	NextDailyReward domain.DailyReward `json:"next_daily_reward"`
	PremiumActive   bool               `json:"premium_active"`
	ServerTime      time.Time          `json:"server_time"`
}

// Status returns a consistent view of the current state
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()

	active := make([]ActiveBoost, 0, e.ledger.Len())
	for _, id := range e.ledger.ActiveIDs(now) {
		exp, _ := e.ledger.Expiry(id)
		active = append(active, ActiveBoost{
			ID:               id,
			RemainingSeconds: int(e.ledger.Remaining(id, now).Seconds()),
			ExpiresAt:        exp,
		})
	}

	cooldowns := make(map[string]int)
	for _, id := range e.shop.Cooldowns().Active(now) {
		if _, remaining := e.shop.Cooldowns().CheckCooldown(id, now); remaining > 0 {
			cooldowns[id] = int(remaining.Seconds())
		}
	}

	return Status{
		Player:          e.player.Clone(),
		Garden:          e.field.Clone(),
		Rank:            e.board.Rank(e.player.ID),
		ActiveBoosts:    active,
		BoostCooldowns:  cooldowns,
		PremiumSeeds:    e.seeds.Clone(),
		CanClaimDaily:   reward.CanClaimDaily(e.player, now, e.loc),
		NextDailyReward: reward.DailyRewardFor(e.player.ConsecutiveLoginDays),
		PremiumActive:   e.player.PremiumActive(now),
		ServerTime:      now,
	}
}

// SnapshotEvents returns the current state as events, for streams that just connected
func (e *Engine) SnapshotEvents(eventTypes []string) []sse.Event {
	e.mu.Lock()
	events := e.stateEventsLocked()
	e.mu.Unlock()

	want := func(string) bool { return true }
	if len(eventTypes) > 0 {
		filter := make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			filter[t] = true
		}
		want = func(t string) bool { return filter[t] }
	}

	now := e.clock.Now().Unix()
	out := make([]sse.Event, 0, len(events))
	for _, ev := range events {
		if want(ev.Type) {
			out = append(out, sse.Event{Type: ev.Type, Timestamp: now, Payload: ev.Payload})
		}
	}
	return out
}
