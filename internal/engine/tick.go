package engine

import (
	"context"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/metrics"
	"github.com/osse101/DailyGarden_Go/internal/store"
)

// Tick advances growth and boost decay by the clock time since the previous tick.
// Roughly one tick in 1/SaveProbability also persists the state.
func (e *Engine) Tick(ctx context.Context) {
	start := time.Now()
	defer func() {
		metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	e.mu.Lock()
	now := e.clock.Now()
	elapsed := now.Sub(e.lastTick)
	e.lastTick = now
	if elapsed <= 0 {
		e.mu.Unlock()
		return
	}
	if elapsed > MaxTickStep {
		elapsed = MaxTickStep
	}

	res := e.garden.Tick(e.field, elapsed)
	e.ledger.Prune(now)

	var events []published
	if res.Grew || len(res.Readied) > 0 {
		events = append(events, published{Type: domain.EventTypeGardenUpdated, Payload: e.field.Clone()})
	}
	for _, plant := range res.Readied {
		events = append(events, published{
			Type:    domain.EventTypePlantReady,
			Payload: domain.PlantReadyPayload{PlantID: plant.ID, Type: plant.Type},
		})
	}

	var snap store.Snapshot
	if e.rng.Float64() < e.opts.SaveProbability {
		snap = e.snapshotLocked(now)
	}
	e.mu.Unlock()

	log := logger.FromContext(ctx)
	for _, ev := range events {
		if ready, ok := ev.Payload.(domain.PlantReadyPayload); ok {
			log.Debug(LogMsgPlantReady, "plant_id", ready.PlantID, "type", ready.Type)
		}
	}
	e.broadcast(events)
	if snap != nil {
		e.saver.Save(snap)
	}
}

// Simulate runs one pass of demo competitor activity
func (e *Engine) Simulate(ctx context.Context) {
	e.mu.Lock()
	now := e.clock.Now()
	res := e.sim.Step(e.board, now)
	if !res.Changed() {
		e.mu.Unlock()
		return
	}
	entries := e.board.Entries()
	raw, err := store.Encode(entries)
	e.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSimulated,
		"progressed", res.Progressed,
		"went_idle", res.WentIdle,
		"came_back", res.CameBack)
	e.hub.Broadcast(domain.EventTypeLeaderboardUpdated, entries)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEncodeFailed, "key", store.KeyLeaderboard, "error", err)
		return
	}
	e.saver.Save(store.Snapshot{store.KeyLeaderboard: raw})
}
