package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/garden"
	"github.com/osse101/DailyGarden_Go/internal/leaderboard"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/metrics"
	"github.com/osse101/DailyGarden_Go/internal/store"
	"github.com/osse101/DailyGarden_Go/internal/validation"
)

func newPlayerID() string {
	return uuid.NewString()
}

// published is an event captured under the lock and broadcast after it is released
type published struct {
	Type    string
	Payload any
}

// Load restores saved state, applies offline progress and seeds the demo roster on
// first launch. Missing, unreadable or corrupt keys fall back to defaults.
func (e *Engine) Load(ctx context.Context) domain.OfflineReport {
	log := logger.FromContext(ctx)
	st := e.saver.Store()
	now := e.clock.Now()

	player := domain.NewPlayer(newPlayerID(), e.opts.PlayerName, now)
	var savedPlayer domain.Player
	if e.loadValidated(ctx, store.KeyPlayer, validation.SchemaPlayer, &savedPlayer) {
		player = &savedPlayer
		normalizePlayer(player)
	}

	field := domain.NewGarden(now)
	var savedGarden domain.Garden
	if e.loadValidated(ctx, store.KeyGarden, validation.SchemaGarden, &savedGarden) {
		field = &savedGarden
	}
	e.garden.Normalize(field)

	var entries []domain.LeaderboardEntry
	e.loadValidated(ctx, store.KeyLeaderboard, validation.SchemaLeaderboard, &entries)

	var boosts map[string]string
	e.loadPlain(ctx, st, store.KeyActiveBoosts, &boosts)

	var demoSeeded bool
	e.loadPlain(ctx, st, store.KeyDemoPlayers, &demoSeeded)

	var seeds map[string]int
	e.loadPlain(ctx, st, store.KeyPremiumSeeds, &seeds)

	var cooldowns map[string]string
	e.loadPlain(ctx, st, store.KeyBoostCooldowns, &cooldowns)

	var lastSave time.Time
	e.loadPlain(ctx, st, store.KeyLastSaveTime, &lastSave)

	e.mu.Lock()
	e.player = player
	e.field = field
	discarded := e.ledger.Restore(boosts, now)
	e.seeds = sanitizeSeeds(seeds)
	e.shop.Cooldowns().Restore(cooldowns)
	e.board.Restore(entries)

	report := e.offline.Reconcile(e.player, e.field, now)

	e.demoSeeded = demoSeeded
	if !e.demoSeeded {
		e.board.Merge(leaderboard.GenerateRoster(e.opts.RosterNames, e.rng, now))
		e.demoSeeded = true
		log.Info(LogMsgRosterSeeded, "count", e.board.Len())
	}
	e.board.Submit(e.player, now)
	e.lastTick = now

	snap := e.snapshotLocked(now)
	events := e.stateEventsLocked()
	e.mu.Unlock()

	if report.BonusCoins > 0 {
		metrics.CoinsEarned.WithLabelValues(metrics.SourceOffline).Add(float64(report.BonusCoins))
	}
	log.Info(LogMsgStateLoaded,
		"player_id", player.ID,
		"plants", len(field.Plants),
		"leaderboard", len(entries),
		"expired_boosts", discarded,
		"last_save", lastSave)
	log.Info(LogMsgOfflineReconciled,
		"elapsed_seconds", report.ElapsedSeconds,
		"growth_seconds", report.GrowthSeconds,
		"plants_readied", report.PlantsReadied,
		"bonus_coins", report.BonusCoins,
		"streak", report.ConsecutiveLoginDays,
		"premium_lapsed", report.PremiumLapsed)

	_ = e.saver.SaveNow(ctx, snap)
	e.broadcast(events)
	return report
}

// loadValidated reads key, checks it against a snapshot schema and decodes it into v
func (e *Engine) loadValidated(ctx context.Context, key, schema string, v any) bool {
	log := logger.FromContext(ctx)
	raw, ok, err := e.saver.Store().Get(ctx, key)
	if err != nil {
		log.Error(LogMsgStateLoadFailed, "key", key, "error", err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := e.schemas.ValidateBytes([]byte(raw), schema); err != nil {
		log.Warn(LogMsgStateCorrupt, "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Warn(LogMsgStateCorrupt, "key", key, "error", err)
		return false
	}
	return true
}

func (e *Engine) loadPlain(ctx context.Context, st store.Store, key string, v any) {
	if _, err := store.GetJSON(ctx, st, key, v); err != nil {
		logger.FromContext(ctx).Warn(LogMsgStateCorrupt, "key", key, "error", err)
	}
}

// normalizePlayer repairs values a schema cannot express
func normalizePlayer(p *domain.Player) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.ConsecutiveLoginDays < 1 {
		p.ConsecutiveLoginDays = 1
	}
	if p.Name == "" {
		p.Name = domain.DefaultPlayerName
	}
	if p.Experience < 0 {
		p.Experience = 0
	}
}

func sanitizeSeeds(in map[string]int) garden.SeedInventory {
	out := garden.SeedInventory{}
	for pack, n := range in {
		if n > 0 {
			// unknown packs are dropped by Add
			_ = out.Add(pack, n)
		}
	}
	return out
}

// snapshotLocked serializes every persisted key. Callers hold e.mu.
func (e *Engine) snapshotLocked(now time.Time) store.Snapshot {
	values := map[string]any{
		store.KeyPlayer:         e.player,
		store.KeyGarden:         e.field,
		store.KeyActiveBoosts:   e.ledger.Snapshot(),
		store.KeyLeaderboard:    e.board.Entries(),
		store.KeyDemoPlayers:    e.demoSeeded,
		store.KeyPremiumSeeds:   e.seeds,
		store.KeyBoostCooldowns: e.shop.Cooldowns().Snapshot(now),
		store.KeyLastSaveTime:   now.UTC(),
	}

	snap := make(store.Snapshot, len(values))
	for key, v := range values {
		raw, err := store.Encode(v)
		if err != nil {
			slog.Error(LogMsgEncodeFailed, "key", key, "error", err)
			continue
		}
		snap[key] = raw
	}
	return snap
}

// stateEventsLocked captures copies of the published state. Callers hold e.mu.
func (e *Engine) stateEventsLocked() []published {
	return []published{
		{Type: domain.EventTypePlayerUpdated, Payload: e.player.Clone()},
		{Type: domain.EventTypeGardenUpdated, Payload: e.field.Clone()},
		{Type: domain.EventTypeLeaderboardUpdated, Payload: e.board.Entries()},
	}
}

func (e *Engine) broadcast(events []published) {
	for _, ev := range events {
		e.hub.Broadcast(ev.Type, ev.Payload)
	}
}

// commit runs fn under the lock. On success the player's score is resubmitted,
// the state is published and a save is queued; on failure nothing is published.
func (e *Engine) commit(ctx context.Context, command string, fn func(now time.Time) ([]published, error)) error {
	e.mu.Lock()
	now := e.clock.Now()
	extra, err := fn(now)
	if err != nil {
		e.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgCommandRejected, "command", command, "error", err)
		return err
	}
	e.board.Submit(e.player, now)
	snap := e.snapshotLocked(now)
	events := append(e.stateEventsLocked(), extra...)
	e.mu.Unlock()

	e.broadcast(events)
	e.saver.Save(snap)
	return nil
}
