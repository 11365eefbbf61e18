package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/boost"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/garden"
	"github.com/osse101/DailyGarden_Go/internal/leaderboard"
	"github.com/osse101/DailyGarden_Go/internal/logger"
	"github.com/osse101/DailyGarden_Go/internal/validation"
)

// Export returns the player, garden and leaderboard as an indented JSON backup
func (e *Engine) Export(ctx context.Context) ([]byte, error) {
	e.mu.Lock()
	backup := domain.Backup{
		Version:     domain.BackupVersion,
		Player:      e.player.Clone(),
		Garden:      e.field.Clone(),
		Leaderboard: e.board.Entries(),
		ExportDate:  e.clock.Now().UTC(),
	}
	e.mu.Unlock()

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Import replaces the player and garden with a backup document. A leaderboard in
// the document replaces the current one; without one, the imported player takes
// over the previous local entry. Invalid documents change nothing.
func (e *Engine) Import(ctx context.Context, data []byte) error {
	if err := e.schemas.ValidateBytes(data, validation.SchemaBackup); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBackup, err)
	}
	var backup domain.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBackup, err)
	}
	if backup.Version > domain.BackupVersion {
		return fmt.Errorf("%w: version %d is newer than %d", domain.ErrInvalidBackup, backup.Version, domain.BackupVersion)
	}
	if backup.Player == nil || backup.Garden == nil {
		return fmt.Errorf("%w: player and garden are required", domain.ErrInvalidBackup)
	}

	player := backup.Player
	normalizePlayer(player)
	e.garden.Normalize(backup.Garden)

	err := e.commit(ctx, "import", func(now time.Time) ([]published, error) {
		if backup.Leaderboard != nil {
			e.board.Restore(backup.Leaderboard)
		} else if e.player != nil && e.player.ID != player.ID {
			e.board.Remove(e.player.ID)
		}
		e.player = player
		e.field = backup.Garden
		return nil, nil
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgImported,
		"player_id", player.ID,
		"plants", len(backup.Garden.Plants),
		"exported_at", backup.ExportDate)
	return nil
}

// Reset wipes the store and starts over with a fresh player, garden and demo roster
func (e *Engine) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := e.saver.Store().Clear(ctx); err != nil {
		log.Error(LogMsgResetClearFailed, "error", err)
	}

	err := e.commit(ctx, "reset", func(now time.Time) ([]published, error) {
		e.player = domain.NewPlayer(newPlayerID(), e.opts.PlayerName, now)
		e.field = domain.NewGarden(now)
		e.ledger = boost.NewLedger()
		e.seeds = garden.SeedInventory{}
		e.shop.Cooldowns().Clear()
		e.board.Clear()
		e.board.Merge(leaderboard.GenerateRoster(e.opts.RosterNames, e.rng, now))
		e.demoSeeded = true
		e.lastTick = now
		return nil, nil
	})
	if err != nil {
		return err
	}
	log.Info(LogMsgReset)
	return nil
}
