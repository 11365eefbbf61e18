package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DailyGarden_Go/internal/store"
)

const (
	sqlSelectState = `SELECT state_value FROM garden_state WHERE state_key = $1`
	sqlUpsertState = `
		INSERT INTO garden_state (state_key, state_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (state_key) DO UPDATE
		SET state_value = EXCLUDED.state_value, updated_at = EXCLUDED.updated_at
	`
	sqlDeleteState    = `DELETE FROM garden_state WHERE state_key = $1`
	sqlDeleteAllState = `DELETE FROM garden_state`
)

// KVStore is a store.Store over the garden_state table.
// The pool is owned by the caller; Close does not close it.
type KVStore struct {
	db *pgxpool.Pool
}

var _ store.Store = (*KVStore)(nil)

// NewKVStore creates a store over an already-migrated database
func NewKVStore(db *pgxpool.Pool) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, sqlSelectState, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, sqlUpsertState, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, sqlDeleteState, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, sqlDeleteAllState); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}

func (s *KVStore) Close() error {
	return nil
}
