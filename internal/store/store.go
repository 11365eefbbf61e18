// Package store persists engine state as string values under fixed keys.
// Backends live in subpackages; every one of them satisfies Store.
package store

import (
	"context"
	"errors"
)

// Persisted keys
const (
	KeyPlayer         = "player_data"
	KeyGarden         = "garden_data"
	KeyActiveBoosts   = "active_boosts"
	KeyLeaderboard    = "leaderboard_data"
	KeyDemoPlayers    = "demo_players_data"
	KeyPremiumSeeds   = "premium_seeds"
	KeyBoostCooldowns = "boost_cooldowns"
	KeyLastSaveTime   = "last_save_time"
)

// AllKeys lists every key the engine writes
var AllKeys = []string{
	KeyPlayer,
	KeyGarden,
	KeyActiveBoosts,
	KeyLeaderboard,
	KeyDemoPlayers,
	KeyPremiumSeeds,
	KeyBoostCooldowns,
	KeyLastSaveTime,
}

// Backend names accepted by configuration
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

// ErrClosed is returned by backends used after Close
var ErrClosed = errors.New("store is closed")

// Store is an asynchronous string key-value store
type Store interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
