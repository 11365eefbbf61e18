// Package redisstore keeps engine state in a Redis hash.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/DailyGarden_Go/internal/store"
)

// DefaultHashKey is the Redis hash holding every engine key
const DefaultHashKey = "dailygarden:state"

// Options configures the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	HashKey  string
}

// Store is a store.Store backed by one Redis hash
type Store struct {
	rdb  redis.UniversalClient
	hash string
}

var _ store.Store = (*Store)(nil)

// Open connects to Redis and verifies the connection with a ping
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("no Redis address provided")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  6 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	slog.Info("Successfully connected to Redis", "addr", opts.Addr)

	return New(rdb, opts.HashKey), nil
}

// New wraps an existing client. An empty hash uses DefaultHashKey.
func New(rdb redis.UniversalClient, hash string) *Store {
	if hash == "" {
		hash = DefaultHashKey
	}
	return &Store{rdb: rdb, hash: hash}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.rdb.HSet(ctx, s.hash, key, value).Err()
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.rdb.HDel(ctx, s.hash, key).Err()
}

func (s *Store) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.hash).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
