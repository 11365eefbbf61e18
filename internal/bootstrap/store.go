package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DailyGarden_Go/internal/config"
	"github.com/osse101/DailyGarden_Go/internal/database"
	"github.com/osse101/DailyGarden_Go/internal/database/postgres"
	"github.com/osse101/DailyGarden_Go/internal/store"
	"github.com/osse101/DailyGarden_Go/internal/store/filestore"
	"github.com/osse101/DailyGarden_Go/internal/store/mongostore"
	"github.com/osse101/DailyGarden_Go/internal/store/redisstore"
	"github.com/osse101/DailyGarden_Go/internal/store/sqlitestore"
)

// OpenStore opens the backend selected by cfg.StoreBackend
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.StoreBackend {
	case store.BackendMemory:
		st = store.NewMemory()
	case store.BackendFile:
		st, err = filestore.Open(cfg.DataDir)
	case store.BackendSQLite:
		st, err = sqlitestore.Open(cfg.SQLitePath)
	case store.BackendPostgres:
		st, err = openPostgres(ctx, cfg)
	case store.BackendRedis:
		connectCtx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
		defer cancel()
		st, err = redisstore.Open(connectCtx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case store.BackendMongo:
		st, err = mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase, MongoCollection)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", ErrMsgFailedOpenStore, cfg.StoreBackend, err)
	}

	slog.Info(LogMsgStoreOpened, "backend", cfg.StoreBackend)
	return st, nil
}

// pgStore owns the pool behind a KVStore so closing the store releases it
type pgStore struct {
	*postgres.KVStore
	pool *pgxpool.Pool
}

func (s *pgStore) Close() error {
	s.pool.Close()
	return nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (store.Store, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:         cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: DBMaxConnIdleTime,
		MaxLifetime: DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDBPool, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	return &pgStore{KVStore: postgres.NewKVStore(pool), pool: pool}, nil
}
