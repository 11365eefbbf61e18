package database

import "time"

const (
	// DefaultMinConnections keeps one connection warm for saves and one for reads
	DefaultMinConnections = 2

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 5 * time.Second
)

// Migration settings
const (
	GooseDialect  = "postgres"
	MigrationsDir = "migrations"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgConnected         = "Connected to state database"
	LogMsgMigrationsApplied = "Database migrations applied"
)
