package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup, not counting the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingDailyGarden = "Starting DailyGarden"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	// StoreConnectTimeout bounds dialing a networked store backend
	StoreConnectTimeout = 10 * time.Second

	// MongoCollection holds one document per persisted key
	MongoCollection = "garden_state"

	// Postgres pool connection lifetimes
	DBMaxConnIdleTime = 30 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Log messages for store initialization
const (
	LogMsgStoreOpened        = "State store opened"
	LogMsgTuningLoaded       = "Tuning file loaded"
	ErrMsgUnknownBackend     = "unknown store backend"
	ErrMsgFailedOpenStore    = "failed to open store"
	ErrMsgFailedMigrate      = "failed to migrate database"
	ErrMsgFailedCreateDBPool = "failed to create database pool"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingEngine       = "Stopping engine..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgEngineStopFailed     = "Engine stop failed"
	LogMsgStoreCloseFailed     = "Store close failed"
)
