package config

import "time"

// Environment variable names
const (
	EnvEnvironment        = "ENVIRONMENT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvPort               = "PORT"
	EnvAPIKey             = "API_KEY"
	EnvStoreBackend       = "STORE_BACKEND"
	EnvDataDir            = "DATA_DIR"
	EnvSQLitePath         = "SQLITE_PATH"
	EnvDatabaseURL        = "DATABASE_URL"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvRedisAddr          = "REDIS_ADDR"
	EnvRedisPassword      = "REDIS_PASSWORD"
	EnvRedisDB            = "REDIS_DB"
	EnvMongoURI           = "MONGO_URI"
	EnvMongoDatabase      = "MONGO_DATABASE"
	EnvTickInterval       = "TICK_INTERVAL"
	EnvSimulationInterval = "SIMULATION_INTERVAL"
	EnvSaveProbability    = "SAVE_PROBABILITY"
	EnvPlayerName         = "PLAYER_NAME"
	EnvMaxGardenCapacity  = "MAX_GARDEN_CAPACITY"
	EnvTuningFile         = "TUNING_FILE"
)

// Defaults
const (
	DefaultEnvironment        = "dev"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultPort               = "8080"
	DefaultStoreBackend       = "sqlite"
	DefaultDataDir            = "data"
	DefaultSQLitePath         = "data/garden.db"
	DefaultDBMaxConns         = 5
	DefaultMongoDatabase      = "daily_garden"
	DefaultTickInterval       = time.Second
	DefaultSimulationInterval = 30 * time.Second
	DefaultSaveProbability    = 0.1
)

// EnvironmentProd is the production environment name
const EnvironmentProd = "prod"

// fieldEnvNames maps Config fields to the variables they are read from
var fieldEnvNames = map[string]string{
	"Environment":        EnvEnvironment,
	"LogLevel":           EnvLogLevel,
	"LogFormat":          EnvLogFormat,
	"LogDir":             EnvLogDir,
	"Port":               EnvPort,
	"StoreBackend":       EnvStoreBackend,
	"DataDir":            EnvDataDir,
	"SQLitePath":         EnvSQLitePath,
	"DatabaseURL":        EnvDatabaseURL,
	"DBMaxConns":         EnvDBMaxConns,
	"RedisAddr":          EnvRedisAddr,
	"RedisDB":            EnvRedisDB,
	"MongoURI":           EnvMongoURI,
	"MongoDatabase":      EnvMongoDatabase,
	"TickInterval":       EnvTickInterval,
	"SimulationInterval": EnvSimulationInterval,
	"SaveProbability":    EnvSaveProbability,
	"PlayerName":         EnvPlayerName,
	"MaxGardenCapacity":  EnvMaxGardenCapacity,
}

func envName(field string) string {
	if name, ok := fieldEnvNames[field]; ok {
		return name
	}
	return field
}
