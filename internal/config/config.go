package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"oneof=dev staging prod test"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string // API key for the command surface; empty disables auth

	StoreBackend  string `validate:"oneof=memory file sqlite postgres redis mongo"`
	DataDir       string `validate:"required_if=StoreBackend file"`
	SQLitePath    string `validate:"required_if=StoreBackend sqlite"`
	DatabaseURL   string `validate:"required_if=StoreBackend postgres"`
	DBMaxConns    int    `validate:"min=1"`
	RedisAddr     string `validate:"required_if=StoreBackend redis"`
	RedisPassword string
	RedisDB       int    `validate:"min=0"`
	MongoURI      string `validate:"required_if=StoreBackend mongo"`
	MongoDatabase string `validate:"required_if=StoreBackend mongo"`

	TickInterval       time.Duration `validate:"gt=0"`
	SimulationInterval time.Duration `validate:"gt=0"`
	SaveProbability    float64       `validate:"gte=0,lte=1"`
	PlayerName         string        `validate:"max=32"`
	MaxGardenCapacity  int           `validate:"min=0"`
	TuningFile         string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:        getEnv(EnvLogDir, DefaultLogDir),
		APIKey:        getEnv(EnvAPIKey, ""),
		StoreBackend:  strings.ToLower(getEnv(EnvStoreBackend, DefaultStoreBackend)),
		DataDir:       getEnv(EnvDataDir, DefaultDataDir),
		SQLitePath:    getEnv(EnvSQLitePath, DefaultSQLitePath),
		DatabaseURL:   getEnv(EnvDatabaseURL, ""),
		DBMaxConns:    getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		RedisAddr:     getEnv(EnvRedisAddr, ""),
		RedisPassword: getEnv(EnvRedisPassword, ""),
		RedisDB:       getEnvAsInt(EnvRedisDB, 0),
		MongoURI:      getEnv(EnvMongoURI, ""),
		MongoDatabase: getEnv(EnvMongoDatabase, DefaultMongoDatabase),

		TickInterval:       getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		SimulationInterval: getEnvAsDuration(EnvSimulationInterval, DefaultSimulationInterval),
		SaveProbability:    getEnvAsFloat(EnvSaveProbability, DefaultSaveProbability),
		PlayerName:         getEnv(EnvPlayerName, ""),
		MaxGardenCapacity:  getEnvAsInt(EnvMaxGardenCapacity, 0),
		TuningFile:         getEnv(EnvTuningFile, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and reports every failing field by its env var name
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", envName(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// IsProduction reports whether the service runs in the prod environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProd
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
