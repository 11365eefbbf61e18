package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "sqlite", cfg.StoreBackend)
		assert.Equal(t, "data/garden.db", cfg.SQLitePath)
		assert.Equal(t, time.Second, cfg.TickInterval)
		assert.Equal(t, 30*time.Second, cfg.SimulationInterval)
		assert.InDelta(t, 0.1, cfg.SaveProbability, 1e-9)
		assert.Zero(t, cfg.MaxGardenCapacity, "capacity is uncapped by default")
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("TICK_INTERVAL", "250ms")
		t.Setenv("SIMULATION_INTERVAL", "1m")
		t.Setenv("SAVE_PROBABILITY", "0.5")
		t.Setenv("PLAYER_NAME", "Gärtner")
		t.Setenv("MAX_GARDEN_CAPACITY", "12")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel, "levels are lowercased")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "redis", cfg.StoreBackend)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, time.Minute, cfg.SimulationInterval)
		assert.InDelta(t, 0.5, cfg.SaveProbability, 1e-9)
		assert.Equal(t, "Gärtner", cfg.PlayerName)
		assert.Equal(t, 12, cfg.MaxGardenCapacity)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", true},
			{"max valid port", "65535", false},
			{"above max port", "65536", true},
			{"negative port", "-1", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("unparseable numbers fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("TICK_INTERVAL", "fast")
		t.Setenv("SAVE_PROBABILITY", "often")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
		assert.InDelta(t, DefaultSaveProbability, cfg.SaveProbability, 1e-9)
	})
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantVar string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "etcd"}, "STORE_BACKEND"},
		{"postgres without url", map[string]string{"STORE_BACKEND": "postgres"}, "DATABASE_URL"},
		{"redis without address", map[string]string{"STORE_BACKEND": "redis"}, "REDIS_ADDR"},
		{"mongo without uri", map[string]string{"STORE_BACKEND": "mongo"}, "MONGO_URI"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad environment", map[string]string{"ENVIRONMENT": "moon"}, "ENVIRONMENT"},
		{"probability above one", map[string]string{"SAVE_PROBABILITY": "1.5"}, "SAVE_PROBABILITY"},
		{"zero tick", map[string]string{"TICK_INTERVAL": "0s"}, "TICK_INTERVAL"},
		{"negative capacity", map[string]string{"MAX_GARDEN_CAPACITY": "-3"}, "MAX_GARDEN_CAPACITY"},
		{"long player name", map[string]string{"PLAYER_NAME": strings.Repeat("x", 33)}, "PLAYER_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantVar)
		})
	}
}

func TestConfig_Warnings(t *testing.T) {
	cfg := &Config{StoreBackend: "memory", SaveProbability: 0, Environment: "prod", LogLevel: "debug"}
	warnings := cfg.Warnings()
	assert.Len(t, warnings, 4)

	cfg = &Config{StoreBackend: "sqlite", SaveProbability: 0.1, Environment: "dev", LogLevel: "info", APIKey: "k"}
	assert.Empty(t, cfg.Warnings())
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		EnvEnvironment, EnvLogLevel, EnvLogFormat, EnvLogDir, EnvPort, EnvAPIKey,
		EnvStoreBackend, EnvDataDir, EnvSQLitePath, EnvDatabaseURL, EnvDBMaxConns,
		EnvRedisAddr, EnvRedisPassword, EnvRedisDB, EnvMongoURI, EnvMongoDatabase,
		EnvTickInterval, EnvSimulationInterval, EnvSaveProbability, EnvPlayerName,
		EnvMaxGardenCapacity, EnvTuningFile,
	} {
		// Setenv registers the restore; Unsetenv makes the variable absent for the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
