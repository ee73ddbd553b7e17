// Package config loads process configuration from the environment (and an
// optional .env file): one viper instance with explicit defaults.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the full process configuration for cmd/optimizer and cmd/server.
type Config struct {
	Env  string
	Port int

	Log       LogConfig
	Optimizer OptimizerConfig
	Reconnect ReconnectConfig
}

// LogConfig controls the zap logger built by pkg/logger.
type LogConfig struct {
	Level  string
	Format string
}

// OptimizerConfig overrides the evolutionary/annealing phase parameters.
// Zero values mean "use the package default"; see internal/optimizer.
type OptimizerConfig struct {
	EvolveRuns            int
	EvolveStagnationLimit int
	AnnealIterations      int
}

// ReconnectConfig holds the reconnect settings, defaulting to the same values
// as pkg/backoff's Default policy (initial 5s, factor 1.5, cap 60s, max 10
// tries). It is not converted into a backoff.Policy: cmd/optimizer's retry
// subcommand uses backoff.Default() and does not read these fields.
type ReconnectConfig struct {
	InitialDelay time.Duration
	Factor       float64
	MaxDelay     time.Duration
	MaxAttempts  int
}

// Load reads configuration from the environment, falling back to defaults.
// A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env:  v.GetString("ENV"),
		Port: v.GetInt("PORT"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Optimizer: OptimizerConfig{
			EvolveRuns:            v.GetInt("OPTIMIZER_EVOLVE_RUNS"),
			EvolveStagnationLimit: v.GetInt("OPTIMIZER_EVOLVE_STAGNATION_LIMIT"),
			AnnealIterations:      v.GetInt("OPTIMIZER_ANNEAL_ITERATIONS"),
		},
		Reconnect: ReconnectConfig{
			InitialDelay: parseDuration(v.GetString("RECONNECT_INITIAL_DELAY"), 5*time.Second),
			Factor:       v.GetFloat64("RECONNECT_FACTOR"),
			MaxDelay:     parseDuration(v.GetString("RECONNECT_MAX_DELAY"), 60*time.Second),
			MaxAttempts:  v.GetInt("RECONNECT_MAX_ATTEMPTS"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("OPTIMIZER_EVOLVE_RUNS", 0)
	v.SetDefault("OPTIMIZER_EVOLVE_STAGNATION_LIMIT", 0)
	v.SetDefault("OPTIMIZER_ANNEAL_ITERATIONS", 0)

	v.SetDefault("RECONNECT_INITIAL_DELAY", "5s")
	v.SetDefault("RECONNECT_FACTOR", 1.5)
	v.SetDefault("RECONNECT_MAX_DELAY", "60s")
	v.SetDefault("RECONNECT_MAX_ATTEMPTS", 10)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
