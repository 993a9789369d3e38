package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Factory FactoryConfig
	Logging LoggingConfig
}

// FactoryConfig holds defaults for record generation runs.
type FactoryConfig struct {
	Seed        int64 // 0 picks a random seed per run
	Workers     int
	CountryCode string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultWorkers       = 4
	defaultCountryCode   = "+1"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Factory: FactoryConfig{
			CountryCode: valueOrDefault("FACTORY_DEFAULT_COUNTRY_CODE", defaultCountryCode),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	seed, err := parseInt64("FACTORY_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Factory.Seed = seed

	workers, err := parsePositiveInt("FACTORY_WORKERS", defaultWorkers)
	if err != nil {
		return Config{}, err
	}
	cfg.Factory.Workers = workers

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt64(key string, fallback int64) (int64, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if val <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %d", key, val)
		}
		return val, nil
	}
	return fallback, nil
}
