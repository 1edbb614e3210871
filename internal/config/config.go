package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Logging  LoggingConfig
	Casualty CasualtyConfig
	Map      MapConfig
	Atlas    AtlasConfig
	Worker   WorkerConfig
}

type LoggingConfig struct {
	Level  string
	Format string // "text" for the CLI, "json" for machine consumption
}

type CasualtyConfig struct {
	// DefaultDensity is the population density (people per km²) used when
	// no target city supplies one.
	DefaultDensity float64
}

type MapConfig struct {
	Width  int
	Height int
}

type AtlasConfig struct {
	// DSN for the city registry. The default in-memory database is
	// rebuilt from embedded data on every start; nothing persists.
	DSN string
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

func Load() (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Casualty: CasualtyConfig{
			DefaultDensity: getEnvFloat("POPULATION_DENSITY", 1500),
		},
		Map: MapConfig{
			Width:  getEnvInt("MAP_WIDTH", 60),
			Height: getEnvInt("MAP_HEIGHT", 30),
		},
		Atlas: AtlasConfig{
			DSN: getEnv("ATLAS_DSN", ":memory:"),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 8),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Casualty.DefaultDensity < 0 {
		return fmt.Errorf("population density must be non-negative: %f", c.Casualty.DefaultDensity)
	}

	if c.Map.Width < 20 || c.Map.Height < 10 {
		return fmt.Errorf("map too small: %dx%d (minimum 20x10)", c.Map.Width, c.Map.Height)
	}

	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1: %d", c.Worker.Count)
	}
	if c.Worker.BufferSize < 1 {
		return fmt.Errorf("worker buffer size must be at least 1: %d", c.Worker.BufferSize)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
