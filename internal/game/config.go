package game

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, read from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible problem sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"MATHWARS_SEED" envDefault:"0"`

	// TickInterval is how often the turn clock advances while a turn is active.
	TickInterval time.Duration `env:"MATHWARS_TICK_INTERVAL" envDefault:"100ms"`

	// LogFile receives log output while the terminal UI owns the screen.
	// Empty discards logs during play.
	LogFile string `env:"MATHWARS_LOG_FILE"`

	// Telemetry enables the OTLP trace exporter.
	Telemetry        bool   `env:"MATHWARS_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_MATHWARS_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_MATHWARS_DATASET" envDefault:"mathwars"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}
