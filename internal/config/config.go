package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment at startup.
type Config struct {
	Environment string     `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string     `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string     `env:"LOG_FILE"` // empty discards logs so they don't draw over the console
	LogLevel    slog.Level `env:"-"`

	HunterName   string `env:"HUNTER_NAME"`
	StartingGold int    `env:"STARTING_GOLD" envDefault:"10"`
	GameMode     string `env:"GAME_MODE"`

	// -1 means "use the mode's default".
	Toughness float64 `env:"TOUGHNESS" envDefault:"-1"`
	Markdown  float64 `env:"SHOP_MARKDOWN" envDefault:"-1"`

	// Seed makes a hunt reproducible. Zero seeds from the clock.
	Seed uint64 `env:"SEED" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	cfg.GameMode = strings.ToLower(strings.TrimSpace(cfg.GameMode))

	if !inRangeOrUnset(cfg.Toughness) {
		return nil, fmt.Errorf("TOUGHNESS must be between 0 and 1, got %v", cfg.Toughness)
	}
	if !inRangeOrUnset(cfg.Markdown) {
		return nil, fmt.Errorf("SHOP_MARKDOWN must be between 0 and 1, got %v", cfg.Markdown)
	}
	if cfg.StartingGold < 0 {
		return nil, fmt.Errorf("STARTING_GOLD cannot be negative, got %d", cfg.StartingGold)
	}
	return &cfg, nil
}

// inRangeOrUnset accepts a fraction in [0, 1] or the -1 "mode default" marker.
func inRangeOrUnset(v float64) bool {
	return v == -1 || (v >= 0 && v <= 1)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
