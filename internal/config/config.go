package config

import (
	"os"
	"strconv"
)

// Config holds treeburst CLI configuration. The library itself takes
// no configuration; these are display defaults for the command, read
// from the environment and overridable by flags.
type Config struct {
	Chart    ChartConfig
	LogLevel string // "debug", "info", "warn", "error"
}

// ChartConfig holds figure defaults.
type ChartConfig struct {
	Title     string
	Width     int // pixels
	Height    int // pixels
	MaxDepth  int // rendered rings; 0 = all
	Theme     string
	Precision int // decimal places for split thresholds
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Chart: ChartConfig{
			Title:     getenv("TREEBURST_TITLE", "Decision Tree"),
			Width:     getenvInt("TREEBURST_WIDTH", 900),
			Height:    getenvInt("TREEBURST_HEIGHT", 900),
			MaxDepth:  getenvInt("TREEBURST_MAXDEPTH", 0),
			Theme:     os.Getenv("TREEBURST_THEME"),
			Precision: getenvInt("TREEBURST_PRECISION", 2),
		},
		LogLevel: getenv("TREEBURST_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
