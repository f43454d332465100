package config

import (
	"os"
	"testing"
)

var allVars = []string{
	"TREEBURST_TITLE", "TREEBURST_WIDTH", "TREEBURST_HEIGHT",
	"TREEBURST_MAXDEPTH", "TREEBURST_THEME", "TREEBURST_PRECISION",
	"TREEBURST_LOG_LEVEL",
}

func clearEnv() {
	for _, key := range allVars {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.Chart.Title != "Decision Tree" {
		t.Fatalf("expected default title 'Decision Tree', got %q", cfg.Chart.Title)
	}
	if cfg.Chart.Width != 900 || cfg.Chart.Height != 900 {
		t.Fatalf("expected 900x900 default, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.MaxDepth != 0 {
		t.Fatalf("expected default MaxDepth=0, got %d", cfg.Chart.MaxDepth)
	}
	if cfg.Chart.Theme != "" {
		t.Fatalf("expected empty default theme, got %q", cfg.Chart.Theme)
	}
	if cfg.Chart.Precision != 2 {
		t.Fatalf("expected default Precision=2, got %d", cfg.Chart.Precision)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv()
	os.Setenv("TREEBURST_TITLE", "Diamonds")
	os.Setenv("TREEBURST_WIDTH", "1200")
	os.Setenv("TREEBURST_MAXDEPTH", "4")
	os.Setenv("TREEBURST_THEME", "westeros")
	defer clearEnv()

	cfg := Load()

	if cfg.Chart.Title != "Diamonds" {
		t.Fatalf("expected title 'Diamonds', got %q", cfg.Chart.Title)
	}
	if cfg.Chart.Width != 1200 {
		t.Fatalf("expected width 1200, got %d", cfg.Chart.Width)
	}
	if cfg.Chart.Height != 900 {
		t.Fatalf("expected untouched height 900, got %d", cfg.Chart.Height)
	}
	if cfg.Chart.MaxDepth != 4 {
		t.Fatalf("expected MaxDepth=4, got %d", cfg.Chart.MaxDepth)
	}
	if cfg.Chart.Theme != "westeros" {
		t.Fatalf("expected theme 'westeros', got %q", cfg.Chart.Theme)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	clearEnv()
	os.Setenv("TREEBURST_WIDTH", "wide")
	defer clearEnv()

	cfg := Load()
	if cfg.Chart.Width != 900 {
		t.Fatalf("expected fallback width 900, got %d", cfg.Chart.Width)
	}
}
