package config

import (
	"errors"
	"log/slog"
	"testing"

	"infinite-canvas/canvas"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinScale != canvas.DefaultMinScale || cfg.MaxScale != canvas.DefaultMaxScale {
		t.Errorf("Expected default scale limits, got [%g, %g]", cfg.MinScale, cfg.MaxScale)
	}
	if cfg.StateFile != "board.yaml" {
		t.Errorf("Expected board.yaml, got %s", cfg.StateFile)
	}
	if cfg.MaxAssetBytes != 20<<20 {
		t.Errorf("Expected a 20 MiB asset cap, got %d", cfg.MaxAssetBytes)
	}
	if lvl, _ := cfg.SlogLevel(); lvl != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", lvl)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CANVAS_MAX_SCALE", "4")
	t.Setenv("CANVAS_SNAP_GRID", "10")
	t.Setenv("CANVAS_LOG_LEVEL", "debug")
	t.Setenv("CANVAS_HANDLE_TOLERANCE", "8")
	t.Setenv("CANVAS_MAX_ASSET_BYTES", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxScale != 4 {
		t.Errorf("Expected max scale 4, got %g", cfg.MaxScale)
	}
	if cfg.MaxAssetBytes != 1024 {
		t.Errorf("Expected asset cap 1024, got %d", cfg.MaxAssetBytes)
	}
	if lvl, _ := cfg.SlogLevel(); lvl != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", lvl)
	}

	opts := cfg.InputOptions()
	if opts.SnapGrid != 10 || opts.HandleTolerance != 8 {
		t.Errorf("Expected settings carried into input options, got %+v", opts)
	}

	v, err := cfg.Viewport()
	if err != nil {
		t.Fatalf("Viewport: %v", err)
	}
	if _, hi := v.Limits(); hi != 4 {
		t.Errorf("Expected viewport max scale 4, got %g", hi)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CANVAS_WIDTH", "0"},
		{"CANVAS_MIN_SCALE", "-1"},
		{"CANVAS_MAX_SCALE", "0.05"},
		{"CANVAS_ZOOM_STEP", "0"},
		{"CANVAS_SNAP_GRID", "-5"},
		{"CANVAS_MAX_ASSET_BYTES", "0"},
		{"CANVAS_LOG_LEVEL", "loud"},
		{"CANVAS_HEIGHT", "tall"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidateWrapsLimitError(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, MinScale: 2, MaxScale: 1, ZoomStep: 0.1, LogLevel: "info"}
	if err := cfg.Validate(); !errors.Is(err, canvas.ErrInvalidLimits) {
		t.Errorf("expected ErrInvalidLimits, got %v", err)
	}
}
