// Package config loads editor settings from CANVAS_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

type Config struct {
	Width     int    `envconfig:"WIDTH" default:"1280"`
	Height    int    `envconfig:"HEIGHT" default:"800"`
	StateFile string `envconfig:"STATE_FILE" default:"board.yaml"`
	AssetDir  string `envconfig:"ASSET_DIR" default:"./assets"`
	Font      string `envconfig:"FONT" default:"fonts/Roboto-Regular.ttf"`

	// MaxAssetBytes caps the size of image files dropped on the window.
	MaxAssetBytes int64 `envconfig:"MAX_ASSET_BYTES" default:"20971520"`

	MinScale        float64 `envconfig:"MIN_SCALE" default:"0.1"`
	MaxScale        float64 `envconfig:"MAX_SCALE" default:"10"`
	HandleTolerance float64 `envconfig:"HANDLE_TOLERANCE" default:"6"`
	SnapGrid        float64 `envconfig:"SNAP_GRID" default:"0"`
	MinShapeSize    float64 `envconfig:"MIN_SHAPE_SIZE" default:"1"`
	ZoomStep        float64 `envconfig:"ZOOM_STEP" default:"0.1"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("canvas", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	case !(c.MinScale > 0) || !(c.MaxScale >= c.MinScale):
		return fmt.Errorf("config: scale limits [%g, %g]: %w", c.MinScale, c.MaxScale, canvas.ErrInvalidLimits)
	case c.HandleTolerance < 0:
		return fmt.Errorf("config: handle tolerance %g must not be negative", c.HandleTolerance)
	case c.SnapGrid < 0:
		return fmt.Errorf("config: snap grid %g must not be negative", c.SnapGrid)
	case c.MinShapeSize < 0:
		return fmt.Errorf("config: minimum shape size %g must not be negative", c.MinShapeSize)
	case !(c.ZoomStep > 0):
		return fmt.Errorf("config: zoom step %g must be positive", c.ZoomStep)
	case c.MaxAssetBytes <= 0:
		return fmt.Errorf("config: max asset size %d must be positive", c.MaxAssetBytes)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func (c *Config) Viewport() (*canvas.Viewport, error) {
	return canvas.NewViewportWithLimits(c.MinScale, c.MaxScale)
}

// InputOptions maps the settings onto the interaction session.
func (c *Config) InputOptions() input.Options {
	opts := input.DefaultOptions()
	opts.HandleTolerance = c.HandleTolerance
	opts.SnapGrid = c.SnapGrid
	opts.MinShapeSize = c.MinShapeSize
	opts.ZoomStep = c.ZoomStep
	return opts
}
