package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are applied on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an error;
// broken files found by the search are skipped.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakout decodes YAML over the defaults and validates the result.
func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must have positive size", ErrInvalid)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalid)
	case c.Ball.DX == 0 && c.Ball.DY == 0:
		return fmt.Errorf("%w: ball velocity must be nonzero", ErrInvalid)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalid)
	case c.Paddle.Width > c.Surface.Width:
		return fmt.Errorf("%w: paddle width %.0f exceeds surface width %.0f", ErrInvalid, c.Paddle.Width, c.Surface.Width)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalid)
	case c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0:
		return fmt.Errorf("%w: brick grid needs at least one row and column", ErrInvalid)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: bricks must have positive size", ErrInvalid)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive", ErrInvalid)
	case c.Input.KeyHoldTicks <= 0:
		return fmt.Errorf("%w: key hold ticks must be positive", ErrInvalid)
	}

	colors := map[string]string{
		"surface.background": c.Surface.Background,
		"ball.color":         c.Ball.Color,
		"paddle.color":       c.Paddle.Color,
		"bricks.color":       c.Bricks.Color,
		"hud.color":          c.HUD.Color,
	}
	for key, value := range colors {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%w: %s %q is not a #rrggbb color", ErrInvalid, key, value)
		}
	}
	return nil
}
