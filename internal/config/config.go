// Package config provides YAML-based game configuration loading and
// validation for the arcade.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are surface pixels, speeds are pixels per tick.
type BreakoutConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Bricks  BricksConfig  `yaml:"bricks"`
	HUD     HUDConfig     `yaml:"hud"`
	Loop    LoopConfig    `yaml:"loop"`
	Input   InputConfig   `yaml:"input"`
}

// SurfaceConfig defines the drawing surface.
type SurfaceConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// BallConfig defines the ball and its launch vector.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	DX          float64 `yaml:"dx"`
	DY          float64 `yaml:"dy"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the start position above the bottom edge
	Color       string  `yaml:"color"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Keyboard movement per tick
	Color  string  `yaml:"color"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Color      string  `yaml:"color"`
}

// HUDConfig defines the score text.
type HUDConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"` // Text baseline
	Font  string  `yaml:"font"`
	Color string  `yaml:"color"`
}

// LoopConfig defines the frame scheduler.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// InputConfig defines input adapter tuning.
type InputConfig struct {
	// KeyHoldTicks is how long a terminal key press counts as held.
	// Terminals report no key release, so one is synthesized after this many
	// frames without a repeat.
	KeyHoldTicks int `yaml:"key_hold_ticks"`
}

// TotalBricks returns the number of bricks in the grid.
func (c BreakoutConfig) TotalBricks() int {
	return c.Bricks.Rows * c.Bricks.Columns
}
