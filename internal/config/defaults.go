package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It matches the embedded defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: SurfaceConfig{
			Width:      480,
			Height:     320,
			Background: "#FFFFFF",
		},
		Ball: BallConfig{
			Radius:      10,
			DX:          2,
			DY:          -2,
			StartOffset: 30,
			Color:       "#0095DD",
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
			Color:  "#0095DD",
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
			Color:      "#0095DD",
		},
		HUD: HUDConfig{
			X:     8,
			Y:     20,
			Font:  "16px Arial",
			Color: "#0095DD",
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			KeyHoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
