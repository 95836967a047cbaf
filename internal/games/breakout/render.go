package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
)

// Surface is a 2D raster the renderer draws on. Coordinates are surface
// pixels with the origin at the top-left corner.
type Surface interface {
	// Clear erases a region.
	Clear(x, y, w, h float64)
	// FillRect fills a rectangle.
	FillRect(x, y, w, h float64, c core.Color)
	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64, c core.Color)
	// DrawText draws text with its baseline starting at (x, y).
	DrawText(x, y float64, text, font string, c core.Color)
}

// Renderer draws a State with fixed colors and HUD placement.
type Renderer struct {
	brickColor  core.Color
	ballColor   core.Color
	paddleColor core.Color
	hudColor    core.Color
	hudX, hudY  float64
	font        string
}

// NewRenderer creates a renderer styled by the configuration.
func NewRenderer(cfg config.BreakoutConfig) *Renderer {
	return &Renderer{
		brickColor:  core.Color(cfg.Bricks.Color),
		ballColor:   core.Color(cfg.Ball.Color),
		paddleColor: core.Color(cfg.Paddle.Color),
		hudColor:    core.Color(cfg.HUD.Color),
		hudX:        cfg.HUD.X,
		hudY:        cfg.HUD.Y,
		font:        cfg.HUD.Font,
	}
}

// Render clears the surface and draws bricks, ball, paddle and score, in
// that order. It never mutates the state.
func (r *Renderer) Render(s *State, dst Surface) {
	dst.Clear(0, 0, s.Width, s.Height)

	for c := range s.Bricks {
		for row := range s.Bricks[c] {
			b := s.Bricks[c][row]
			if !b.Alive {
				continue
			}
			dst.FillRect(b.X, b.Y, b.Width, b.Height, r.brickColor)
		}
	}

	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, r.ballColor)

	p := s.Paddle
	dst.FillRect(p.X, p.Y, p.Width, p.Height, r.paddleColor)

	dst.DrawText(r.hudX, r.hudY, ScoreText(s.Score), r.font, r.hudColor)
}

// ScoreText formats the HUD score line.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
