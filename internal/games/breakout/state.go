package breakout

import (
	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
)

// Ball is the ball in surface pixels. Velocity is per tick.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64
	Radius float64
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Paddle is the player's paddle. It sits on the bottom edge of the surface.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge, fixed at reset
	Width  float64
	Height float64
	Speed  float64 // Keyboard movement per tick
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Brick is one cell of the brick grid.
type Brick struct {
	X, Y   float64 // Top-left, computed once at reset
	Width  float64
	Height float64
	Alive  bool
}

// Box returns the brick's bounding box.
func (b Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Controls holds the keyboard direction flags.
type Controls struct {
	Left  bool
	Right bool
}

// State is the authoritative simulation state for one game session.
// It is owned by the Game and passed explicitly to the resolver, the
// renderer and the input adapter.
type State struct {
	Width  float64 // Surface width
	Height float64 // Surface height

	Ball     Ball
	Paddle   Paddle
	Bricks   [][]Brick // Indexed [column][row]
	Score    int
	Controls Controls

	layout config.BreakoutConfig
}

// NewState creates a state for the given configuration and resets it.
func NewState(cfg config.BreakoutConfig) *State {
	s := &State{layout: cfg}
	s.Reset()
	return s
}

// Reset reinitializes ball, paddle, bricks, score and direction flags.
func (s *State) Reset() {
	cfg := s.layout
	s.Width = cfg.Surface.Width
	s.Height = cfg.Surface.Height

	s.Ball = Ball{
		X:      s.Width / 2,
		Y:      s.Height - cfg.Ball.StartOffset,
		DX:     cfg.Ball.DX,
		DY:     cfg.Ball.DY,
		Radius: cfg.Ball.Radius,
	}

	s.Paddle = Paddle{
		X:      (s.Width - cfg.Paddle.Width) / 2,
		Y:      s.Height - cfg.Paddle.Height,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Speed:  cfg.Paddle.Speed,
	}

	b := cfg.Bricks
	s.Bricks = make([][]Brick, b.Columns)
	for c := range b.Columns {
		s.Bricks[c] = make([]Brick, b.Rows)
		for r := range b.Rows {
			s.Bricks[c][r] = Brick{
				X:      b.OffsetLeft + float64(c)*(b.Width+b.Padding),
				Y:      b.OffsetTop + float64(r)*(b.Height+b.Padding),
				Width:  b.Width,
				Height: b.Height,
				Alive:  true,
			}
		}
	}

	s.Score = 0
	s.Controls = Controls{}
}

// Columns returns the number of brick columns.
func (s *State) Columns() int {
	return len(s.Bricks)
}

// Rows returns the number of brick rows.
func (s *State) Rows() int {
	if len(s.Bricks) == 0 {
		return 0
	}
	return len(s.Bricks[0])
}

// TotalBricks returns the grid size, which is also the winning score.
func (s *State) TotalBricks() int {
	return s.Columns() * s.Rows()
}

// BricksAlive counts the bricks still standing.
func (s *State) BricksAlive() int {
	count := 0
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			if s.Bricks[c][r].Alive {
				count++
			}
		}
	}
	return count
}

// PaddleRange returns the valid range for the paddle's left edge.
func (s *State) PaddleRange() (minX, maxX float64) {
	return 0, s.Width - s.Paddle.Width
}
