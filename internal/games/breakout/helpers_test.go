package breakout

import (
	"fmt"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
)

// drawCall is one recorded surface operation.
type drawCall struct {
	Op         string
	X, Y, W, H float64
	Text       string
	Font       string
	Color      core.Color
}

// recordSurface records every draw call since the last Clear of the full surface.
type recordSurface struct {
	calls []drawCall
}

func (s *recordSurface) Clear(x, y, w, h float64) {
	s.calls = append(s.calls[:0], drawCall{Op: "clear", X: x, Y: y, W: w, H: h})
}

func (s *recordSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.calls = append(s.calls, drawCall{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (s *recordSurface) FillCircle(cx, cy, r float64, c core.Color) {
	s.calls = append(s.calls, drawCall{Op: "circle", X: cx, Y: cy, W: r, Color: c})
}

func (s *recordSurface) DrawText(x, y float64, text, font string, c core.Color) {
	s.calls = append(s.calls, drawCall{Op: "text", X: x, Y: y, Text: text, Font: font, Color: c})
}

func (s *recordSurface) ops() []string {
	ops := make([]string, len(s.calls))
	for i, c := range s.calls {
		ops[i] = c.Op
	}
	return ops
}

// recordChrome records overlay toggles and announcements.
type recordChrome struct {
	events  []string
	results []Result
}

func (c *recordChrome) ShowOverlay(name string) {
	c.events = append(c.events, fmt.Sprintf("show:%s", name))
}

func (c *recordChrome) HideOverlay(name string) {
	c.events = append(c.events, fmt.Sprintf("hide:%s", name))
}

func (c *recordChrome) Announce(r Result) {
	c.results = append(c.results, r)
}

type harness struct {
	game    *Game
	frames  *FrameQueue
	surface *recordSurface
	chrome  *recordChrome
}

func newHarness(cfg config.BreakoutConfig) *harness {
	h := &harness{
		frames:  NewFrameQueue(),
		surface: &recordSurface{},
		chrome:  &recordChrome{},
	}
	h.game = New(cfg, h.surface, h.frames, WithChrome(h.chrome))
	return h
}

func newDefaultHarness() *harness {
	return newHarness(config.DefaultBreakoutConfig())
}

// placeBall puts the ball at (x, y) with the given velocity.
func placeBall(s *State, x, y, dx, dy float64) {
	s.Ball.X, s.Ball.Y = x, y
	s.Ball.DX, s.Ball.DY = dx, dy
}

// brickCenter returns the center of a brick.
func brickCenter(s *State, c, r int) (float64, float64) {
	b := s.Bricks[c][r]
	return b.X + b.Width/2, b.Y + b.Height/2
}
