package breakout

import "github.com/vovakirdan/breakout-arcade/internal/core"

// Direction is a keyboard paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// SetPaddleFromPointer centers the paddle on a pointer X position.
// The target is clamped into the valid paddle range and applied directly
// (last write wins). Pointer positions outside the open interval
// (0, surface width) are ignored. Returns whether the paddle was moved.
func SetPaddleFromPointer(s *State, pointerX float64) bool {
	if pointerX <= 0 || pointerX >= s.Width {
		return false
	}
	minX, maxX := s.PaddleRange()
	s.Paddle.X = core.ClampF(pointerX-s.Paddle.Width/2, minX, maxX)
	return true
}

// SetDirection records the pressed state of a direction key.
func SetDirection(s *State, dir Direction, pressed bool) {
	switch dir {
	case DirLeft:
		s.Controls.Left = pressed
	case DirRight:
		s.Controls.Right = pressed
	}
}
