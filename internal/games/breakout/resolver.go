package breakout

import "github.com/vovakirdan/breakout-arcade/internal/core"

// Outcome is the result of advancing one tick.
type Outcome int

const (
	OutcomeNone Outcome = iota // Game continues
	OutcomeWin                 // Last brick destroyed
	OutcomeLoss                // Ball passed the paddle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Advance resolves collisions for one tick and moves the ball.
//
// Order: brick hit, win check, side walls, top wall or bottom edge
// (paddle bounce or loss), keyboard paddle movement, ball integration.
// Wall and paddle tests use the projected position x+dx, y+dy.
// On a loss nothing moves for the rest of the tick.
func Advance(s *State) Outcome {
	outcome := OutcomeNone

	if hitBrick(s) && s.Score == s.TotalBricks() {
		outcome = OutcomeWin
	}

	ball := &s.Ball
	nextX := ball.X + ball.DX
	nextY := ball.Y + ball.DY

	if nextX > s.Width-ball.Radius || nextX < ball.Radius {
		ball.BounceX()
	}

	if nextY < ball.Radius {
		ball.BounceY()
	} else if nextY > s.Height-ball.Radius {
		if s.Paddle.Box().SpansOpen(ball.X) {
			ball.BounceY()
			ball.Y = s.Height - ball.Radius - s.Paddle.Height
		} else {
			// A cleared grid stays a win even if the ball is lost on the same tick
			if outcome == OutcomeWin {
				return outcome
			}
			return OutcomeLoss
		}
	}

	movePaddle(s)
	ball.Move()

	return outcome
}

// hitBrick destroys the first alive brick containing the ball center,
// scanning column-major. At most one brick is resolved per tick, so a
// fast ball can pass through at most one brick layer per frame.
func hitBrick(s *State) bool {
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			brick := &s.Bricks[c][r]
			if !brick.Alive || !brick.Box().ContainsOpen(s.Ball.X, s.Ball.Y) {
				continue
			}
			s.Ball.BounceY()
			brick.Alive = false
			s.Score++
			return true
		}
	}
	return false
}

// movePaddle applies keyboard movement. Right takes precedence when both
// keys are held; left is then ignored for this tick.
func movePaddle(s *State) {
	p := &s.Paddle
	switch {
	case s.Controls.Right:
		p.X += p.Speed
	case s.Controls.Left:
		p.X -= p.Speed
	default:
		return
	}
	minX, maxX := s.PaddleRange()
	p.X = core.ClampF(p.X, minX, maxX)
}
