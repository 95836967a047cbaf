package breakout

import "math"

// Snapshot is a flat copy of the game for hashing, logging and the web
// frontend's status line. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64 `json:"tick"`
	Phase   string `json:"phase"`
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`

	BallX  float64 `json:"ball_x"`
	BallY  float64 `json:"ball_y"`
	BallDX float64 `json:"ball_dx"`
	BallDY float64 `json:"ball_dy"`

	PaddleX float64 `json:"paddle_x"`

	BricksRemaining int `json:"bricks_remaining"`

	// Alive flags flattened column-major: column*rows + row
	BrickData []bool `json:"bricks"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	bricks := make([]bool, 0, s.TotalBricks())
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			bricks = append(bricks, s.Bricks[c][r].Alive)
		}
	}

	return Snapshot{
		Tick:            g.ticks,
		Phase:           g.phase.String(),
		Outcome:         g.outcome.String(),
		Score:           s.Score,
		BallX:           s.Ball.X,
		BallY:           s.Ball.Y,
		BallDX:          s.Ball.DX,
		BallDY:          s.Ball.DY,
		PaddleX:         s.Paddle.X,
		BricksRemaining: s.BricksAlive(),
		BrickData:       bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, ch := range snap.Phase {
		h = h*31 + uint64(ch)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, alive := range snap.BrickData {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}
