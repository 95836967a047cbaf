package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-arcade/internal/config"
)

func newState() *State {
	return NewState(config.DefaultBreakoutConfig())
}

func TestAdvanceFirstTick(t *testing.T) {
	s := newState()

	out := Advance(s)

	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, 242.0, s.Ball.X)
	assert.Equal(t, 288.0, s.Ball.Y)
	assert.Equal(t, 2.0, s.Ball.DX)
	assert.Equal(t, -2.0, s.Ball.DY)
	assert.Equal(t, 0, s.Score)
}

func TestAdvanceWalls(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantX, wantY   float64
		wantDX, wantDY float64
	}{
		{"left wall", 11, 200, -2, -2, 13, 198, 2, -2},
		{"right wall", 469, 200, 2, 2, 467, 202, -2, 2},
		{"top wall", 200, 11, 2, -2, 202, 13, 2, 2},
		{"corner", 11, 11, -2, -2, 13, 13, 2, 2},
		{"exactly on radius", 12, 200, -2, 2, 10, 202, -2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState()
			placeBall(s, tc.x, tc.y, tc.dx, tc.dy)

			require.Equal(t, OutcomeNone, Advance(s))
			assert.Equal(t, tc.wantX, s.Ball.X)
			assert.Equal(t, tc.wantY, s.Ball.Y)
			assert.Equal(t, tc.wantDX, s.Ball.DX)
			assert.Equal(t, tc.wantDY, s.Ball.DY)
		})
	}
}

func TestAdvanceLoss(t *testing.T) {
	s := newState()
	placeBall(s, 280, 309, 2, 2)
	s.Controls.Right = true

	out := Advance(s)

	assert.Equal(t, OutcomeLoss, out)
	// Nothing moves on the losing tick
	assert.Equal(t, 280.0, s.Ball.X)
	assert.Equal(t, 309.0, s.Ball.Y)
	assert.Equal(t, 202.5, s.Paddle.X)
}

func TestAdvancePaddleBounce(t *testing.T) {
	s := newState()
	placeBall(s, 240, 309, 2, 2)

	out := Advance(s)

	assert.Equal(t, OutcomeNone, out)
	assert.Equal(t, -2.0, s.Ball.DY)
	// Pinned to H - r - paddleH then moved by the reflected velocity
	assert.Equal(t, 242.0, s.Ball.X)
	assert.Equal(t, 298.0, s.Ball.Y)
}

func TestAdvancePaddleEdgeIsMiss(t *testing.T) {
	s := newState()
	placeBall(s, 202.5, 309, 2, 2)

	assert.Equal(t, OutcomeLoss, Advance(s))
}

func TestAdvanceBrickHit(t *testing.T) {
	s := newState()
	x, y := brickCenter(s, 2, 1)
	placeBall(s, x, y, 2, -2)

	out := Advance(s)

	assert.Equal(t, OutcomeNone, out)
	assert.False(t, s.Bricks[2][1].Alive)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 2.0, s.Ball.DY)
	assert.Equal(t, x+2, s.Ball.X)
	assert.Equal(t, y+2, s.Ball.Y)
}

func TestAdvanceBrickEdgesAreOpen(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"left edge", 200, 70},
		{"right edge", 275, 70},
		{"top edge", 237.5, 60},
		{"bottom edge", 237.5, 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState()
			placeBall(s, tc.x, tc.y, 2, -2)

			Advance(s)
			assert.True(t, s.Bricks[2][1].Alive)
			assert.Equal(t, 0, s.Score)
		})
	}
}

func TestAdvanceDeadBrickIsIgnored(t *testing.T) {
	s := newState()
	s.Bricks[0][0].Alive = false
	x, y := brickCenter(s, 0, 0)
	placeBall(s, x, y, 2, -2)

	Advance(s)

	assert.Equal(t, 0, s.Score)
	assert.Equal(t, -2.0, s.Ball.DY)
}

func TestAdvanceOneBrickPerTick(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Padding = -20 // columns overlap by 20px

	s := NewState(cfg)
	require.Equal(t, 85.0, s.Bricks[1][0].X)
	placeBall(s, 95, 40, 2, -2)

	Advance(s)

	assert.Equal(t, 1, s.Score)
	assert.False(t, s.Bricks[0][0].Alive, "column-major scan hits column 0 first")
	assert.True(t, s.Bricks[1][0].Alive)
}

func TestAdvanceWinOnLastBrick(t *testing.T) {
	s := newState()
	total := s.TotalBricks()

	hits := 0
	for c := range s.Bricks {
		for r := range s.Bricks[c] {
			x, y := brickCenter(s, c, r)
			placeBall(s, x, y, 2, -2)

			out := Advance(s)
			hits++
			if hits < total {
				require.Equal(t, OutcomeNone, out, "hit %d", hits)
			} else {
				assert.Equal(t, OutcomeWin, out)
			}
		}
	}

	assert.Equal(t, total, s.Score)
	assert.Equal(t, 0, s.BricksAlive())
}

func TestAdvanceWinBeatsSameTickLoss(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 1
	cfg.Bricks.Columns = 1
	cfg.Bricks.OffsetTop = 280 // brick spans y in [280, 300]

	s := NewState(cfg)
	placeBall(s, 60, 299, 2, 2)
	s.Ball.DY = -12 // reflected to +12, projected past the bottom edge

	assert.Equal(t, OutcomeWin, Advance(s))
}

func TestAdvancePaddleKeys(t *testing.T) {
	tests := []struct {
		name        string
		startX      float64
		left, right bool
		wantX       float64
	}{
		{"idle", 202.5, false, false, 202.5},
		{"right", 202.5, false, true, 209.5},
		{"left", 202.5, true, false, 195.5},
		{"both prefers right", 202.5, true, true, 209.5},
		{"right clamps", 400, false, true, 405},
		{"left clamps", 3, true, false, 0},
		{"both at right edge stays", 405, true, true, 405},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newState()
			s.Paddle.X = tc.startX
			s.Controls = Controls{Left: tc.left, Right: tc.right}

			Advance(s)
			assert.Equal(t, tc.wantX, s.Paddle.X)
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "loss", OutcomeLoss.String())
}
