package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-arcade/internal/config"
)

func TestStateReset(t *testing.T) {
	s := NewState(config.DefaultBreakoutConfig())

	assert.Equal(t, Ball{X: 240, Y: 290, DX: 2, DY: -2, Radius: 10}, s.Ball)
	assert.Equal(t, 202.5, s.Paddle.X)
	assert.Equal(t, 310.0, s.Paddle.Y)
	assert.Equal(t, 0, s.Score)

	require.Equal(t, 5, s.Columns())
	require.Equal(t, 3, s.Rows())
	assert.Equal(t, 15, s.TotalBricks())
	assert.Equal(t, 15, s.BricksAlive())

	// pos = offset + index*(size+padding)
	assert.Equal(t, Brick{X: 30, Y: 30, Width: 75, Height: 20, Alive: true}, s.Bricks[0][0])
	assert.Equal(t, Brick{X: 370, Y: 90, Width: 75, Height: 20, Alive: true}, s.Bricks[4][2])
	assert.Equal(t, 115.0, s.Bricks[1][0].X)
	assert.Equal(t, 60.0, s.Bricks[0][1].Y)
}

func TestStateResetRestoresEverything(t *testing.T) {
	s := NewState(config.DefaultBreakoutConfig())

	s.Bricks[1][1].Alive = false
	s.Score = 1
	s.Ball.DX = -2
	s.Paddle.X = 0
	s.Controls = Controls{Left: true, Right: true}

	s.Reset()

	assert.Equal(t, 15, s.BricksAlive())
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 2.0, s.Ball.DX)
	assert.Equal(t, 202.5, s.Paddle.X)
	assert.Equal(t, Controls{}, s.Controls)
}

func TestStateCustomGrid(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Bricks.Rows = 2
	cfg.Bricks.Columns = 7

	s := NewState(cfg)
	assert.Equal(t, 7, s.Columns())
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 14, s.TotalBricks())
}
