package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
)

func TestRenderOrder(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	surf := &recordSurface{}

	NewRenderer(cfg).Render(s, surf)

	require.Len(t, surf.calls, 1+15+1+1+1)
	assert.Equal(t, drawCall{Op: "clear", W: 480, H: 320}, surf.calls[0])
	for i := 1; i <= 15; i++ {
		assert.Equal(t, "rect", surf.calls[i].Op)
		assert.Equal(t, core.Color("#0095DD"), surf.calls[i].Color)
	}
	assert.Equal(t, drawCall{Op: "circle", X: 240, Y: 290, W: 10, Color: "#0095DD"}, surf.calls[16])
	assert.Equal(t, drawCall{Op: "rect", X: 202.5, Y: 310, W: 75, H: 10, Color: "#0095DD"}, surf.calls[17])
	assert.Equal(t, drawCall{Op: "text", X: 8, Y: 20, Text: "Score: 0", Font: "16px Arial", Color: "#0095DD"}, surf.calls[18])
}

func TestRenderSkipsDeadBricks(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	s := NewState(cfg)
	s.Bricks[0][0].Alive = false
	s.Bricks[3][2].Alive = false
	s.Score = 2
	surf := &recordSurface{}

	NewRenderer(cfg).Render(s, surf)

	rects := 0
	for _, c := range surf.calls {
		if c.Op == "rect" {
			rects++
		}
	}
	assert.Equal(t, 13+1, rects)
	assert.Equal(t, "Score: 2", surf.calls[len(surf.calls)-1].Text)
	// First drawn brick is column 0, row 1
	assert.Equal(t, 60.0, surf.calls[1].Y)
}

func TestRenderIsIdempotent(t *testing.T) {
	h := newDefaultHarness()
	before := h.game.Snapshot()

	h.game.Draw()
	first := append([]drawCall(nil), h.surface.calls...)
	h.game.Draw()

	assert.Equal(t, first, h.surface.calls)
	assert.Equal(t, before, h.game.Snapshot())
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", ScoreText(0))
	assert.Equal(t, "Score: 15", ScoreText(15))
}
