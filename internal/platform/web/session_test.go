package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/games/breakout"
	"github.com/vovakirdan/breakout-arcade/internal/logging"
)

// newTestSession creates a session that is never connected. Messages pile
// up in the send queue, which is large enough for these tests.
func newTestSession() *Session {
	return NewSession("test", nil, config.DefaultBreakoutConfig(), 60, logging.Discard())
}

func TestSessionKeyUpWhilePaused(t *testing.T) {
	for _, resume := range []string{InputResume, InputToggle} {
		t.Run(resume, func(t *testing.T) {
			s := newTestSession()
			s.apply(InputMessage{Type: InputStart})
			s.apply(InputMessage{Type: InputKeyDown, Key: "left"})
			require.True(t, s.game.State().Controls.Left)

			s.apply(InputMessage{Type: InputPause})
			s.apply(InputMessage{Type: InputKeyUp, Key: "left"})
			s.apply(InputMessage{Type: resume})

			require.Equal(t, breakout.PhaseRunning, s.game.Phase())
			assert.False(t, s.game.State().Controls.Left)

			x := s.game.State().Paddle.X
			for range 10 {
				s.frames.RunFrame()
			}
			assert.Equal(t, x, s.game.State().Paddle.X)
		})
	}
}

func TestSessionKeyHeldThroughPause(t *testing.T) {
	s := newTestSession()
	s.apply(InputMessage{Type: InputStart})
	s.apply(InputMessage{Type: InputKeyDown, Key: "right"})

	s.apply(InputMessage{Type: InputToggle})
	s.apply(InputMessage{Type: InputToggle})

	assert.Equal(t, breakout.Controls{Right: true}, s.game.State().Controls)
}
