// Package breakout implements the Breakout game core: entity state, input
// adapter, collision resolver, renderer and the lifecycle controller that
// drives them from a host frame scheduler. Nothing here knows about
// terminals, browsers or windows; frontends live under internal/platform.
package breakout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/logging"
)

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Start screen
	PhaseRunning                 // Ticks are scheduled
	PhasePaused                  // No tick pending
	PhaseEnded                   // Won or lost, terminal until ReturnToStart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Overlay names shown and hidden through Chrome.
const (
	OverlayStart  = "start"
	OverlayPaused = "paused"
)

// Result is the terminal message of a session.
type Result struct {
	Outcome Outcome
	Score   int
	Message string
}

// Chrome is the UI around the playfield: overlays and end-of-game messages.
type Chrome interface {
	ShowOverlay(name string)
	HideOverlay(name string)
	// Announce is called exactly once per session when the game ends.
	Announce(r Result)
}

// NopChrome ignores every UI request.
type NopChrome struct{}

func (NopChrome) ShowOverlay(string) {}
func (NopChrome) HideOverlay(string) {}
func (NopChrome) Announce(Result)    {}

// Option configures a Game.
type Option func(*Game)

// WithChrome sets the UI chrome receiving overlay toggles and results.
func WithChrome(c Chrome) Option {
	return func(g *Game) {
		g.chrome = c
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game is the lifecycle controller. It owns the State and the drawing
// surface and drives ticks through the Scheduler.
//
// Commands that are not valid in the current phase are silently ignored.
// A Game is not safe for concurrent use: frontends call it from the
// goroutine that also drives the scheduler.
type Game struct {
	state     *State
	renderer  *Renderer
	surface   Surface
	scheduler Scheduler
	chrome    Chrome
	logger    *log.Logger

	phase      Phase
	outcome    Outcome
	pending    Handle
	hasPending bool
	ticks      uint64
}

// New creates a game in the NotStarted phase and shows the start overlay.
func New(cfg config.BreakoutConfig, surface Surface, scheduler Scheduler, opts ...Option) *Game {
	g := &Game{
		state:     NewState(cfg),
		renderer:  NewRenderer(cfg),
		surface:   surface,
		scheduler: scheduler,
		chrome:    NopChrome{},
		logger:    logging.Discard(),
		phase:     PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Draw()
	g.chrome.ShowOverlay(OverlayStart)
	return g
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns how the game ended, or OutcomeNone before the end.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// State returns the simulation state. Callers must not modify it.
func (g *Game) State() *State {
	return g.state
}

// Ticks returns the number of ticks simulated since the last start.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Draw renders the current state without advancing it.
func (g *Game) Draw() {
	g.renderer.Render(g.state, g.surface)
}

// Start resets the state and begins ticking. Only valid from NotStarted.
func (g *Game) Start() {
	if g.phase != PhaseNotStarted {
		g.ignore("start")
		return
	}
	g.state.Reset()
	g.ticks = 0
	g.outcome = OutcomeNone
	g.chrome.HideOverlay(OverlayStart)
	g.setPhase(PhaseRunning)
	g.schedule()
}

// Pause cancels the pending tick. Only valid while Running.
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		g.ignore("pause")
		return
	}
	g.cancelPending()
	g.setPhase(PhasePaused)
	g.chrome.ShowOverlay(OverlayPaused)
}

// Resume schedules a new tick. Only valid while Paused.
// Missed frames are not replayed.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		g.ignore("resume")
		return
	}
	g.setPhase(PhaseRunning)
	g.chrome.HideOverlay(OverlayPaused)
	g.schedule()
}

// Toggle pauses a running game or resumes a paused one.
func (g *Game) Toggle() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	default:
		g.ignore("toggle")
	}
}

// ReturnToStart leaves the Ended phase for a fresh start screen.
func (g *Game) ReturnToStart() {
	if g.phase != PhaseEnded {
		g.ignore("return to start")
		return
	}
	g.state.Reset()
	g.outcome = OutcomeNone
	g.setPhase(PhaseNotStarted)
	g.Draw()
	g.chrome.ShowOverlay(OverlayStart)
}

// Tick simulates and renders one frame. It is what the scheduler runs;
// calling it directly replaces the pending scheduled tick rather than
// adding a second one.
func (g *Game) Tick() {
	g.cancelPending()
	g.tick()
}

func (g *Game) tick() {
	g.hasPending = false
	if g.phase != PhaseRunning {
		return
	}

	g.ticks++
	outcome := Advance(g.state)
	g.renderer.Render(g.state, g.surface)

	if outcome != OutcomeNone {
		g.end(outcome)
		return
	}
	g.schedule()
}

// PointerMove positions the paddle under the pointer while Running.
func (g *Game) PointerMove(x float64) {
	if g.phase != PhaseRunning {
		return
	}
	SetPaddleFromPointer(g.state, x)
}

// KeyDown records a held direction key while Running.
func (g *Game) KeyDown(dir Direction) {
	if g.phase != PhaseRunning {
		return
	}
	SetDirection(g.state, dir, true)
}

// KeyUp records a released direction key while Running.
func (g *Game) KeyUp(dir Direction) {
	if g.phase != PhaseRunning {
		return
	}
	SetDirection(g.state, dir, false)
}

func (g *Game) end(outcome Outcome) {
	g.outcome = outcome
	g.setPhase(PhaseEnded)

	result := Result{
		Outcome: outcome,
		Score:   g.state.Score,
		Message: resultMessage(outcome, g.state.Score),
	}
	g.logger.Info("game ended", "outcome", outcome, "score", result.Score, "ticks", g.ticks)
	g.chrome.Announce(result)
}

func resultMessage(outcome Outcome, score int) string {
	if outcome == OutcomeWin {
		return "YOU WIN, CONGRATULATIONS!"
	}
	return fmt.Sprintf("GAME OVER - %s", ScoreText(score))
}

func (g *Game) schedule() {
	g.pending = g.scheduler.ScheduleNextFrame(g.tick)
	g.hasPending = true
}

func (g *Game) cancelPending() {
	if !g.hasPending {
		return
	}
	g.scheduler.Cancel(g.pending)
	g.hasPending = false
}

func (g *Game) setPhase(p Phase) {
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
}

func (g *Game) ignore(command string) {
	g.logger.Debug("command ignored", "command", command, "phase", g.phase)
}
