package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
	"github.com/vovakirdan/breakout-arcade/internal/games/breakout"
	"github.com/vovakirdan/breakout-arcade/internal/logging"
)

// overlayChrome keeps the overlay and result the terminal View draws on
// top of the playfield.
type overlayChrome struct {
	overlay string
	result  *breakout.Result
}

func (c *overlayChrome) ShowOverlay(name string) {
	c.overlay = name
	if name == breakout.OverlayStart {
		c.result = nil
	}
}

func (c *overlayChrome) HideOverlay(name string) {
	if c.overlay == name {
		c.overlay = ""
	}
}

func (c *overlayChrome) Announce(r breakout.Result) {
	c.result = &r
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPalette sets the palette used to style the screen.
func WithPalette(p *Palette) ModelOption {
	return func(m *Model) {
		m.palette = p
	}
}

// WithLogger sets the logger passed to the game.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// Model is the Bubble Tea model for one Breakout session.
//
// Terminals report key presses but never releases, so a held direction
// is released after keyHold ticks without a repeat. Key auto-repeat
// keeps it held while the key is down.
type Model struct {
	game    *breakout.Game
	frames  *breakout.FrameQueue
	surface *CellSurface
	chrome  *overlayChrome
	palette *Palette
	logger  *log.Logger

	keys KeyMap
	help help.Model

	held     [2]int // Ticks left before release, indexed by breakout.Direction
	keyHold  int
	tickRate int

	width    int
	height   int
	quitting bool
}

// NewModel creates a model sized for the runtime terminal.
func NewModel(cfg config.BreakoutConfig, rt core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		frames:   breakout.NewFrameQueue(),
		chrome:   &overlayChrome{},
		palette:  defaultPalette,
		logger:   logging.Discard(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		keyHold:  cfg.Input.KeyHoldTicks,
		tickRate: rt.TickRate,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.tickRate <= 0 {
		m.tickRate = cfg.Loop.TickRate
	}

	screen := core.NewScreen(playfieldSize(rt.ScreenW, rt.ScreenH))
	m.surface = NewCellSurface(screen, cfg.Surface.Width, cfg.Surface.Height)
	m.game = breakout.New(cfg, m.surface, m.frames,
		breakout.WithChrome(m.chrome),
		breakout.WithLogger(m.logger),
	)
	m.help.Width = rt.ScreenW
	return m
}

// playfieldSize leaves the last terminal row for the help line.
func playfieldSize(w, h int) (int, int) {
	return core.Max(w, 1), core.Max(h-1, 1)
}

// Game returns the underlying game controller.
func (m Model) Game() *breakout.Game {
	return m.game
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.game.PointerMove(m.surface.PointerX(msg.X))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Screen().Resize(playfieldSize(msg.Width, msg.Height))
		m.help.Width = msg.Width
		m.game.Draw()
		return m, nil

	case TickMsg:
		m.frames.RunFrame()
		m.releaseKeys()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.press(breakout.DirLeft, breakout.DirRight)
	case core.ActionRight:
		m.press(breakout.DirRight, breakout.DirLeft)
	case core.ActionConfirm:
		m.confirm()
	case core.ActionPause:
		m.game.Toggle()
		m.syncKeys()
	}
	return m, nil
}

// press holds dir and releases the opposite direction, since a terminal
// cannot tell us the other key went up.
func (m *Model) press(dir, opposite breakout.Direction) {
	if m.held[opposite] > 0 {
		m.held[opposite] = 0
		m.game.KeyUp(opposite)
	}
	m.game.KeyDown(dir)
	m.held[dir] = m.keyHold
}

// releaseKeys counts down held keys. Counters only run while the game
// does, so a key pressed before a pause is released after resuming.
func (m *Model) releaseKeys() {
	if m.game.Phase() != breakout.PhaseRunning {
		return
	}
	for dir := range m.held {
		if m.held[dir] == 0 {
			continue
		}
		m.held[dir]--
		if m.held[dir] == 0 {
			m.game.KeyUp(breakout.Direction(dir))
		}
	}
}

// syncKeys releases directions the game still holds but whose counter
// ran out or was cleared while the game ignored input.
func (m *Model) syncKeys() {
	if m.game.Phase() != breakout.PhaseRunning {
		return
	}
	controls := m.game.State().Controls
	if controls.Left && m.held[breakout.DirLeft] == 0 {
		m.game.KeyUp(breakout.DirLeft)
	}
	if controls.Right && m.held[breakout.DirRight] == 0 {
		m.game.KeyUp(breakout.DirRight)
	}
}

// confirm starts, resumes or restarts depending on the phase.
func (m *Model) confirm() {
	switch m.game.Phase() {
	case breakout.PhaseNotStarted:
		m.game.Start()
		m.held = [2]int{}
	case breakout.PhasePaused:
		m.game.Resume()
		m.syncKeys()
	case breakout.PhaseEnded:
		m.game.ReturnToStart()
		m.game.Start()
		m.held = [2]int{}
	}
}

// View renders the playfield, any overlay and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.surface.Screen().Clone()
	switch {
	case m.chrome.result != nil:
		drawOverlay(screen, m.chrome.result.Message, "Press ENTER to play again")
	case m.chrome.overlay == breakout.OverlayStart:
		drawOverlay(screen, "BREAKOUT", "Press ENTER to start")
	case m.chrome.overlay == breakout.OverlayPaused:
		drawOverlay(screen, "PAUSED", "Press P to resume")
	}

	return m.palette.RenderScreen(screen) + "\n" + m.help.View(m.keys)
}

// drawOverlay draws a centered box with a title and a hint line.
func drawOverlay(s *core.Screen, title, hint string) {
	w := core.Max(len([]rune(title)), len([]rune(hint))) + 4
	h := 5
	// Narrow terminals pin the box to the top-left corner
	x := core.Clamp((s.Width()-w)/2, 0, core.Max(s.Width()-w, 0))
	y := core.Clamp((s.Height()-h)/2, 0, core.Max(s.Height()-h, 0))
	box := core.NewRect(x, y, w, h)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, title)
	s.DrawTextCentered(box.Y+3, hint)
}

// Run starts a local Bubble Tea program for the given configuration.
func Run(cfg config.BreakoutConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
