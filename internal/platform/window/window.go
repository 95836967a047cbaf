// Package window runs Breakout in a native window with Ebiten.
// Ebiten's Update drives the game's frame queue, so one game tick runs
// per Ebiten tick.
package window

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/breakout-arcade/internal/config"
	"github.com/vovakirdan/breakout-arcade/internal/core"
	"github.com/vovakirdan/breakout-arcade/internal/games/breakout"
)

var shade = color.RGBA{0xff, 0xff, 0xff, 0xcc}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// windowChrome keeps the overlay and result Draw shows.
type windowChrome struct {
	overlay string
	result  *breakout.Result
}

func (c *windowChrome) ShowOverlay(name string) {
	c.overlay = name
	if name == breakout.OverlayStart {
		c.result = nil
	}
}

func (c *windowChrome) HideOverlay(name string) {
	if c.overlay == name {
		c.overlay = ""
	}
}

func (c *windowChrome) Announce(r breakout.Result) {
	c.result = &r
}

// Window implements ebiten.Game.
type Window struct {
	game    *breakout.Game
	frames  *breakout.FrameQueue
	surface *ImageSurface
	chrome  *windowChrome

	width, height int
	cursorX       int
}

// New creates a window game for the configuration.
func New(cfg config.BreakoutConfig, logger *log.Logger) *Window {
	w := &Window{
		frames:  breakout.NewFrameQueue(),
		chrome:  &windowChrome{},
		width:   int(cfg.Surface.Width),
		height:  int(cfg.Surface.Height),
		cursorX: -1,
	}
	w.surface = NewImageSurface(w.width, w.height, core.Color(cfg.Surface.Background))
	w.game = breakout.New(cfg, w.surface, w.frames,
		breakout.WithChrome(w.chrome),
		breakout.WithLogger(logger),
	)
	return w
}

// Update handles input and runs one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if justPressed(ebiten.KeyEnter, ebiten.KeySpace) {
		w.confirm()
	}
	if justPressed(ebiten.KeyP, ebiten.KeyEscape) {
		w.game.Toggle()
		w.syncKeys()
	}

	w.directionKey(breakout.DirLeft, leftKeys)
	w.directionKey(breakout.DirRight, rightKeys)

	// Layout maps the cursor to surface pixels
	if x, _ := ebiten.CursorPosition(); x != w.cursorX {
		w.cursorX = x
		w.game.PointerMove(float64(x))
	}

	w.frames.RunFrame()
	return nil
}

func (w *Window) directionKey(dir breakout.Direction, keys []ebiten.Key) {
	switch {
	case justPressed(keys...):
		w.game.KeyDown(dir)
	case justReleased(keys...) && !pressed(keys...):
		w.game.KeyUp(dir)
	}
}

// syncKeys releases directions whose keys went up while the game was
// not accepting input.
func (w *Window) syncKeys() {
	if w.game.Phase() != breakout.PhaseRunning {
		return
	}
	controls := w.game.State().Controls
	if controls.Left && !pressed(leftKeys...) {
		w.game.KeyUp(breakout.DirLeft)
	}
	if controls.Right && !pressed(rightKeys...) {
		w.game.KeyUp(breakout.DirRight)
	}
}

func (w *Window) confirm() {
	switch w.game.Phase() {
	case breakout.PhaseNotStarted:
		w.game.Start()
	case breakout.PhasePaused:
		w.game.Resume()
		w.syncKeys()
	case breakout.PhaseEnded:
		w.game.ReturnToStart()
		w.game.Start()
	}
}

// Draw shows the last rendered frame and any overlay.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.Image(), nil)

	switch {
	case w.chrome.result != nil:
		w.drawOverlay(screen, w.chrome.result.Message, "Press ENTER to play again")
	case w.chrome.overlay == breakout.OverlayStart:
		w.drawOverlay(screen, "BREAKOUT", "Press ENTER to start")
	case w.chrome.overlay == breakout.OverlayPaused:
		w.drawOverlay(screen, "PAUSED", "Press P to resume")
	}
}

func (w *Window) drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(w.width), float32(w.height), shade, false)

	y := w.height/2 - glyphHeight
	ebitenutil.DebugPrintAt(screen, title, (w.width-len(title)*glyphWidth)/2, y)
	ebitenutil.DebugPrintAt(screen, hint, (w.width-len(hint)*glyphWidth)/2, y+glyphHeight+4)
}

// Layout keeps the logical screen at surface size; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens a window scaled by scale and blocks until it is closed.
func Run(cfg config.BreakoutConfig, tickRate int, scale float64, logger *log.Logger) error {
	if tickRate <= 0 {
		tickRate = cfg.Loop.TickRate
	}
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(cfg.Surface.Width*scale), int(cfg.Surface.Height*scale))
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetTPS(tickRate)

	// Returning ebiten.Termination from Update makes RunGame return nil
	return ebiten.RunGame(New(cfg, logger))
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func justReleased(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
