package web

import "github.com/vovakirdan/breakout-arcade/internal/core"

// Draw operations understood by the page.
const (
	OpClear  = "clear"
	OpRect   = "rect"
	OpCircle = "circle"
	OpText   = "text"
)

// DrawCommand is one canvas call.
type DrawCommand struct {
	Op    string  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	R     float64 `json:"r,omitempty"`
	Text  string  `json:"text,omitempty"`
	Font  string  `json:"font,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Recorder is a surface that records draw calls for replay in the
// browser. Clearing the whole surface starts a new frame.
type Recorder struct {
	width, height float64
	commands      []DrawCommand
	dirty         bool
}

// NewRecorder creates a recorder for a width x height surface.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) add(cmd DrawCommand) {
	r.commands = append(r.commands, cmd)
	r.dirty = true
}

// Clear records a clear. A full clear drops the commands recorded so far.
func (r *Recorder) Clear(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= r.width && y+h >= r.height {
		r.commands = r.commands[:0]
	}
	r.add(DrawCommand{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.add(DrawCommand{Op: OpRect, X: x, Y: y, W: w, H: h, Color: string(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.add(DrawCommand{Op: OpCircle, X: cx, Y: cy, R: radius, Color: string(c)})
}

func (r *Recorder) DrawText(x, y float64, text, font string, c core.Color) {
	r.add(DrawCommand{Op: OpText, X: x, Y: y, Text: text, Font: font, Color: string(c)})
}

// Flush returns the current frame if anything was drawn since the last
// flush. The recorder keeps the frame so later partial draws build on it.
func (r *Recorder) Flush() ([]DrawCommand, bool) {
	if !r.dirty {
		return nil, false
	}
	r.dirty = false
	out := make([]DrawCommand, len(r.commands))
	copy(out, r.commands)
	return out, true
}
