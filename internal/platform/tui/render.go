package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout-arcade/internal/core"
)

// Palette turns hex cell colors into lipgloss styles for one output.
// SSH sessions each get their own palette bound to the session renderer
// so color profiles are detected per client.
type Palette struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

// NewPalette creates a palette for the given renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	return &Palette{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

// Style returns the cached style for a color.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	p.mu.Lock()
	defer p.mu.Unlock()

	if style, ok := p.styles[c]; ok {
		return style
	}
	style := p.renderer.NewStyle()
	if !c.IsDefault() {
		style = style.Foreground(lipgloss.Color(string(c)))
	}
	p.styles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Blank and single-color rows go out as one styled run
		if c, ok := rowColor(s, y); ok {
			sb.WriteString(p.Style(c).Render(s.Row(y)))
			continue
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// rowColor reports the color shared by every cell in row y.
func rowColor(s *core.Screen, y int) (core.Color, bool) {
	c := s.GetCell(0, y).Color
	for x := 1; x < s.Width(); x++ {
		if s.GetCell(x, y).Color != c {
			return "", false
		}
	}
	return c, true
}

// RenderScreen renders with the process-wide default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.RenderScreen(s)
}
