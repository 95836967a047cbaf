package tui

import (
	"math"

	"github.com/vovakirdan/breakout-arcade/internal/core"
)

const (
	blockRune = '█'
	ballRune  = '●'
)

// CellSurface draws game pixels onto a character Screen.
// Surface coordinates are scaled to the screen so the whole playfield
// always fits the terminal, whatever its size.
type CellSurface struct {
	screen *core.Screen
	width  float64 // Surface width in pixels
	height float64 // Surface height in pixels
}

// NewCellSurface creates a surface of width x height pixels backed by screen.
func NewCellSurface(screen *core.Screen, width, height float64) *CellSurface {
	return &CellSurface{screen: screen, width: width, height: height}
}

// Screen returns the backing character buffer.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

func (s *CellSurface) col(x float64) int {
	return int(math.Floor(x * float64(s.screen.Width()) / s.width))
}

func (s *CellSurface) row(y float64) int {
	return int(math.Floor(y * float64(s.screen.Height()) / s.height))
}

// span returns the inclusive cell range covered by [from, to) pixels.
// Anything with positive size covers at least one cell.
func span(from, to, cells, pixels float64) (int, int) {
	first := int(math.Floor(from * cells / pixels))
	last := int(math.Ceil(to*cells/pixels)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// PointerX converts a terminal column to the surface X at the cell center.
func (s *CellSurface) PointerX(col int) float64 {
	return (float64(col) + 0.5) / float64(s.screen.Width()) * s.width
}

// Clear blanks every cell touched by the region.
func (s *CellSurface) Clear(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.screen.Clear()
		return
	}
	s.fill(x, y, w, h, core.Cell{Rune: ' '})
}

// FillRect paints the region with solid blocks.
func (s *CellSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.fill(x, y, w, h, core.Cell{Rune: blockRune, Color: c})
}

// FillCircle marks the cell under the circle's center. At terminal
// resolution the ball is always smaller than a cell.
func (s *CellSurface) FillCircle(cx, cy, _ float64, c core.Color) {
	s.screen.SetCell(s.col(cx), s.row(cy), core.Cell{Rune: ballRune, Color: c})
}

// DrawText writes text on the row holding the baseline's upper pixel.
// Font is ignored.
func (s *CellSurface) DrawText(x, y float64, text, _ string, c core.Color) {
	row := s.row(math.Max(y-1, 0))
	s.screen.DrawColorText(s.col(x), row, text, c)
}

func (s *CellSurface) fill(x, y, w, h float64, cell core.Cell) {
	c0, c1 := span(x, x+w, float64(s.screen.Width()), s.width)
	r0, r1 := span(y, y+h, float64(s.screen.Height()), s.height)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetCell(col, row, cell)
		}
	}
}
