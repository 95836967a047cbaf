package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/breakout-arcade/internal/core"
)

// Debug font metrics used by ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
	glyphAscent = 12
)

// ImageSurface draws the game into an offscreen Ebiten image.
type ImageSurface struct {
	img        *ebiten.Image
	background color.Color
	colors     map[core.Color]color.Color

	// Last rendered text, kept so the HUD is not rebuilt every frame
	text    string
	textImg *ebiten.Image
}

// NewImageSurface creates a width x height surface cleared to background.
func NewImageSurface(width, height int, background core.Color) *ImageSurface {
	s := &ImageSurface{
		img:    ebiten.NewImage(width, height),
		colors: make(map[core.Color]color.Color),
	}
	s.background = s.color(background)
	s.img.Fill(s.background)
	return s
}

// Image returns the offscreen image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// color converts a hex color, caching the result. Invalid or default
// colors fall back to black; config validation rejects them earlier.
func (s *ImageSurface) color(c core.Color) color.Color {
	if cached, ok := s.colors[c]; ok {
		return cached
	}
	var out color.Color = color.Black
	if parsed, err := colorful.Hex(string(c)); err == nil {
		out = parsed
	}
	s.colors[c] = out
	return out
}

func (s *ImageSurface) Clear(x, y, w, h float64) {
	b := s.img.Bounds()
	if x <= 0 && y <= 0 && x+w >= float64(b.Dx()) && y+h >= float64(b.Dy()) {
		s.img.Fill(s.background)
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.background, false)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.color(c), false)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), s.color(c), true)
}

// DrawText draws with the built-in debug font tinted to c. The font
// name is ignored.
func (s *ImageSurface) DrawText(x, y float64, text, _ string, c core.Color) {
	if text != s.text || s.textImg == nil {
		if s.textImg != nil {
			s.textImg.Deallocate()
		}
		s.textImg = ebiten.NewImage(core.Max(len(text)*glyphWidth, 1), glyphHeight)
		ebitenutil.DebugPrint(s.textImg, text)
		s.text = text
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y-glyphAscent)
	op.ColorScale.ScaleWithColor(s.color(c))
	s.img.DrawImage(s.textImg, op)
}
