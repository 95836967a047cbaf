package core

// Color is a "#rrggbb" hex color. The empty string means the terminal default.
type Color string

// ColorDefault leaves the cell unstyled.
const ColorDefault Color = ""

// IsDefault reports whether the color carries no styling.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
