package rast

// Pattern represents a fill blended into the canvas through an opacity
// mask. Glyph rendering drives a Pattern with per-pixel coverage values;
// opacity 0 leaves the canvas untouched and opacity 1 paints the pattern
// fully.
type Pattern interface {
	// Apply blends the pattern into the canvas at the given point with the
	// given opacity in [0, 1].
	Apply(c Canvas, pt Point, opacity float64)
}

// SolidPattern blends a single color, interpolating each channel between
// the existing pixel and the pattern color by the opacity.
type SolidPattern struct {
	Color RGBA
}

// Apply implements Pattern.
func (p SolidPattern) Apply(c Canvas, pt Point, opacity float64) {
	pos := pt.Position()
	bg, ok := c.Pixel(pos)
	if !ok {
		return
	}
	c.SetPixel(pos, bg.Lerp(p.Color, Clamp(opacity, 0, 1)))
}
