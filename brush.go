package rast

// Brush represents what the drawing primitives paint with. A brush is
// applied at a continuous-plane point and decides itself which canvas
// pixels to touch; Size reports its pixel footprint so primitives can crop
// against the virtual bounding rectangle instead of the bare canvas.
type Brush interface {
	// Apply paints the brush onto the canvas at the given point.
	Apply(c Canvas, pt Point)

	// Size returns the brush footprint in pixels.
	Size() (w, h int)
}

// SolidBrush is a 1x1 brush painting a single solid color.
type SolidBrush struct {
	Color RGBA
}

// Solid creates a SolidBrush from a color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// Apply implements Brush. It paints the pixel nearest to pt.
func (b SolidBrush) Apply(c Canvas, pt Point) {
	c.SetPixel(pt.Position(), b.Color)
}

// Size implements Brush.
func (b SolidBrush) Size() (int, int) {
	return 1, 1
}

// SquareBrush paints a filled width x width block centered on the applied
// point. Its footprint makes primitives crop against a virtual bounding
// rectangle expanded beyond the canvas, so strokes near the edge keep
// their full shape.
type SquareBrush struct {
	Color RGBA
	Width int
}

// Apply implements Brush.
func (b SquareBrush) Apply(c Canvas, pt Point) {
	center := pt.Position()
	half := b.Width / 2
	for dy := -half; dy <= b.Width-1-half; dy++ {
		for dx := -half; dx <= b.Width-1-half; dx++ {
			c.SetPixel(center.Add(Pos(dx, dy)), b.Color)
		}
	}
}

// Size implements Brush.
func (b SquareBrush) Size() (int, int) {
	return b.Width, b.Width
}

// ApplyFunc is a function applying paint to a canvas at a point.
// Used by CustomBrush to define arbitrary brush behavior.
type ApplyFunc func(c Canvas, pt Point)

// CustomBrush is a brush with a user-defined apply function.
//
// Example:
//
//	// Paint with a color depending on the x-coordinate.
//	fade := rast.CustomBrush{
//		Func: func(c rast.Canvas, pt rast.Point) {
//			t := pt.X / 100
//			c.SetPixel(pt.Position(), rast.Black.Lerp(rast.White, t))
//		},
//		W: 1, H: 1,
//	}
type CustomBrush struct {
	// Func paints the brush at each applied point.
	Func ApplyFunc

	// W, H describe the brush footprint in pixels. Zero values are
	// treated as 1.
	W, H int

	// Name is an optional identifier for debugging and logging.
	Name string
}

// Apply implements Brush.
func (b CustomBrush) Apply(c Canvas, pt Point) {
	if b.Func == nil {
		return
	}
	b.Func(c, pt)
}

// Size implements Brush.
func (b CustomBrush) Size() (int, int) {
	w, h := b.W, b.H
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
