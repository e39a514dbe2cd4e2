package rast

// Canvas is a rectangular pixel region addressed by Position. Bounds are
// inclusive integer pixel coordinates: the canvas covers every position
// with Left() <= x <= Right() and Top() <= y <= Bottom(), matching the
// closed containment convention of Rect.
//
// The clipping kernel never mutates a canvas; it only reads its bounds.
// Brushes and patterns write pixels through SetPixel.
type Canvas interface {
	Left() int
	Right() int
	Top() int
	Bottom() int

	// Pixel returns the color at the given position. The second return
	// value is false when the position lies outside the canvas.
	Pixel(pos Position) (RGBA, bool)

	// SetPixel writes the color at the given position. It reports whether
	// the position was inside the canvas; writes outside are ignored.
	SetPixel(pos Position, c RGBA) bool
}

// Contains reports whether the position lies within the canvas bounds.
func Contains(c Canvas, pos Position) bool {
	return ContainsX(c, pos.X) && ContainsY(c, pos.Y)
}

// ContainsX reports whether x lies within [Left, Right].
func ContainsX(c Canvas, x int) bool {
	return x >= c.Left() && x <= c.Right()
}

// ContainsY reports whether y lies within [Top, Bottom].
func ContainsY(c Canvas, y int) bool {
	return y >= c.Top() && y <= c.Bottom()
}

// TopLeft returns the canvas's top-left corner position.
func TopLeft(c Canvas) Position {
	return Position{X: c.Left(), Y: c.Top()}
}

// BottomRight returns the canvas's bottom-right corner position.
func BottomRight(c Canvas) Position {
	return Position{X: c.Right(), Y: c.Bottom()}
}

// Bounds returns the canvas bounds as a continuous-plane Rect.
func Bounds(c Canvas) Rect {
	return Rect{
		Left:   float64(c.Left()),
		Top:    float64(c.Top()),
		Right:  float64(c.Right()),
		Bottom: float64(c.Bottom()),
	}
}

// VirtualBoundingRect returns the canvas bounds expanded outward by half
// the brush's footprint. Drawing primitives crop figures against this rect
// instead of the canvas rect so that a wide brush is not clipped before its
// edge pixels could still land on the canvas.
func VirtualBoundingRect(c Canvas, b Brush) Rect {
	w, h := b.Size()
	return Bounds(c).Expand(float64(w-1)/2, float64(h-1)/2)
}

// BoxClamp clamps each endpoint of the segment independently into the
// canvas bounds. This is a coordinatewise clamp, not a geometric clip: it
// can distort the segment's visual slope, but it is cheap and sufficient
// where exactness is not required.
func BoxClamp(c Canvas, seg [2]Position) [2]Position {
	return [2]Position{
		{
			X: clampInt(seg[0].X, c.Left(), c.Right()),
			Y: clampInt(seg[0].Y, c.Top(), c.Bottom()),
		},
		{
			X: clampInt(seg[1].X, c.Left(), c.Right()),
			Y: clampInt(seg[1].Y, c.Top(), c.Bottom()),
		},
	}
}

// LinearClamp clamps the segment into the canvas bounds while preserving
// its slope, interpolating the opposite coordinate of each out-of-bounds
// endpoint along the line. The second return value is false when the
// segment lies entirely outside the canvas on an aligned axis.
//
// Unlike BoxClamp this is geometry-aware, and unlike ClipSegmentToRect it
// works on integer positions with a two-pass interpolate-then-clamp
// strategy: first ordered by x clamping the x-axis, then reordered by y
// clamping the y-axis.
func LinearClamp(c Canvas, seg [2]Position) ([2]Position, bool) {
	left, right := c.Left(), c.Right()
	top, bottom := c.Top(), c.Bottom()

	p := XOrder(seg)
	a, b := p[0], p[1]

	rise := b.Y - a.Y
	run := b.X - a.X

	if rise == 0 {
		// Horizontal segment. Simply clamping x is unsuitable: two
		// endpoints beyond the same boundary would collapse onto a shared
		// boundary point, projecting a fully off-screen segment onto the
		// canvas edge.
		if !ContainsY(c, a.Y) || (!ContainsX(c, a.X) && !ContainsX(c, b.X)) {
			return [2]Position{}, false
		}
		a.X = clampInt(a.X, left, right)
		b.X = clampInt(b.X, left, right)
		return [2]Position{a, b}, true
	}

	if run == 0 {
		// Vertical segment; same off-screen check on the other axis.
		if !ContainsX(c, a.X) || (!ContainsY(c, a.Y) && !ContainsY(c, b.Y)) {
			return [2]Position{}, false
		}
		a.Y = clampInt(a.Y, top, bottom)
		b.Y = clampInt(b.Y, top, bottom)
		return [2]Position{a, b}, true
	}

	slope := float64(rise) / float64(run)

	// Interpolate horizontally to the canvas boundaries.
	if a.X < left {
		a.Y += int(float64(left-a.X) * slope)
		a.X = left
	}
	if b.X > right {
		b.Y -= int(float64(b.X-right) * slope)
		b.X = right
	}

	// Interpolate vertically to the canvas boundaries.
	p = YOrder([2]Position{a, b})
	a, b = p[0], p[1]
	if a.Y < top {
		a.X += int(float64(top-a.Y) / slope)
		a.Y = top
	}
	if b.Y > bottom {
		b.X -= int(float64(b.Y-bottom) / slope)
		b.Y = bottom
	}

	return [2]Position{a, b}, true
}

// clampInt clamps v to the [lo, hi] range.
func clampInt(v, lo, hi int) int {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}
