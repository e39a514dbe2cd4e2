package rast

import "math"

// Drawing primitives. Every primitive crops its figure against the virtual
// bounding rectangle of the canvas and brush before walking pixels, then
// steps along the major axis solving the parametric line equation for the
// minor coordinate.

// DrawPoint draws a single point.
func DrawPoint(c Canvas, b Brush, pt Point) {
	b.Apply(c, pt)
}

// DrawSegment draws a line segment. The segment is cropped within the
// bounds of the canvas.
func DrawSegment(c Canvas, b Brush, seg Segment) {
	rect := VirtualBoundingRect(c, b)
	clipped, ok := ClipSegmentToRect(seg, rect)
	if !ok {
		Logger().Debug("segment outside canvas",
			"ax", seg[0].X, "ay", seg[0].Y, "bx", seg[1].X, "by", seg[1].Y)
		return
	}
	walkSegment(c, b, clipped)
}

// walkSegment paints an already-cropped segment, stepping one pixel at a
// time along the major axis.
func walkSegment(c Canvas, b Brush, seg Segment) {
	dx := seg[1].X - seg[0].X
	dy := seg[1].Y - seg[0].Y

	if math.Abs(dy) < math.Abs(dx) {
		s := seg.XOrdered()
		xa, ya := s[0].X, s[0].Y
		xb, yb := s[1].X, s[1].Y
		for x := xa; x <= xb; x++ {
			// Solve the parametric line equation for the y-coordinate.
			t := (x - xa) / (xb - xa)
			b.Apply(c, Pt(x, ya+(yb-ya)*t))
		}
	} else {
		s := seg.YOrdered()
		xa, ya := s[0].X, s[0].Y
		xb, yb := s[1].X, s[1].Y
		for y := ya; y <= yb; y++ {
			t := 0.0
			if yb != ya {
				t = (y - ya) / (yb - ya)
			}
			b.Apply(c, Pt(xa+(xb-xa)*t, y))
		}
	}
}

// DrawSegmentHorizontal draws a horizontal line segment from pt to the
// given opposite x-coordinate. The segment is cropped within the bounds of
// the canvas.
func DrawSegmentHorizontal(c Canvas, b Brush, pt Point, x float64) {
	rect := VirtualBoundingRect(c, b)
	if !rect.ContainsY(pt.Y) {
		return
	}
	x0, x1, ok := clipSpan(pt.X, x, rect.Left, rect.Right)
	if !ok {
		return
	}
	xa, xb := Order(x0, x1)
	for xi := xa; xi <= xb; xi++ {
		b.Apply(c, Pt(xi, pt.Y))
	}
}

// DrawSegmentVertical draws a vertical line segment from pt to the given
// opposite y-coordinate. The segment is cropped within the bounds of the
// canvas.
func DrawSegmentVertical(c Canvas, b Brush, pt Point, y float64) {
	rect := VirtualBoundingRect(c, b)
	if !rect.ContainsX(pt.X) {
		return
	}
	y0, y1, ok := clipSpan(pt.Y, y, rect.Top, rect.Bottom)
	if !ok {
		return
	}
	ya, yb := Order(y0, y1)
	for yi := ya; yi <= yb; yi++ {
		b.Apply(c, Pt(pt.X, yi))
	}
}

// DrawSegmentExtended draws the infinite line overlaying a line segment,
// cropped within the bounds of the canvas. Nothing is drawn for a
// degenerate segment.
func DrawSegmentExtended(c Canvas, b Brush, seg Segment) {
	if seg.Degenerate() {
		return
	}
	rect := VirtualBoundingRect(c, b)
	ext, ok := ExtendSegmentToRect(seg, rect)
	if !ok {
		return
	}
	walkSegment(c, b, ext)
}

// DrawLine draws an infinite line through pt with the given slope angle in
// radians, cropped within the bounds of the canvas.
//
// DrawLine panics if the angle classifies as AngleInvalid.
func DrawLine(c Canvas, b Brush, pt Point, angle float64) {
	rect := VirtualBoundingRect(c, b)
	chord, ok := ClipLineToRect(pt, angle, rect)
	if !ok {
		return
	}
	walkSegment(c, b, chord)
}

// DrawLineHorizontal draws a horizontal line spanning the canvas at the
// given y-coordinate.
func DrawLineHorizontal(c Canvas, b Brush, y float64) {
	for x := c.Left(); x <= c.Right(); x++ {
		b.Apply(c, Pt(float64(x), y))
	}
}

// DrawLineVertical draws a vertical line spanning the canvas at the given
// x-coordinate.
func DrawLineVertical(c Canvas, b Brush, x float64) {
	for y := c.Top(); y <= c.Bottom(); y++ {
		b.Apply(c, Pt(x, float64(y)))
	}
}

// DrawRay draws the half-line starting at from with the given slope angle
// in radians, cropped within the bounds of the canvas.
//
// DrawRay panics if the angle classifies as AngleInvalid.
func DrawRay(c Canvas, b Brush, from Point, angle float64) {
	rect := VirtualBoundingRect(c, b)
	chord, ok := ClipLineToRect(from, angle, rect)
	if !ok {
		return
	}

	// Keep only the part of the chord on the forward side of the ray
	// origin: project each chord endpoint onto the ray direction.
	sin, cos := math.Sincos(angle)
	s0 := (chord[0].X-from.X)*cos + (chord[0].Y-from.Y)*sin
	s1 := (chord[1].X-from.X)*cos + (chord[1].Y-from.Y)*sin
	if s0 < 0 && s1 < 0 {
		return
	}
	if s0 < 0 {
		chord[0] = from
	}
	if s1 < 0 {
		chord[1] = from
	}
	walkSegment(c, b, chord)
}

// DrawRaySegment draws a line segment as a length-delimited ray: from the
// start position, along the given slope angle, for the given length. The
// segment is cropped within the bounds of the canvas.
func DrawRaySegment(c Canvas, b Brush, from Point, angle, length float64) {
	sin, cos := math.Sincos(angle)
	to := Pt(from.X+length*cos, from.Y+length*sin)
	DrawSegment(c, b, Seg(from, to))
}

// DrawNormalSegment draws a line segment normal to a ray: centered on the
// point at the given distance along the ray from its start, perpendicular
// to it, with the given length. The segment is cropped within the bounds
// of the canvas.
func DrawNormalSegment(c Canvas, b Brush, from Point, angle, dist, length float64) {
	sin, cos := math.Sincos(angle)
	center := Pt(from.X+dist*cos, from.Y+dist*sin)

	// Perpendicular direction, half the length to each side.
	half := length / 2
	a := Pt(center.X-half*sin, center.Y+half*cos)
	b2 := Pt(center.X+half*sin, center.Y-half*cos)
	DrawSegment(c, b, Seg(a, b2))
}
