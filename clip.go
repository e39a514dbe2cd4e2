package rast

import "math"

// ClipSegmentToRect crops a finite segment to the rectangle's interior
// using the Liang-Barsky parametric method. The second return value is
// false when the segment lies entirely outside the rectangle.
//
// The segment is parametrized as P(t) = A + t*(B-A) for t in [0, 1] and the
// valid t range is narrowed against each of the four boundary half-planes.
// A degenerate segment is accepted: a point inside the rect clips to
// itself.
func ClipSegmentToRect(seg Segment, r Rect) (Segment, bool) {
	xa, ya := seg[0].X, seg[0].Y
	xb, yb := seg[1].X, seg[1].Y
	dx := xb - xa
	dy := yb - ya

	// Axis-aligned segments are clipped directly. This both avoids a
	// division by zero and keeps segments lying exactly along an edge,
	// which the parametric constraints would not handle.
	if dx == 0 {
		if !r.ContainsX(xa) {
			return Segment{}, false
		}
		y0, y1, ok := clipSpan(ya, yb, r.Top, r.Bottom)
		if !ok {
			return Segment{}, false
		}
		return Seg(Pt(xa, y0), Pt(xa, y1)), true
	}
	if dy == 0 {
		if !r.ContainsY(ya) {
			return Segment{}, false
		}
		x0, x1, ok := clipSpan(xa, xb, r.Left, r.Right)
		if !ok {
			return Segment{}, false
		}
		return Seg(Pt(x0, ya), Pt(x1, ya)), true
	}

	// Narrow [tmin, tmax] against each boundary. The sign of the
	// directional derivative decides whether the boundary is entered or
	// left along the segment: entering tightens the lower bound, leaving
	// tightens the upper.
	tmin, tmax := 0.0, 1.0

	if t := (r.Top - ya) / dy; -dy <= 0 {
		tmin = math.Max(tmin, t)
	} else {
		tmax = math.Min(tmax, t)
	}
	if t := (r.Left - xa) / dx; -dx <= 0 {
		tmin = math.Max(tmin, t)
	} else {
		tmax = math.Min(tmax, t)
	}
	if t := (r.Right - xa) / dx; dx <= 0 {
		tmin = math.Max(tmin, t)
	} else {
		tmax = math.Min(tmax, t)
	}
	if t := (r.Bottom - ya) / dy; dy <= 0 {
		tmin = math.Max(tmin, t)
	} else {
		tmax = math.Min(tmax, t)
	}

	// A flipped range means the segment lies outside the rect.
	if tmin > tmax {
		return Segment{}, false
	}
	return Seg(
		Pt(xa+dx*tmin, ya+dy*tmin),
		Pt(xa+dx*tmax, ya+dy*tmax),
	), true
}

// ClipLineToRect finds the chord of an infinite line, described by a point
// on it and its slope angle in radians, inside the rectangle. The second
// return value is false when the line misses the rectangle.
//
// The rectangle's four boundary edges are enumerated in fixed order (top,
// left, right, bottom) and intersected with the line. A colinear result
// returns that edge immediately: the line runs along it. Two distinct
// intersection points define the chord. A single point, possibly
// re-encountered identically on adjacent edges since edges share their
// corner endpoints, means the line is tangent to a corner and the
// degenerate segment at that corner is returned.
//
// ClipLineToRect panics if the angle classifies as AngleInvalid.
func ClipLineToRect(pt Point, angle float64, r Rect) (Segment, bool) {
	var save Point
	found := false

	for _, edge := range r.Edges() {
		ix := IntersectLineSegment(pt, angle, edge)
		switch ix.Kind {
		case IntersectionColinear:
			return edge, true
		case IntersectionPoint:
			if !found {
				save = ix.At
				found = true
			} else if ix.At != save {
				return Seg(save, ix.At), true
			}
		}
	}

	if found {
		return Seg(save, save), true
	}
	return Segment{}, false
}
