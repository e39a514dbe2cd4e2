package rast

import "math"

// IntersectionKind identifies the shape of an intersection result.
type IntersectionKind uint8

const (
	// IntersectionNone means the lines or segments do not intersect.
	IntersectionNone IntersectionKind = iota

	// IntersectionColinear means the lines or segments lie on the same
	// infinite line.
	IntersectionColinear

	// IntersectionPoint means the lines or segments intersect at a single
	// point.
	IntersectionPoint
)

// Intersection is the tri-state result of an intersection test: a single
// point, colinear overlap, or no intersection. Callers must handle all
// three kinds; colinear overlap is a distinct outcome, not a point and not
// an absence.
//
// The zero value is IntersectionNone.
type Intersection struct {
	Kind IntersectionKind

	// At is the point of intersection. Valid only for IntersectionPoint.
	At Point
}

// IntersectAt returns an Intersection at the given point.
func IntersectAt(pt Point) Intersection {
	return Intersection{Kind: IntersectionPoint, At: pt}
}

// IntersectSegments computes the intersection of two finite segments.
//
// The test builds the implicit line equation a*x + b*y + c = 0 through each
// segment and evaluates it at the other segment's endpoints; this avoids
// any division, so vertical segments need no special case. An intersection
// exactly at a shared endpoint is reported as a point, not as a special
// touching case.
func IntersectSegments(sa, sb Segment) Intersection {
	// Coefficients for segment A's line equation a1*x + b1*y + c1 = 0.
	a1 := sa[1].Y - sa[0].Y
	b1 := sa[0].X - sa[1].X
	c1 := sa[1].X*sa[0].Y - sa[0].X*sa[1].Y

	// Solve A's equation at B's endpoints. Zeros mean the endpoint lies on
	// A's line. Nonzero same-sign results mean B lies entirely on one side
	// of A's line and cannot cross it.
	r0 := a1*sb[0].X + b1*sb[0].Y + c1
	r1 := a1*sb[1].X + b1*sb[1].Y + c1
	if r0 == 0 && r1 == 0 {
		return Intersection{Kind: IntersectionColinear}
	}
	if SameSign(r0, r1) {
		return Intersection{Kind: IntersectionNone}
	}

	// Coefficients for segment B's line equation a2*x + b2*y + c2 = 0.
	a2 := sb[1].Y - sb[0].Y
	b2 := sb[0].X - sb[1].X
	c2 := sb[1].X*sb[0].Y - sb[0].X*sb[1].Y

	r0 = a2*sa[0].X + b2*sa[0].Y + c2
	r1 = a2*sa[1].X + b2*sa[1].Y + c2
	if r0 != 0 && r1 != 0 && SameSign(r0, r1) {
		return Intersection{Kind: IntersectionNone}
	}

	// The segments straddle each other's lines; solve the 2x2 system for
	// the crossing point.
	denom := a1*b2 - a2*b1
	x := (b1*c2 - b2*c1) / denom
	y := (a2*c1 - a1*c2) / denom
	return IntersectAt(Point{X: x, Y: y})
}

// IntersectLineSegment computes the intersection of an infinite line,
// described by a point on it and its slope angle in radians, with a finite
// segment.
//
// IntersectLineSegment panics if the angle classifies as AngleInvalid or if
// the segment is degenerate: neither input determines a unique line, so
// there is nothing well-defined to compute.
func IntersectLineSegment(pt Point, angle float64, seg Segment) Intersection {
	if seg.Degenerate() {
		panic("rast: invalid segment: endpoints are equal")
	}

	// Coefficients for the segment's line equation a*x + b*y + c = 0.
	a := seg[1].Y - seg[0].Y
	b := seg[0].X - seg[1].X
	c := seg[1].X*seg[0].Y - seg[0].X*seg[1].Y

	at := ClassifyAngle(angle)
	switch at.Kind {
	case AngleInvalid:
		panic("rast: invalid line angle")

	case AngleHorizontal:
		y0, y1 := Order(seg[0].Y, seg[1].Y)
		switch {
		case pt.Y >= y0 && pt.Y <= y1 && a != 0:
			x := (-b*pt.Y - c) / a
			return IntersectAt(Point{X: x, Y: pt.Y})
		case pt.Y == y0 && pt.Y == y1 && a == 0:
			return Intersection{Kind: IntersectionColinear}
		default:
			return Intersection{Kind: IntersectionNone}
		}

	case AngleVertical:
		x0, x1 := Order(seg[0].X, seg[1].X)
		switch {
		case pt.X >= x0 && pt.X <= x1 && b != 0:
			y := (-a*pt.X - c) / b
			return IntersectAt(Point{X: pt.X, Y: y})
		case pt.X == x0 && pt.X == x1 && b == 0:
			return Intersection{Kind: IntersectionColinear}
		default:
			return Intersection{Kind: IntersectionNone}
		}

	default:
		// Line equation m*x + y0 - y = 0. Neither sin nor cos can be 0
		// here; the horizontal and vertical cases were dispatched above.
		sin, cos := math.Sincos(at.Theta)
		m := sin / cos
		y0 := pt.Y - m*pt.X

		r0 := m*seg[0].X + y0 - seg[0].Y
		r1 := m*seg[1].X + y0 - seg[1].Y
		if r0 == 0 && r1 == 0 {
			return Intersection{Kind: IntersectionColinear}
		}
		if SameSign(r0, r1) {
			return Intersection{Kind: IntersectionNone}
		}

		// Solve the system of the two line equations by substitution.
		x := (-b*y0 - c) / (a + m*b)
		y := m*x + y0
		return IntersectAt(Point{X: x, Y: y})
	}
}
