package rast

// ExtendSegmentToRect extends a segment's supporting line outward to the
// boundaries of the rectangle, returning the sub-segment of that infinite
// line spanning the rectangle's interior. The second return value is false
// when the line misses the rectangle entirely.
//
// A line touching the rectangle at exactly one corner yields a degenerate
// zero-length segment at that corner.
//
// ExtendSegmentToRect panics if the segment is degenerate, since equal
// endpoints do not determine a unique line.
func ExtendSegmentToRect(seg Segment, r Rect) (Segment, bool) {
	if seg.Degenerate() {
		panic("rast: segment endpoints do not determine a unique line")
	}
	ea, eb := seg[0], seg[1]

	// Coefficients for the line equation a*x + b*y + c = 0.
	a := eb.Y - ea.Y
	b := ea.X - eb.X
	c := eb.X*ea.Y - ea.X*eb.Y

	switch {
	case a == 0 && r.ContainsY(eb.Y):
		// Horizontal line: spans [Left, Right] at the segment's y.
		return Seg(Pt(r.Left, eb.Y), Pt(r.Right, eb.Y)), true
	case b == 0 && r.ContainsX(eb.X):
		// Vertical line: spans [Top, Bottom] at the segment's x.
		return Seg(Pt(eb.X, r.Top), Pt(eb.X, r.Bottom)), true
	case a == 0 || b == 0:
		// Axis-aligned line outside the rect.
		return Segment{}, false
	}

	// Candidate intersections with each of the four infinite boundary
	// lines: the x-coordinates on the top and bottom lines, and the
	// y-coordinates on the left and right lines.
	tx := (-b*r.Top - c) / a
	bx := (-b*r.Bottom - c) / a
	ly := (-a*r.Left - c) / b
	ry := (-a*r.Right - c) / b

	// Each candidate is valid only if its other coordinate lies within the
	// rect.
	txi := r.ContainsX(tx)
	bxi := r.ContainsX(bx)
	lyi := r.ContainsY(ly)
	ryi := r.ContainsY(ry)

	// Normalize corner behavior: a hit exactly on a corner would register
	// on both adjacent edges; attribute it to the top or bottom edge only.
	if (tx == r.Left && ly == r.Top) || (bx == r.Left && ly == r.Bottom) {
		lyi = false
	}
	if (tx == r.Right && ry == r.Top) || (bx == r.Right && ry == r.Bottom) {
		ryi = false
	}

	// Combine the valid edge hits into the spanning segment. The pairs are
	// exhaustive: after corner normalization at most two hits remain.
	switch {
	case txi && bxi:
		return Seg(Pt(tx, r.Top), Pt(bx, r.Bottom)), true
	case txi && lyi:
		return Seg(Pt(tx, r.Top), Pt(r.Left, ly)), true
	case txi && ryi:
		return Seg(Pt(tx, r.Top), Pt(r.Right, ry)), true
	case bxi && lyi:
		return Seg(Pt(bx, r.Bottom), Pt(r.Left, ly)), true
	case bxi && ryi:
		return Seg(Pt(bx, r.Bottom), Pt(r.Right, ry)), true
	case lyi && ryi:
		return Seg(Pt(r.Left, ly), Pt(r.Right, ry)), true

	case txi:
		// Single hit: the line is tangent to an upper corner.
		return Seg(Pt(tx, r.Top), Pt(tx, r.Top)), true
	case bxi:
		// Single hit: the line is tangent to a lower corner.
		return Seg(Pt(bx, r.Bottom), Pt(bx, r.Bottom)), true
	}

	// No valid hits: the line misses the rect.
	return Segment{}, false
}
