package rast

// Segment is an ordered pair of endpoints. It is not a set: [A,B] and [B,A]
// describe the same geometric segment but are distinct values. A degenerate
// segment (equal endpoints) is a valid value, but the operations that need
// the segment's supporting line panic on it, since equal endpoints do not
// determine a unique line.
type Segment [2]Point

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{a, b}
}

// XOrdered returns the segment with its endpoints ordered by ascending
// x-coordinate.
func (s Segment) XOrdered() Segment {
	if s[0].X > s[1].X {
		return Segment{s[1], s[0]}
	}
	return s
}

// YOrdered returns the segment with its endpoints ordered by ascending
// y-coordinate.
func (s Segment) YOrdered() Segment {
	if s[0].Y > s[1].Y {
		return Segment{s[1], s[0]}
	}
	return s
}

// Degenerate reports whether the segment's endpoints are equal.
func (s Segment) Degenerate() bool {
	return s[0] == s[1]
}

// Lerp returns the point at parameter t along the segment, where t=0 is the
// first endpoint and t=1 the second.
func (s Segment) Lerp(t float64) Point {
	return Point{
		X: Lerp(s[0].X, s[1].X, t),
		Y: Lerp(s[0].Y, s[1].Y, t),
	}
}
