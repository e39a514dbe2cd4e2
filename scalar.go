package rast

// Clamp returns v restricted to the range [lo, hi].
// The caller must ensure lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// Order returns the given values in ascending order.
func Order(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// SameSign reports whether a and b are both strictly positive or both
// strictly negative. A value of exactly zero matches neither sign; the
// intersection routines test for zero (point exactly on the line) before
// calling SameSign.
func SameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b, intermediate values interpolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clipSpan clamps the unordered span (a, b) into [lo, hi], preserving the
// order of a and b. Returns false when the span lies entirely outside the
// range.
func clipSpan(a, b, lo, hi float64) (float64, float64, bool) {
	min, max := Order(a, b)
	if max < lo || min > hi {
		return 0, 0, false
	}
	return Clamp(a, lo, hi), Clamp(b, lo, hi), true
}
