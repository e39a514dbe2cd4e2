package rast

import "math"

// AngleKind classifies the orientation of a line.
type AngleKind uint8

const (
	// AngleInvalid marks an angle that is infinite or NaN.
	AngleInvalid AngleKind = iota

	// AngleHorizontal marks a line parallel to the x-axis.
	AngleHorizontal

	// AngleVertical marks a line parallel to the y-axis.
	AngleVertical

	// AngleNormal marks a line that is neither horizontal nor vertical.
	AngleNormal
)

// AngleType is the classification of a line's slope angle. The generic line
// equation y = m*x + y0 diverges exactly at the horizontal and vertical
// cases (zero slope, zero run), so callers branch on the classification
// instead of computing a slope and checking it for infinities.
type AngleType struct {
	Kind AngleKind

	// Theta is the angle shifted into [0, 2π). Valid only for AngleNormal.
	Theta float64
}

// AngleShift wraps the given angle into the half-open range [base, base+2π),
// adding whole turns to values below base.
func AngleShift(v, base float64) float64 {
	const wrap = 2 * math.Pi
	if v < base {
		return base - math.Mod(base-v, wrap) + wrap
	}
	return base + math.Mod(v-base, wrap)
}

// ClassifyAngle classifies the given slope angle in radians.
//
// An infinite or NaN angle is AngleInvalid. An angle of exactly 0 is
// AngleHorizontal. Otherwise the angle is shifted into [0, 2π) and
// classified as AngleVertical if it equals π/2 exactly, or AngleNormal
// carrying the shifted angle.
func ClassifyAngle(angle float64) AngleType {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return AngleType{Kind: AngleInvalid}
	}
	if angle == 0 {
		return AngleType{Kind: AngleHorizontal}
	}

	shifted := AngleShift(angle, 0)
	if shifted == 0.5*math.Pi {
		return AngleType{Kind: AngleVertical}
	}
	return AngleType{Kind: AngleNormal, Theta: shifted}
}
