package rast

import "math"

// Point represents a location in the continuous 2D plane.
//
// Equality between points is exact: no epsilon tolerance is applied
// anywhere in this package. Callers needing approximate comparison must
// layer it themselves.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the componentwise negation of the point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// ClampX returns the point with its x-coordinate restricted to [lo, hi].
func (p Point) ClampX(lo, hi float64) Point {
	return Point{X: Clamp(p.X, lo, hi), Y: p.Y}
}

// ClampY returns the point with its y-coordinate restricted to [lo, hi].
func (p Point) ClampY(lo, hi float64) Point {
	return Point{X: p.X, Y: Clamp(p.Y, lo, hi)}
}

// Position returns the pixel position nearest to the point, rounding half
// away from zero.
func (p Point) Position() Position {
	return Position{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Position represents a location in the discrete pixel plane. It is the
// integer analogue of Point, used where pixel-aligned geometry is required.
type Position struct {
	X, Y int
}

// Pos is a convenience function to create a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the componentwise sum of two positions.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of two positions.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the componentwise negation of the position.
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// Point returns the continuous-plane point at the position.
func (p Position) Point() Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// XOrder returns the pair ordered by ascending x-coordinate.
func XOrder(pair [2]Position) [2]Position {
	if pair[0].X > pair[1].X {
		return [2]Position{pair[1], pair[0]}
	}
	return pair
}

// YOrder returns the pair ordered by ascending y-coordinate.
func YOrder(pair [2]Position) [2]Position {
	if pair[0].Y > pair[1].Y {
		return [2]Position{pair[1], pair[0]}
	}
	return pair
}
