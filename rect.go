package rast

// Rect is an axis-aligned rectangle given by its boundary coordinates.
// Invariant: Left <= Right and Top <= Bottom.
//
// Containment is closed on all four edges: a point exactly on the boundary
// is inside. The whole package applies this convention uniformly, including
// the clipping routines and the canvas helpers.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether the point lies within the rectangle's closed
// bounds.
func (r Rect) Contains(pt Point) bool {
	return r.ContainsX(pt.X) && r.ContainsY(pt.Y)
}

// ContainsX reports whether x lies within [Left, Right].
func (r Rect) ContainsX(x float64) bool {
	return x >= r.Left && x <= r.Right
}

// ContainsY reports whether y lies within [Top, Bottom].
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Top && y <= r.Bottom
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Expand returns the rectangle grown outward by dx on the left and right
// and dy on the top and bottom.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left - dx,
		Top:    r.Top - dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Edges returns the rectangle's four boundary segments in fixed order:
// top, left, right, bottom. Adjacent edges share their corner endpoints.
func (r Rect) Edges() [4]Segment {
	return [4]Segment{
		{Point{r.Left, r.Top}, Point{r.Right, r.Top}},       // top
		{Point{r.Left, r.Top}, Point{r.Left, r.Bottom}},     // left
		{Point{r.Right, r.Top}, Point{r.Right, r.Bottom}},   // right
		{Point{r.Left, r.Bottom}, Point{r.Right, r.Bottom}}, // bottom
	}
}
