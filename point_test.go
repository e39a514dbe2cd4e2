package rast

import "testing"

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, -2), Pt(1, 5)

	if got := p.Add(q); got != Pt(4, 3) {
		t.Errorf("Add = %v, want %v", got, Pt(4, 3))
	}
	if got := p.Sub(q); got != Pt(2, -7) {
		t.Errorf("Sub = %v, want %v", got, Pt(2, -7))
	}
	if got := p.Neg(); got != Pt(-3, 2) {
		t.Errorf("Neg = %v, want %v", got, Pt(-3, 2))
	}
}

func TestPointClamp(t *testing.T) {
	p := Pt(15, -3)

	if got := p.ClampX(0, 10); got != Pt(10, -3) {
		t.Errorf("ClampX = %v, want %v", got, Pt(10, -3))
	}
	if got := p.ClampY(0, 10); got != Pt(15, 0) {
		t.Errorf("ClampY = %v, want %v", got, Pt(15, 0))
	}
}

func TestPointPosition(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Position
	}{
		{name: "exact", p: Pt(3, 4), want: Pos(3, 4)},
		{name: "rounds down", p: Pt(3.4, 4.4), want: Pos(3, 4)},
		{name: "half away from zero", p: Pt(3.5, -3.5), want: Pos(4, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Position(); got != tt.want {
				t.Errorf("%v.Position() = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPositionArithmetic(t *testing.T) {
	p, q := Pos(3, -2), Pos(1, 5)

	if got := p.Add(q); got != Pos(4, 3) {
		t.Errorf("Add = %v, want %v", got, Pos(4, 3))
	}
	if got := p.Sub(q); got != Pos(2, -7) {
		t.Errorf("Sub = %v, want %v", got, Pos(2, -7))
	}
	if got := p.Neg(); got != Pos(-3, 2) {
		t.Errorf("Neg = %v, want %v", got, Pos(-3, 2))
	}
	if got := p.Point(); got != Pt(3, -2) {
		t.Errorf("Point = %v, want %v", got, Pt(3, -2))
	}
}

func TestPositionOrder(t *testing.T) {
	a, b := Pos(5, 1), Pos(2, 9)

	if got := XOrder([2]Position{a, b}); got != [2]Position{b, a} {
		t.Errorf("XOrder = %v, want swapped", got)
	}
	if got := XOrder([2]Position{b, a}); got != [2]Position{b, a} {
		t.Errorf("XOrder of ordered pair = %v, want unchanged", got)
	}
	if got := YOrder([2]Position{a, b}); got != [2]Position{a, b} {
		t.Errorf("YOrder of ordered pair = %v, want unchanged", got)
	}
	if got := YOrder([2]Position{b, a}); got != [2]Position{a, b} {
		t.Errorf("YOrder = %v, want swapped", got)
	}
}

func TestSegmentOrdered(t *testing.T) {
	s := Seg(Pt(5, 1), Pt(2, 9))

	if got := s.XOrdered(); got != Seg(Pt(2, 9), Pt(5, 1)) {
		t.Errorf("XOrdered = %v, want swapped", got)
	}
	if got := s.YOrdered(); got != s {
		t.Errorf("YOrdered = %v, want unchanged", got)
	}

	// Ties keep the original order.
	tie := Seg(Pt(3, 7), Pt(3, 2))
	if got := tie.XOrdered(); got != tie {
		t.Errorf("XOrdered tie = %v, want unchanged", got)
	}
}

func TestSegmentDegenerate(t *testing.T) {
	if !Seg(Pt(1, 2), Pt(1, 2)).Degenerate() {
		t.Error("equal endpoints must be degenerate")
	}
	if Seg(Pt(1, 2), Pt(1, 3)).Degenerate() {
		t.Error("distinct endpoints must not be degenerate")
	}
}

func TestSegmentLerp(t *testing.T) {
	s := Seg(Pt(0, 10), Pt(10, 30))

	if got := s.Lerp(0); got != Pt(0, 10) {
		t.Errorf("Lerp(0) = %v, want first endpoint", got)
	}
	if got := s.Lerp(1); got != Pt(10, 30) {
		t.Errorf("Lerp(1) = %v, want second endpoint", got)
	}
	if got := s.Lerp(0.5); got != Pt(5, 20) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, Pt(5, 20))
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior", p: Pt(5, 5), want: true},
		{name: "on left edge", p: Pt(0, 5), want: true},
		{name: "on right edge", p: Pt(10, 5), want: true},
		{name: "on corner", p: Pt(10, 20), want: true},
		{name: "left of rect", p: Pt(-0.001, 5), want: false},
		{name: "below rect", p: Pt(5, 20.001), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{Left: 2, Top: 3, Right: 12, Bottom: 23}

	if got := r.Width(); got != 10 {
		t.Errorf("Width = %v, want 10", got)
	}
	if got := r.Height(); got != 20 {
		t.Errorf("Height = %v, want 20", got)
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{Left: 2, Top: 3, Right: 12, Bottom: 23}
	want := Rect{Left: 1, Top: 0.5, Right: 13, Bottom: 25.5}

	if got := r.Expand(1, 2.5); got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 20}
	edges := r.Edges()

	want := [4]Segment{
		Seg(Pt(0, 0), Pt(10, 0)),
		Seg(Pt(0, 0), Pt(0, 20)),
		Seg(Pt(10, 0), Pt(10, 20)),
		Seg(Pt(0, 20), Pt(10, 20)),
	}
	if edges != want {
		t.Errorf("Edges = %v, want %v", edges, want)
	}
}
