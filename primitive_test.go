package rast

import (
	"math"
	"testing"
)

// paintedSet collects the positions a drawing primitive touched.
func paintedSet(pm *Pixmap) map[Position]bool {
	painted := map[Position]bool{}
	for y := 0; y <= pm.Bottom(); y++ {
		for x := 0; x <= pm.Right(); x++ {
			if c, _ := pm.Pixel(Pos(x, y)); c != Transparent {
				painted[Pos(x, y)] = true
			}
		}
	}
	return painted
}

func wantPainted(t *testing.T, pm *Pixmap, want []Position) {
	t.Helper()
	painted := paintedSet(pm)
	for _, pos := range want {
		if !painted[pos] {
			t.Errorf("pixel %v not painted", pos)
		}
		delete(painted, pos)
	}
	for pos := range painted {
		t.Errorf("pixel %v unexpectedly painted", pos)
	}
}

func TestDrawPoint(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawPoint(pm, Solid(Red), Pt(2, 3))
	wantPainted(t, pm, []Position{Pos(2, 3)})
}

func TestDrawSegment(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want []Position
	}{
		{
			name: "diagonal",
			seg:  Seg(Pt(0, 0), Pt(4, 4)),
			want: []Position{Pos(0, 0), Pos(1, 1), Pos(2, 2), Pos(3, 3), Pos(4, 4)},
		},
		{
			name: "horizontal cropped to canvas",
			seg:  Seg(Pt(-4, 2), Pt(8, 2)),
			want: []Position{Pos(0, 2), Pos(1, 2), Pos(2, 2), Pos(3, 2), Pos(4, 2)},
		},
		{
			name: "vertical",
			seg:  Seg(Pt(1, 3), Pt(1, 0)),
			want: []Position{Pos(1, 0), Pos(1, 1), Pos(1, 2), Pos(1, 3)},
		},
		{
			name: "entirely outside paints nothing",
			seg:  Seg(Pt(10, 10), Pt(20, 20)),
			want: nil,
		},
		{
			name: "shallow slope steps along x",
			seg:  Seg(Pt(0, 0), Pt(4, 2)),
			want: []Position{Pos(0, 0), Pos(1, 1), Pos(2, 1), Pos(3, 2), Pos(4, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(5, 5)
			DrawSegment(pm, Solid(Red), tt.seg)
			wantPainted(t, pm, tt.want)
		})
	}
}

func TestDrawSegmentHorizontal(t *testing.T) {
	tests := []struct {
		name string
		pt   Point
		x    float64
		want []Position
	}{
		{
			name: "cropped to canvas",
			pt:   Pt(1, 2),
			x:    7,
			want: []Position{Pos(1, 2), Pos(2, 2), Pos(3, 2), Pos(4, 2)},
		},
		{
			name: "leftward",
			pt:   Pt(3, 0),
			x:    1,
			want: []Position{Pos(1, 0), Pos(2, 0), Pos(3, 0)},
		},
		{
			name: "off row paints nothing",
			pt:   Pt(1, 9),
			x:    3,
			want: nil,
		},
		{
			name: "fully right of canvas paints nothing",
			pt:   Pt(8, 2),
			x:    12,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(5, 5)
			DrawSegmentHorizontal(pm, Solid(Red), tt.pt, tt.x)
			wantPainted(t, pm, tt.want)
		})
	}
}

func TestDrawSegmentVertical(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawSegmentVertical(pm, Solid(Red), Pt(2, -3), 2)
	wantPainted(t, pm, []Position{Pos(2, 0), Pos(2, 1), Pos(2, 2)})
}

func TestDrawSegmentExtended(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawSegmentExtended(pm, Solid(Red), Seg(Pt(1, 1), Pt(2, 2)))
	wantPainted(t, pm, []Position{
		Pos(0, 0), Pos(1, 1), Pos(2, 2), Pos(3, 3), Pos(4, 4),
	})
}

func TestDrawSegmentExtended_Degenerate(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawSegmentExtended(pm, Solid(Red), Seg(Pt(2, 2), Pt(2, 2)))
	wantPainted(t, pm, nil)
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name  string
		pt    Point
		angle float64
		want  []Position
	}{
		{
			name:  "horizontal through row 2",
			pt:    Pt(-10, 2),
			angle: 0,
			want:  []Position{Pos(0, 2), Pos(1, 2), Pos(2, 2), Pos(3, 2), Pos(4, 2)},
		},
		{
			name:  "vertical through column 3",
			pt:    Pt(3, 100),
			angle: math.Pi / 2,
			want:  []Position{Pos(3, 0), Pos(3, 1), Pos(3, 2), Pos(3, 3), Pos(3, 4)},
		},
		{
			name:  "diagonal through origin",
			pt:    Pt(2, 2),
			angle: math.Pi / 4,
			want:  []Position{Pos(0, 0), Pos(1, 1), Pos(2, 2), Pos(3, 3), Pos(4, 4)},
		},
		{
			name:  "misses canvas",
			pt:    Pt(100, 0),
			angle: math.Pi / 4,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(5, 5)
			DrawLine(pm, Solid(Red), tt.pt, tt.angle)
			wantPainted(t, pm, tt.want)
		})
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	pm := NewPixmap(4, 4)
	DrawLineHorizontal(pm, Solid(Red), 1)
	wantPainted(t, pm, []Position{Pos(0, 1), Pos(1, 1), Pos(2, 1), Pos(3, 1)})
}

func TestDrawLineVertical(t *testing.T) {
	pm := NewPixmap(4, 4)
	DrawLineVertical(pm, Solid(Red), 2)
	wantPainted(t, pm, []Position{Pos(2, 0), Pos(2, 1), Pos(2, 2), Pos(2, 3)})
}

func TestDrawRay(t *testing.T) {
	tests := []struct {
		name  string
		from  Point
		angle float64
		want  []Position
	}{
		{
			name:  "rightward from center",
			from:  Pt(2, 2),
			angle: 0,
			want:  []Position{Pos(2, 2), Pos(3, 2), Pos(4, 2)},
		},
		{
			name:  "downward from center",
			from:  Pt(2, 2),
			angle: math.Pi / 2,
			want:  []Position{Pos(2, 2), Pos(2, 3), Pos(2, 4)},
		},
		{
			name:  "pointing away from canvas",
			from:  Pt(10, 2),
			angle: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(5, 5)
			DrawRay(pm, Solid(Red), tt.from, tt.angle)
			wantPainted(t, pm, tt.want)
		})
	}
}

func TestDrawRaySegment(t *testing.T) {
	pm := NewPixmap(5, 5)
	DrawRaySegment(pm, Solid(Red), Pt(0, 0), 0, 10)
	wantPainted(t, pm, []Position{
		Pos(0, 0), Pos(1, 0), Pos(2, 0), Pos(3, 0), Pos(4, 0),
	})
}

func TestDrawNormalSegment(t *testing.T) {
	// Perpendicular to a rightward ray: a vertical bar through the point
	// at distance 0.
	pm := NewPixmap(5, 5)
	DrawNormalSegment(pm, Solid(Red), Pt(2, 2), 0, 0, 4)
	wantPainted(t, pm, []Position{
		Pos(2, 0), Pos(2, 1), Pos(2, 2), Pos(2, 3), Pos(2, 4),
	})
}
