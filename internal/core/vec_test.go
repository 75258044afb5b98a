package core

import (
	"math"
	"testing"
)

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RF(0, 0, 10, 10), RF(5, 5, 10, 10), true},
		{"touching edges", RF(0, 0, 10, 10), RF(10, 0, 10, 10), false},
		{"apart", RF(0, 0, 4, 4), RF(20, 20, 4, 4), false},
		{"thin sliver", RF(0, 0, 20, 0.01), RF(5, -2, 4, 4), true},
		{"contained", RF(0, 0, 20, 20), RF(5, 5, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() not symmetric: %v", got)
			}
		})
	}
}

func TestVecAngleRoundTrip(t *testing.T) {
	for _, deg := range []float64{-170, -90, -45, 0, 30, 120} {
		rad := deg * math.Pi / 180
		v := FromAngle(rad)
		if math.Abs(v.Len()-1) > 1e-9 {
			t.Errorf("FromAngle(%v) length = %v, expected 1", deg, v.Len())
		}
		if math.Abs(v.Angle()-rad) > 1e-9 {
			t.Errorf("Angle() = %v, expected %v", v.Angle(), rad)
		}
	}
}

func TestProjection(t *testing.T) {
	x, y := ToCell(V(191.9, 209.9))
	if x != 47 || y != 29 {
		t.Errorf("ToCell = (%d, %d), expected (47, 29)", x, y)
	}

	c := CellCenter(3, 2)
	if cx, cy := ToCell(c); cx != 3 || cy != 2 {
		t.Errorf("CellCenter does not map back: (%d, %d)", cx, cy)
	}

	// A 12×7 tile at (12, 14) covers three columns of one row.
	r := CellRect(RF(12, 14, 11, 6))
	if r != NewRect(3, 2, 3, 1) {
		t.Errorf("CellRect = %+v", r)
	}

	// Tiny rectangles still cover a cell.
	r = CellRect(RF(5, 5, 0.5, 0.5))
	if r.W != 1 || r.H != 1 {
		t.Errorf("CellRect of tiny rect = %+v", r)
	}
}
