package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false}, // right edge is exclusive
		{2, 5, false}, // bottom edge is exclusive
		{1, 3, false},
		{3, 2, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(21, 12, 30, 3)
	if r.Right() != 51 || r.Bottom() != 15 {
		t.Errorf("Right, Bottom = %d, %d; want 51, 15", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 36 || y != 13 {
		t.Errorf("Center() = (%d, %d), want (36, 13)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(7, 0, 1); got != 1 {
		t.Errorf("Clamp(7, 0, 1) = %d", got)
	}
	if got := Clamp(-3, 0, 1); got != 0 {
		t.Errorf("Clamp(-3, 0, 1) = %d", got)
	}

	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, -1, 1, 0.5},
		{-2.5, -1, 1, -1},
		{9, 0, 4.25, 4.25},
		{3, 5, 2, 5}, // empty range
	}
	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
