// Package core holds the types shared by the simulation, the editor and the
// terminal platform: vectors and rectangles, the cell screen, colors and
// per-frame input. It imports nothing outside the standard library so the
// game logic stays testable without a terminal.
package core

import "cmp"

// Rect is an axis-aligned rectangle in screen cells. X and Y are the
// top-left cell; Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at (x, y) of size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits v to [lo, hi]. lo wins when the range is empty.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
