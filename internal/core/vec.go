package core

import "math"

// Vec2 is a point or direction in simulation pixel space.
// The y axis grows downward, matching the screen.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector for an angle in radians,
// measured clockwise from +X (because y grows downward).
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle of v in radians, the inverse of FromAngle.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// RectF is an axis-aligned rectangle in simulation pixel space.
type RectF struct {
	X, Y, W, H float64
}

// RF is shorthand for constructing a RectF.
func RF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles share any area.
// Touching edges do not count as overlap.
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside r (right and bottom edges exclusive).
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r translated by d.
func (r RectF) Offset(d Vec2) RectF {
	return RectF{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Pos returns the top-left corner.
func (r RectF) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}
