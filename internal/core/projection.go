package core

import "math"

// The simulation runs in pixel space; the terminal shows it on a character
// grid where one cell covers CellW×CellH pixels.
const (
	CellW = 4
	CellH = 7
)

// ToCell returns the cell containing pixel position p.
func ToCell(p Vec2) (int, int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}

// CellCenter returns the pixel-space centre of cell (x, y).
func CellCenter(x, y int) Vec2 {
	return Vec2{X: (float64(x) + 0.5) * CellW, Y: (float64(y) + 0.5) * CellH}
}

// CellRect converts a pixel rectangle to the cells it covers.
// Any rectangle with positive area covers at least one cell.
func CellRect(r RectF) Rect {
	x0, y0 := ToCell(r.Pos())
	x1 := int(math.Ceil(r.Right() / CellW))
	y1 := int(math.Ceil(r.Bottom() / CellH))
	return Rect{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}
