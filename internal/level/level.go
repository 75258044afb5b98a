package level

import (
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Grid dimensions and geometry, in simulation pixels.
const (
	Width         = 16
	Height        = 22
	Cells         = Width * Height
	PaddingTop    = 2
	PaddingBottom = 6

	TileW   = 11.0
	TileH   = 6.0
	TileGap = 1.0

	// NameLen is the maximum level and pack name length.
	NameLen = 16
)

// Grid is the row-major tile array of a level. It is a value type, so
// assigning a Grid copies it and two Grids compare with ==.
type Grid [Cells]Tile

// EmptyGrid returns a grid filled with Air.
func EmptyGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = Air
	}
	return g
}

// Level is a named tile grid.
type Level struct {
	tiles Grid
	name  string
}

// New creates an empty, unnamed level.
func New() *Level {
	return &Level{tiles: EmptyGrid()}
}

// FromGrid creates a level from an existing grid.
func FromGrid(name string, g Grid) *Level {
	l := &Level{tiles: g}
	l.SetName(name)
	return l
}

// Clone returns an independent copy.
func (l *Level) Clone() *Level {
	c := *l
	return &c
}

// Grid returns a copy of the tiles.
func (l *Level) Grid() Grid {
	return l.tiles
}

// SetGrid replaces all tiles.
func (l *Level) SetGrid(g Grid) {
	l.tiles = g
}

// Tile returns the tile at index i.
func (l *Level) Tile(i int) (Tile, bool) {
	if i < 0 || i >= Cells {
		return Air, false
	}
	return l.tiles[i], true
}

// SetTile stores t at index i. Out-of-range indices are ignored.
func (l *Level) SetTile(i int, t Tile) bool {
	if i < 0 || i >= Cells || int(t) >= TileCount {
		return false
	}
	l.tiles[i] = t
	return true
}

// Break applies one hit to the tile at index i and reports whether the
// tile became Air as a result.
func (l *Level) Break(i int) bool {
	if i < 0 || i >= Cells {
		return false
	}
	t := l.tiles[i]
	if !t.Breakable() {
		return false
	}
	l.tiles[i] = t.Hit()
	return l.tiles[i] == Air
}

// Clear sets every tile to Air and keeps the name.
func (l *Level) Clear() {
	l.tiles = EmptyGrid()
}

// Name returns the level name.
func (l *Level) Name() string {
	return l.name
}

// SetName stores a sanitized name: uppercased, invalid characters dropped,
// truncated to NameLen.
func (l *Level) SetName(name string) {
	l.name = SanitizeName(name)
}

// Breakables counts tiles that can still be broken.
func (l *Level) Breakables() int {
	n := 0
	for _, t := range l.tiles {
		if t.Breakable() {
			n++
		}
	}
	return n
}

// Complete reports whether no breakable tile remains.
func (l *Level) Complete() bool {
	return l.Breakables() == 0
}

// TilePos returns the top-left pixel of the tile at index i.
func TilePos(i int) core.Vec2 {
	x := i % Width
	y := i/Width + PaddingTop
	return core.V(float64(x)*(TileW+TileGap), float64(y)*(TileH+TileGap))
}

// TileRect returns the pixel rectangle of the tile at index i.
func TileRect(i int) core.RectF {
	p := TilePos(i)
	return core.RF(p.X, p.Y, TileW, TileH)
}

// ViewSize returns the playfield size in pixels.
func ViewSize() core.Vec2 {
	return core.V(
		Width*(TileW+TileGap),
		(Height+PaddingTop+PaddingBottom)*(TileH+TileGap),
	)
}

// Index returns the grid index of column x, row y.
func Index(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	return y*Width + x, true
}

// IndexAt returns the index of the tile cell containing pixel p, gaps
// included.
func IndexAt(p core.Vec2) (int, bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, false
	}
	x := int(p.X / (TileW + TileGap))
	y := int(p.Y/(TileH+TileGap)) - PaddingTop
	return Index(x, y)
}

// ParseLevel builds a level from an ASCII map, one string per row.
// Characters:
//
//	'.' = air
//	'W','R','O','Y','G','C','B','P','K','N','L' = colored tiles
//	'S' = stone, 's' = cracked stone
//	'M' = metal, '$' = gold
//
// Unknown characters and cells beyond the map become Air.
func ParseLevel(name string, lines []string) *Level {
	l := New()
	l.SetName(name)
	for row, line := range lines {
		if row >= Height {
			break
		}
		for col := 0; col < len(line) && col < Width; col++ {
			if t, ok := TileFromChar(line[col]); ok {
				i, _ := Index(col, row)
				l.tiles[i] = t
			}
		}
	}
	return l
}

// String renders the grid as an ASCII map, the inverse of ParseLevel.
func (l *Level) String() string {
	var sb strings.Builder
	for row := 0; row < Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Width; col++ {
			sb.WriteByte(charFor(l.tiles[row*Width+col]))
		}
	}
	return sb.String()
}

func charFor(t Tile) byte {
	for ch, tt := range tileChars {
		if tt == t {
			return ch
		}
	}
	return '.'
}
