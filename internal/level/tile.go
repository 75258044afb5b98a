// Package level defines tiles, the fixed-size level grid and its geometry.
package level

import "github.com/vovakirdan/tui-breakout/internal/core"

// Tile is one cell of a level grid. The numeric value is the 4-bit code
// used by the pack file format, so the order must not change.
type Tile uint8

const (
	White Tile = iota
	Red
	Orange
	Yellow
	Green
	Cyan
	Blue
	Purple
	Pink
	Brown
	Black
	Stone
	StoneCracked
	Metal
	Gold
	Air
)

// TileCount is the number of distinct tiles.
const TileCount = 16

var tileNames = [TileCount]string{
	"White", "Red", "Orange", "Yellow", "Green", "Cyan", "Blue", "Purple",
	"Pink", "Brown", "Black", "Stone", "StoneCracked", "Metal", "Gold", "Air",
}

// String returns the tile name.
func (t Tile) String() string {
	if int(t) < TileCount {
		return tileNames[t]
	}
	return "Unknown"
}

// TileFromCode converts a 4-bit code to a Tile.
func TileFromCode(code uint8) (Tile, bool) {
	if code >= TileCount {
		return Air, false
	}
	return Tile(code), true
}

// Breakable reports whether a ball or bullet can damage the tile.
func (t Tile) Breakable() bool {
	switch t {
	case Air, Metal, Gold:
		return false
	}
	return t < TileCount
}

// Hit returns the tile left after one hit.
// Stone cracks first; every other breakable tile turns into Air.
func (t Tile) Hit() Tile {
	switch {
	case !t.Breakable():
		return t
	case t == Stone:
		return StoneCracked
	default:
		return Air
	}
}

// Color returns the terminal color used to draw the tile.
func (t Tile) Color() core.Color {
	switch t {
	case White:
		return core.ColorBrightWhite
	case Red:
		return core.ColorBrightRed
	case Orange:
		return core.ColorOrange
	case Yellow:
		return core.ColorBrightYellow
	case Green:
		return core.ColorBrightGreen
	case Cyan:
		return core.ColorBrightCyan
	case Blue:
		return core.ColorBrightBlue
	case Purple:
		return core.ColorMagenta
	case Pink:
		return core.ColorPink
	case Brown:
		return core.ColorBrown
	case Black:
		return core.ColorBlack
	case Stone, StoneCracked:
		return core.ColorGray
	case Metal:
		return core.ColorSilver
	case Gold:
		return core.ColorGold
	}
	return core.ColorDefault
}

// Glyph returns the character a tile is drawn with.
func (t Tile) Glyph() rune {
	switch t {
	case Air:
		return ' '
	case Stone:
		return '▓'
	case StoneCracked:
		return '▒'
	case Metal, Gold:
		return '■'
	}
	return '█'
}

// tileChars maps ASCII level map characters to tiles.
var tileChars = map[byte]Tile{
	'.': Air,
	'W': White,
	'R': Red,
	'O': Orange,
	'Y': Yellow,
	'G': Green,
	'C': Cyan,
	'B': Blue,
	'P': Purple,
	'K': Pink,
	'N': Brown,
	'L': Black,
	'S': Stone,
	's': StoneCracked,
	'M': Metal,
	'$': Gold,
}

// TileFromChar returns the tile for an ASCII level map character.
func TileFromChar(ch byte) (Tile, bool) {
	t, ok := tileChars[ch]
	return t, ok
}
