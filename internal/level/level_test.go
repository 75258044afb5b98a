package level

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestTileHit(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected Tile
	}{
		{Red, Air},
		{White, Air},
		{Black, Air},
		{Stone, StoneCracked},
		{StoneCracked, Air},
		{Metal, Metal},
		{Gold, Gold},
		{Air, Air},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if got := tc.tile.Hit(); got != tc.expected {
				t.Errorf("Hit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBreakableCount(t *testing.T) {
	n := 0
	for code := uint8(0); code < TileCount; code++ {
		tile, ok := TileFromCode(code)
		if !ok {
			t.Fatalf("TileFromCode(%d) rejected", code)
		}
		if tile.Breakable() {
			n++
		}
	}
	if n != 13 {
		t.Errorf("expected 13 breakable tiles, got %d", n)
	}
	if _, ok := TileFromCode(16); ok {
		t.Error("TileFromCode(16) should be rejected")
	}
}

func TestLevelBreak(t *testing.T) {
	l := New()
	l.SetTile(5, Stone)

	if l.Break(5) {
		t.Error("first hit on stone should not clear it")
	}
	if tile, _ := l.Tile(5); tile != StoneCracked {
		t.Errorf("expected StoneCracked, got %v", tile)
	}
	if !l.Break(5) {
		t.Error("second hit on stone should clear it")
	}
	if l.Break(5) {
		t.Error("hitting air should report false")
	}
}

func TestLevelOutOfRange(t *testing.T) {
	l := New()

	for _, i := range []int{-1, Cells, Cells + 100} {
		if _, ok := l.Tile(i); ok {
			t.Errorf("Tile(%d) should be rejected", i)
		}
		if l.SetTile(i, Red) {
			t.Errorf("SetTile(%d) should be rejected", i)
		}
		if l.Break(i) {
			t.Errorf("Break(%d) should be rejected", i)
		}
	}
}

func TestLevelComplete(t *testing.T) {
	l := New()
	if !l.Complete() {
		t.Error("empty level should be complete")
	}

	l.SetTile(0, Metal)
	l.SetTile(1, Gold)
	if !l.Complete() {
		t.Error("level with only unbreakable tiles should be complete")
	}

	l.SetTile(2, Green)
	if l.Complete() {
		t.Error("level with a breakable tile should not be complete")
	}
}

func TestTileGeometry(t *testing.T) {
	if v := ViewSize(); v != core.V(192, 210) {
		t.Errorf("ViewSize() = %v, expected (192, 210)", v)
	}
	if p := TilePos(0); p != core.V(0, 14) {
		t.Errorf("TilePos(0) = %v, expected (0, 14)", p)
	}
	if p := TilePos(17); p != core.V(12, 21) {
		t.Errorf("TilePos(17) = %v, expected (12, 21)", p)
	}

	i, ok := IndexAt(core.V(13, 22))
	if !ok || i != 17 {
		t.Errorf("IndexAt = %d, %v, expected 17, true", i, ok)
	}
	if _, ok := IndexAt(core.V(5, 5)); ok {
		t.Error("IndexAt in the top padding should be rejected")
	}
	if _, ok := IndexAt(core.V(5, 200)); ok {
		t.Error("IndexAt in the bottom padding should be rejected")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"level one", "LEVEL ONE"},
		{"a very long level name", "A VERY LONG LEVE"},
		{"tab\there", "TABHERE"},
		{"what?!", "WHAT?!"},
		{"ünïcode", "NCODE"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := SanitizeName(tc.in); got != tc.expected {
				t.Errorf("SanitizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	l := ParseLevel("test", []string{
		"RRRR",
		"..S.",
		"M..$",
	})

	if l.Name() != "TEST" {
		t.Errorf("Name() = %q, expected TEST", l.Name())
	}
	checks := map[int]Tile{
		0:           Red,
		3:           Red,
		4:           Air,
		Width + 2:   Stone,
		2 * Width:   Metal,
		2*Width + 3: Gold,
		Cells - 1:   Air,
	}
	for i, expected := range checks {
		if got, _ := l.Tile(i); got != expected {
			t.Errorf("Tile(%d) = %v, expected %v", i, got, expected)
		}
	}
	if l.Breakables() != 5 {
		t.Errorf("Breakables() = %d, expected 5", l.Breakables())
	}

	again := ParseLevel("test", strings.Split(l.String(), "\n"))
	if again.Grid() != l.Grid() {
		t.Error("String() should round-trip through ParseLevel")
	}
}
