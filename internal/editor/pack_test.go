package editor

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
)

// named returns a pack whose levels are called "L0", "L1", ...
func named(n int) *Pack {
	p := NewPack(0)
	p.Level().SetName("L0")
	for i := 1; i < n; i++ {
		p.Add()
		p.Level().SetName("L" + string(rune('0'+i)))
	}
	return p
}

func names(p *Pack) []string {
	lp := p.LevelPack()
	out := make([]string, len(lp.Levels))
	for i, l := range lp.Levels {
		out[i] = l.Name()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPackAddInsertsAfterCurrent(t *testing.T) {
	p := named(3)
	p.Prev()
	p.Prev()
	p.Add()

	if p.Current() != 1 {
		t.Errorf("current = %d, want 1", p.Current())
	}
	if got, want := names(p), []string{"L0", "", "L1", "L2"}; !equal(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestPackAddBounded(t *testing.T) {
	p := NewPack(0)
	for range levelpack.MaxLevels + 10 {
		p.Add()
	}
	if p.Count() != levelpack.MaxLevels {
		t.Errorf("count = %d, want %d", p.Count(), levelpack.MaxLevels)
	}
	if p.CanAdd() {
		t.Error("CanAdd should be false at the limit")
	}
}

func TestPackDelete(t *testing.T) {
	tests := []struct {
		name        string
		levels      int
		at          int
		wantNames   []string
		wantCurrent int
	}{
		{"middle", 3, 1, []string{"L0", "L2"}, 1},
		{"last", 3, 2, []string{"L0", "L1"}, 1},
		{"first", 3, 0, []string{"L1", "L2"}, 0},
		{"only level", 1, 0, []string{""}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := named(tt.levels)
			for p.Current() > tt.at {
				p.Prev()
			}
			p.Level().SetTile(0, level.Gold)
			p.Delete()

			if got := names(p); !equal(got, tt.wantNames) {
				t.Errorf("names = %v, want %v", got, tt.wantNames)
			}
			if p.Current() != tt.wantCurrent {
				t.Errorf("current = %d, want %d", p.Current(), tt.wantCurrent)
			}
			if tt.levels == 1 && p.Level().Grid() != level.EmptyGrid() {
				t.Error("deleting the only level should leave a blank one")
			}
		})
	}
}

func TestPackNavigationBounds(t *testing.T) {
	p := named(2)
	if p.CanNext() {
		t.Error("CanNext at last level")
	}
	p.Next()
	if p.Current() != 1 {
		t.Errorf("Next past the end moved to %d", p.Current())
	}
	p.Prev()
	p.Prev()
	if p.Current() != 0 {
		t.Errorf("Prev past the start moved to %d", p.Current())
	}
	if p.CanPrev() || p.CanShiftPrev() {
		t.Error("CanPrev/CanShiftPrev at first level")
	}
}

func TestPackShiftFollowsLevel(t *testing.T) {
	p := named(3)
	p.Prev()
	p.Prev() // at L0

	p.ShiftNext()
	if got, want := names(p), []string{"L1", "L0", "L2"}; !equal(got, want) {
		t.Errorf("after ShiftNext names = %v, want %v", got, want)
	}
	if p.Level().Name() != "L0" || p.Current() != 1 {
		t.Errorf("cursor on %q at %d, want L0 at 1", p.Level().Name(), p.Current())
	}

	p.ShiftNext()
	p.ShiftNext() // no-op at the end
	if got, want := names(p), []string{"L1", "L2", "L0"}; !equal(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}

	p.ShiftPrev()
	if p.Level().Name() != "L0" || p.Current() != 1 {
		t.Errorf("ShiftPrev: cursor on %q at %d", p.Level().Name(), p.Current())
	}
}

func TestPackHistoryPerLevel(t *testing.T) {
	p := NewPack(0)
	p.SavePreviousState()
	p.Level().SetTile(0, level.Red)
	p.PushCurrentState()

	p.Add()
	if p.Timewarp().CanUndo() {
		t.Error("new level should not share history")
	}
	p.Undo()

	p.Prev()
	if tile, _ := p.Level().Tile(0); tile != level.Red {
		t.Errorf("undo on another level changed this one: %v", tile)
	}
	p.Undo()
	if tile, _ := p.Level().Tile(0); tile != level.Air {
		t.Errorf("undo = %v, want Air", tile)
	}
	p.Redo()
	if tile, _ := p.Level().Tile(0); tile != level.Red {
		t.Errorf("redo = %v, want Red", tile)
	}
}

func TestPackClearUndoable(t *testing.T) {
	p := NewPack(0)
	p.Level().SetTile(5, level.Stone)
	p.Clear()
	if !p.Level().Complete() || !p.Timewarp().CanUndo() {
		t.Fatal("clear should empty the level and record history")
	}
	p.Undo()
	if tile, _ := p.Level().Tile(5); tile != level.Stone {
		t.Errorf("tile after undo = %v, want Stone", tile)
	}
}

func TestPackFromLevelPackCopies(t *testing.T) {
	src := levelpack.New("SRC", "ME", []*level.Level{
		level.ParseLevel("ONE", []string{"RRR"}),
		level.ParseLevel("TWO", []string{"BBB"}),
	})
	p := FromLevelPack(src, 0)
	p.Level().SetTile(0, level.Air)

	if tile, _ := src.Levels[0].Tile(0); tile != level.Red {
		t.Error("editing must not change the source pack")
	}
	if p.Name() != "SRC" || p.Author() != "ME" || p.Count() != 2 {
		t.Errorf("got %q/%q with %d levels", p.Name(), p.Author(), p.Count())
	}

	empty := FromLevelPack(&levelpack.Pack{}, 0)
	if empty.Count() != 1 {
		t.Errorf("empty source should give one level, got %d", empty.Count())
	}
}

func TestPackEncodeRoundTrip(t *testing.T) {
	p := named(3)
	p.SetName("pack/one")
	p.SetAuthor("me")
	p.Level().SetTile(10, level.Metal)

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := levelpack.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "PACK/ONE" || got.Author != "ME" {
		t.Errorf("decoded %q/%q", got.Name, got.Author)
	}
	if tile, _ := got.Levels[2].Tile(10); tile != level.Metal {
		t.Errorf("decoded tile = %v, want Metal", tile)
	}
}
