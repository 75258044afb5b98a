package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

type run struct {
	pack      string
	score     int
	levels    int
	completed bool
}

func save(t *testing.T, s *Store, runs ...run) {
	t.Helper()
	for _, r := range runs {
		if _, err := s.SaveScore(r.pack, r.score, r.levels, r.completed); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", r, err)
		}
	}
}

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, first, run{"CLASSIC", 120, 2, false})
	first.Close()

	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer second.Close()

	if high, _ := second.HighScore("CLASSIC"); high != 120 {
		t.Errorf("HighScore after reopen = %d, want 120", high)
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store,
		run{"CLASSIC", 100, 1, false},
		run{"CLASSIC", 50, 0, false},
		run{"CLASSIC", 200, 3, false},
		run{"CLASSIC", 200, 6, true},
		run{"MY PACK", 500, 3, true},
	)

	tests := []struct {
		name       string
		pack       string
		limit      int
		wantScores []int
		wantLevels []int
	}{
		{"ordered, ties by age", "CLASSIC", 10, []int{200, 200, 100, 50}, []int{3, 6, 1, 0}},
		{"limited", "CLASSIC", 2, []int{200, 200}, []int{3, 6}},
		{"zero limit means ten", "CLASSIC", 0, []int{200, 200, 100, 50}, []int{3, 6, 1, 0}},
		{"other pack", "MY PACK", 10, []int{500}, []int{3}},
		{"unknown pack", "NOPE", 10, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.TopScores(tc.pack, tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tc.wantScores) {
				t.Fatalf("got %d entries, want %d", len(got), len(tc.wantScores))
			}
			for i, e := range got {
				if e.Score != tc.wantScores[i] || e.Levels != tc.wantLevels[i] {
					t.Errorf("entry %d = %d/%d levels, want %d/%d",
						i, e.Score, e.Levels, tc.wantScores[i], tc.wantLevels[i])
				}
				if e.Pack != tc.pack {
					t.Errorf("entry %d pack = %q", i, e.Pack)
				}
				if e.CreatedAt.IsZero() {
					t.Errorf("entry %d has no timestamp", i)
				}
			}
		})
	}
}

func TestCompletedFlag(t *testing.T) {
	store := openTestStore(t)
	save(t, store, run{"P", 10, 1, false}, run{"P", 20, 4, true})

	got, err := store.TopScores("P", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if !got[0].Completed || got[1].Completed {
		t.Errorf("Completed = %v, %v; want true, false", got[0].Completed, got[1].Completed)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("CLASSIC"); err != nil || high != 0 {
		t.Errorf("empty HighScore() = %d, %v; want 0, nil", high, err)
	}

	save(t, store, run{"CLASSIC", 100, 1, false}, run{"CLASSIC", 300, 2, false}, run{"OTHER", 900, 1, false})

	if high, err := store.HighScore("CLASSIC"); err != nil || high != 300 {
		t.Errorf("HighScore() = %d, %v; want 300, nil", high, err)
	}
}

func TestSummariesAndPacks(t *testing.T) {
	store := openTestStore(t)

	if packs, err := store.Packs(); err != nil || len(packs) != 0 {
		t.Fatalf("empty Packs() = %v, %v", packs, err)
	}

	save(t, store,
		run{"RAINBOW", 10, 1, false},
		run{"CLASSIC", 20, 6, true},
		run{"RAINBOW", 30, 2, true},
		run{"RAINBOW", 5, 0, false},
	)

	sums, err := store.Summaries()
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	want := []PackSummary{
		{Pack: "CLASSIC", Runs: 1, Best: 20, Completions: 1},
		{Pack: "RAINBOW", Runs: 3, Best: 30, Completions: 1},
	}
	if len(sums) != len(want) {
		t.Fatalf("Summaries() = %+v, want %+v", sums, want)
	}
	for i := range want {
		if sums[i] != want[i] {
			t.Errorf("summary %d = %+v, want %+v", i, sums[i], want[i])
		}
	}

	packs, err := store.Packs()
	if err != nil {
		t.Fatalf("Packs() failed: %v", err)
	}
	if len(packs) != 2 || packs[0] != "CLASSIC" || packs[1] != "RAINBOW" {
		t.Errorf("Packs() = %v, want [CLASSIC RAINBOW]", packs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, run{"CLASSIC", 100, 0, false}, run{"CLASSIC", 200, 0, false}, run{"RAINBOW", 300, 0, false})

	if err := store.ClearScores("CLASSIC"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if classic, _ := store.TopScores("CLASSIC", 10); len(classic) != 0 {
		t.Errorf("CLASSIC still has %d scores", len(classic))
	}
	if rainbow, _ := store.TopScores("RAINBOW", 10); len(rainbow) != 1 {
		t.Error("clearing CLASSIC touched RAINBOW")
	}
}
