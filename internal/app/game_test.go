package app

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRunCompletesPack(t *testing.T) {
	store := openStore(t)
	a := newTestApp(t, store)
	a.SetPack(goldPack(2))
	if err := a.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}

	a.Update(keyFrame())
	g := a.game
	if g.index != 1 || g.state != statePlaying {
		t.Fatalf("after first frame: level %d, state %d", g.index, g.state)
	}
	if !strings.Contains(render(a), "LEVEL 02/02") {
		t.Error("panel should show the second level")
	}

	a.Update(keyFrame())
	if g.state != stateFinished || !g.completed || g.cleared != 2 {
		t.Fatalf("state %d, completed %v, cleared %d", g.state, g.completed, g.cleared)
	}
	if !strings.Contains(render(a), "LEVEL PACK COMPLETE!") {
		t.Error("result screen missing")
	}

	scores, err := store.TopScores("GOLD RUSH", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || !scores[0].Completed || scores[0].Levels != 2 {
		t.Errorf("scores = %+v, want one completed run of 2 levels", scores)
	}

	a.Update(keyFrame(core.ActionConfirm))
	if a.Scene() != SceneMenu {
		t.Errorf("Enter on the result screen should return to the menu, scene = %v", a.Scene())
	}
}

func TestRunWithoutStore(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetPack(goldPack(1))
	a.Play()
	a.Update(keyFrame())

	if a.game.state != stateFinished {
		t.Fatalf("state = %d, want finished", a.game.state)
	}
	a.Update(keyFrame(core.ActionBack))
	if a.Scene() != SceneMenu {
		t.Errorf("Esc on the result screen should return to the menu, scene = %v", a.Scene())
	}
}

func TestPauseKeys(t *testing.T) {
	for _, action := range []core.Action{core.ActionBack, core.ActionPause} {
		t.Run(action.String(), func(t *testing.T) {
			a := newTestApp(t, nil)
			a.SetPack(testPack())
			a.Play()

			a.Update(keyFrame(action))
			if a.game.state != statePaused {
				t.Fatal("expected paused")
			}
			if !strings.Contains(render(a), "PAUSED") {
				t.Error("pause overlay missing")
			}

			before := a.game.world.Snapshot()
			a.Update(keyFrame(core.ActionLeft))
			after := a.game.world.Snapshot()
			if after.Hash() != before.Hash() {
				t.Error("world should not advance while paused")
			}

			a.Update(keyFrame(action))
			if a.game.state != statePlaying {
				t.Error("second press should resume")
			}
		})
	}
}

func TestPauseMenuButtons(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetPack(testPack())
	a.Play()
	g := a.game

	a.Update(keyFrame(core.ActionBack))
	clickEntry(a, g.pause, pauseResume)
	if g.state != statePlaying {
		t.Fatalf("RESUME should resume, state = %d", g.state)
	}

	a.Update(keyFrame(core.ActionBack))
	clickEntry(a, g.pause, pauseExit)
	if a.Scene() != SceneMenu {
		t.Errorf("EXIT should return to the menu, scene = %v", a.Scene())
	}
}

func TestStartLevelClamped(t *testing.T) {
	tests := []struct {
		start int
		want  int
	}{
		{-3, 0},
		{1, 1},
		{7, 1},
	}

	for _, tt := range tests {
		a := newTestApp(t, nil)
		a.run.StartLevel = tt.start
		a.SetPack(testPack())
		a.Play()
		if a.game.index != tt.want {
			t.Errorf("StartLevel %d: index = %d, want %d", tt.start, a.game.index, tt.want)
		}
	}
}

func TestRunDoesNotTouchLoadedPack(t *testing.T) {
	a := newTestApp(t, nil)
	a.SetPack(goldPack(1))
	p := a.Pack()
	a.Play()

	if a.game.pack.Levels[0] == p.Levels[0] {
		t.Error("a run should play copies of the levels")
	}
}
