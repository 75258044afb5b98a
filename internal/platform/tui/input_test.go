package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.press(core.ActionLeft, t0)
	if !h.held(core.ActionLeft, t0.Add(400*time.Millisecond)) {
		t.Error("key should be held during the first window")
	}
	if h.held(core.ActionLeft, t0.Add(600*time.Millisecond)) {
		t.Error("key should be released after the first window")
	}

	// Auto-repeat keeps the key held with the shorter window.
	h.press(core.ActionLeft, t0)
	h.press(core.ActionLeft, t0.Add(50*time.Millisecond))
	if !h.held(core.ActionLeft, t0.Add(140*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}
	if h.held(core.ActionLeft, t0.Add(160*time.Millisecond)) {
		t.Error("repeat window should be short")
	}
}

func TestHoldTrackerOpposites(t *testing.T) {
	h := newHoldTracker(time.Second, time.Second)
	t0 := time.Unix(0, 0)

	h.press(core.ActionLeft, t0)
	h.press(core.ActionRight, t0.Add(time.Millisecond))

	now := t0.Add(2 * time.Millisecond)
	if h.held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestControlTrackerCarryRelease(t *testing.T) {
	c := newControlTracker()
	t0 := time.Unix(0, 0)

	c.press([]core.Action{core.ActionUp, core.ActionLaunch}, t0)
	ctl := c.controls(t0.Add(10 * time.Millisecond))
	if !ctl.CarryHeld || ctl.CarryReleased {
		t.Fatalf("while held: %+v", ctl)
	}

	late := t0.Add(time.Second)
	ctl = c.controls(late)
	if ctl.CarryHeld || !ctl.CarryReleased {
		t.Fatalf("after release: %+v", ctl)
	}
	if ctl = c.controls(late); ctl.CarryReleased {
		t.Error("CarryReleased should only be set for one frame")
	}
}

func TestPointerTracker(t *testing.T) {
	var p pointerTracker

	p.handle(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	got := p.frame()
	if !got.Valid || got.X != 3 || got.Y != 4 || !got.LeftDown || !got.LeftPressed {
		t.Fatalf("press frame = %+v", got)
	}
	if got = p.frame(); !got.LeftDown || got.LeftPressed {
		t.Fatalf("held frame = %+v", got)
	}

	// Terminals that do not report which button came up.
	p.handle(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	got = p.frame()
	if got.LeftDown || !got.LeftReleased || got.RightReleased {
		t.Fatalf("release frame = %+v", got)
	}

	p.handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	p.handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})
	got = p.frame()
	if !got.RightPressed || !got.RightReleased || got.RightDown {
		t.Fatalf("click within one tick = %+v", got)
	}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"w moves up and carries", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, []core.Action{core.ActionUp, core.ActionLaunch}},
		{"x carries", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, []core.Action{core.ActionLaunch}},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionFire}},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, []core.Action{core.ActionBack}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, []core.Action{core.ActionUndo}},
		{"plain letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); !slices.Equal(got, tc.want) {
				t.Errorf("MapKey() = %v, want %v", got, tc.want)
			}
		})
	}

	frame := core.NewInputFrame()
	if !keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) || !frame.Has(core.ActionQuit) {
		t.Error("ctrl+c should be reported as quit")
	}
}

func TestTypedRunes(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, "a"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, " "},
		{"paste is not typing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pack.brk"), Paste: true}, ""},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ""},
	}

	for _, tc := range tests {
		if got := string(typedRunes(tc.msg)); got != tc.want {
			t.Errorf("%s: typedRunes() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
