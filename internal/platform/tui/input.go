package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Terminals report key presses and auto-repeats but no releases. A key is
// treated as held until a window after its last press; the first window
// covers the auto-repeat delay.
const (
	firstHold  = 500 * time.Millisecond
	repeatHold = 120 * time.Millisecond
)

// opposites release each other on press, so direction changes are instant.
var opposites = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// holdTracker derives held keys from a stream of presses.
type holdTracker struct {
	first, repeat time.Duration
	until         map[core.Action]time.Time
}

func newHoldTracker(first, repeat time.Duration) *holdTracker {
	return &holdTracker{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Action]time.Time),
	}
}

func (h *holdTracker) press(a core.Action, now time.Time) {
	window := h.first
	if h.held(a, now) {
		window = h.repeat
	}
	h.until[a] = now.Add(window)
	if o, ok := opposites[a]; ok {
		delete(h.until, o)
	}
}

func (h *holdTracker) held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// controlTracker builds the per-frame core.Controls.
type controlTracker struct {
	keys      *holdTracker
	carryHeld bool
}

func newControlTracker() *controlTracker {
	return &controlTracker{keys: newHoldTracker(firstHold, repeatHold)}
}

// press records every action triggered by a key.
func (c *controlTracker) press(actions []core.Action, now time.Time) {
	for _, a := range actions {
		c.keys.press(a, now)
	}
}

// controls samples the held state at now. CarryReleased is set on the
// first frame the carry key is no longer held.
func (c *controlTracker) controls(now time.Time) core.Controls {
	ctl := core.Controls{
		Left:      c.keys.held(core.ActionLeft, now),
		Right:     c.keys.held(core.ActionRight, now),
		Fire:      c.keys.held(core.ActionFire, now),
		CarryHeld: c.keys.held(core.ActionLaunch, now),
	}
	ctl.CarryReleased = c.carryHeld && !ctl.CarryHeld
	c.carryHeld = ctl.CarryHeld
	return ctl
}

// pointerTracker accumulates mouse events between ticks.
type pointerTracker struct {
	cur core.Pointer
}

func (t *pointerTracker) handle(msg tea.MouseMsg) {
	t.cur.X, t.cur.Y, t.cur.Valid = msg.X, msg.Y, true

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			t.cur.LeftDown, t.cur.LeftPressed = true, true
		case tea.MouseButtonRight:
			t.cur.RightDown, t.cur.RightPressed = true, true
		}
	case tea.MouseActionRelease:
		// Some terminals do not say which button came up.
		none := msg.Button == tea.MouseButtonNone
		if msg.Button == tea.MouseButtonLeft || (none && t.cur.LeftDown) {
			t.cur.LeftDown, t.cur.LeftReleased = false, true
		}
		if msg.Button == tea.MouseButtonRight || (none && t.cur.RightDown) {
			t.cur.RightDown, t.cur.RightReleased = false, true
		}
	}
}

// frame returns the pointer for this tick and clears the edge flags.
func (t *pointerTracker) frame() core.Pointer {
	p := t.cur
	t.cur.LeftPressed, t.cur.LeftReleased = false, false
	t.cur.RightPressed, t.cur.RightReleased = false, false
	return p
}
