package app

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gui"
)

// buttonList is a column or row of text buttons that can be driven by the
// mouse or by a keyboard cursor.
type buttonList struct {
	gui    *gui.Gui
	ids    []gui.Id
	cursor int
}

// newButtonList lays out one button per label starting at (x, y). Buttons
// are w×h cells and are stepped by (dx, dy).
func newButtonList(x, y, w, h, dx, dy int, labels ...string) *buttonList {
	l := &buttonList{gui: gui.New()}
	for i, label := range labels {
		id := gui.Id(i + 1)
		r := core.NewRect(x+i*dx, y+i*dy, w, h)
		l.gui.Add(id, gui.NewButton(r, gui.TextDetail{Text: label}))
		l.ids = append(l.ids, id)
	}
	return l
}

// setDisabled greys out the i-th button and moves the cursor off it.
func (l *buttonList) setDisabled(i int, disabled bool) {
	b, _ := l.gui.Button(l.ids[i])
	b.Disabled = disabled
	if disabled && l.cursor == i {
		l.move(1)
	}
}

func (l *buttonList) enabled(i int) bool {
	b, _ := l.gui.Button(l.ids[i])
	return !b.Disabled
}

// move steps the cursor by dir, skipping disabled buttons. The cursor stays
// put when nothing else is enabled.
func (l *buttonList) move(dir int) {
	n := len(l.ids)
	for step := 1; step < n; step++ {
		i := ((l.cursor+dir*step)%n + n) % n
		if l.enabled(i) {
			l.cursor = i
			return
		}
	}
}

// update handles one frame and returns the index of the chosen button, or
// -1 when nothing was chosen.
func (l *buttonList) update(frame core.Frame) int {
	l.gui.Update(frame.Pointer, nil)

	if hot, ok := l.gui.Hot(); ok && (frame.Pointer.LeftPressed || frame.Pointer.LeftReleased) {
		for i, id := range l.ids {
			if id == hot {
				l.cursor = i
			}
		}
	}

	chosen := -1
	for i, id := range l.ids {
		if l.gui.Released(id) {
			chosen = i
		}
	}

	in := frame.Input
	switch {
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		l.move(-1)
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		l.move(1)
	case in.Has(core.ActionConfirm):
		if l.enabled(l.cursor) {
			chosen = l.cursor
		}
	}

	for i, id := range l.ids {
		b, _ := l.gui.Button(id)
		b.Selected = i == l.cursor && !b.Disabled
	}
	return chosen
}

func (l *buttonList) render(dst *core.Screen) {
	l.gui.Render(dst, gui.DefaultStyle)
}
