// Package gui is a small immediate-mode button model shared by the editor
// and the menus. Each frame the Gui resolves at most one hot (hovered)
// button, remembers which button a press started on (active), and reports
// a release only when the pointer comes up over that same button.
package gui

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Id identifies a button. Ids are chosen by the owner and stay stable.
type Id uint32

// Gui holds a set of buttons in a fixed iteration order.
type Gui struct {
	buttons *intmap.Map[Id, *Button]
	order   []Id

	hot, active       Id
	hasHot, hasActive bool
}

// New creates an empty Gui.
func New() *Gui {
	return &Gui{buttons: intmap.New[Id, *Button](32)}
}

// Add registers b under id. Re-adding an id replaces the button but keeps
// its place in the iteration order.
func (g *Gui) Add(id Id, b *Button) *Button {
	if !g.buttons.Has(id) {
		g.order = append(g.order, id)
	}
	g.buttons.Put(id, b)
	return b
}

// Remove drops a button.
func (g *Gui) Remove(id Id) {
	if !g.buttons.Del(id) {
		return
	}
	g.order = slices.DeleteFunc(g.order, func(o Id) bool { return o == id })
	if g.hasHot && g.hot == id {
		g.hasHot = false
	}
	if g.hasActive && g.active == id {
		g.hasActive = false
	}
}

// Button returns the button registered under id.
func (g *Gui) Button(id Id) (*Button, bool) {
	return g.buttons.Get(id)
}

// Ids returns the button ids in iteration order.
func (g *Gui) Ids() []Id {
	return slices.Clone(g.order)
}

// Len returns the number of buttons.
func (g *Gui) Len() int {
	return g.buttons.Len()
}

// Hot returns the hovered button id.
func (g *Gui) Hot() (Id, bool) {
	return g.hot, g.hasHot
}

// Active returns the id of the button the current press started on.
func (g *Gui) Active() (Id, bool) {
	return g.active, g.hasActive
}

// Released reports whether the button was clicked this frame.
func (g *Gui) Released(id Id) bool {
	b, ok := g.buttons.Get(id)
	return ok && b.Released()
}

// Hovered reports whether the pointer is over the button this frame.
func (g *Gui) Hovered(id Id) bool {
	b, ok := g.buttons.Get(id)
	return ok && b.state != StateIdle
}

// Update resolves hot, active and released state for this frame. When only
// is non-nil, buttons outside it are ignored and lose any active press.
func (g *Gui) Update(p core.Pointer, only []Id) {
	g.hasHot = false
	if p.LeftPressed {
		g.hasActive = false
	}

	for _, id := range g.order {
		b, _ := g.buttons.Get(id)
		b.state = StateIdle

		if b.Disabled || (only != nil && !slices.Contains(only, id)) {
			if g.hasActive && g.active == id {
				g.hasActive = false
			}
			continue
		}

		if p.Valid && !g.hasHot && b.Rect.Contains(p.X, p.Y) {
			b.state = StateHovered
			g.hot, g.hasHot = id, true
		}
		isHot := g.hasHot && g.hot == id
		if p.LeftPressed && isHot {
			g.active, g.hasActive = id, true
		}
		if p.LeftReleased && isHot && g.hasActive && g.active == id {
			b.state = StateReleased
		}
	}

	if p.LeftReleased {
		g.hasActive = false
	}
}

// Render draws every button in iteration order.
func (g *Gui) Render(dst *core.Screen, style Style) {
	for _, id := range g.order {
		b, _ := g.buttons.Get(id)
		b.Render(dst, style)
	}
}
