package gui

import "github.com/vovakirdan/tui-breakout/internal/core"

// State is a button's interaction state for the current frame.
type State int

const (
	StateIdle State = iota
	StateHovered
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateHovered:
		return "Hovered"
	case StateReleased:
		return "Released"
	default:
		return "Idle"
	}
}

// Detail is what a button shows inside its frame: NoDetail, TextDetail or
// IconDetail.
type Detail interface {
	isDetail()
}

// NoDetail draws nothing.
type NoDetail struct{}

// TextDetail draws a centered label.
type TextDetail struct {
	Text string
}

// IconDetail fills the button interior with a glyph in a fixed color.
type IconDetail struct {
	Glyph rune
	Color core.Color
}

func (NoDetail) isDetail()   {}
func (TextDetail) isDetail() {}
func (IconDetail) isDetail() {}

// Style holds the colors buttons are drawn with.
type Style struct {
	Idle     core.Color // frame, idle
	Hover    core.Color // frame, hovered
	Text     core.Color // text detail
	Disabled core.Color // frame and text when disabled
	Selected core.Color // frame when selected
}

// DefaultStyle is the blue scheme used by the editor and menus.
var DefaultStyle = Style{
	Idle:     core.ColorBlue,
	Hover:    core.ColorBrightCyan,
	Text:     core.ColorWhite,
	Disabled: core.ColorDarkGray,
	Selected: core.ColorBrightYellow,
}

// Button is a clickable rectangle in screen cells.
type Button struct {
	Rect     core.Rect
	Detail   Detail
	Disabled bool // greyed out and ignored by Update
	Selected bool // highlighted, e.g. the current palette tile

	state State
}

// NewButton creates an idle button.
func NewButton(r core.Rect, d Detail) *Button {
	if d == nil {
		d = NoDetail{}
	}
	return &Button{Rect: r, Detail: d}
}

// State returns the state computed by the last Update.
func (b *Button) State() State { return b.state }

// Idle reports whether the pointer is elsewhere.
func (b *Button) Idle() bool { return b.state == StateIdle }

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.state == StateHovered }

// Released reports whether the button was clicked this frame.
func (b *Button) Released() bool { return b.state == StateReleased }

// Render draws the button. Buttons at least 3 cells tall get a box frame;
// shorter ones are bracketed.
func (b *Button) Render(dst *core.Screen, s Style) {
	frame := s.Idle
	switch {
	case b.Disabled:
		frame = s.Disabled
	case b.state != StateIdle:
		frame = s.Hover
	case b.Selected:
		frame = s.Selected
	}

	r := b.Rect
	var inner core.Rect
	if r.H >= 3 {
		dst.DrawBoxColor(r, frame)
		inner = core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	} else {
		dst.SetColor(r.X, r.Y, '[', frame)
		dst.SetColor(r.Right()-1, r.Y, ']', frame)
		inner = core.NewRect(r.X+1, r.Y, r.W-2, 1)
	}
	if inner.W <= 0 || inner.H <= 0 {
		return
	}

	switch d := b.Detail.(type) {
	case TextDetail:
		c := s.Text
		if b.Disabled {
			c = s.Disabled
		}
		text := []rune(d.Text)
		if len(text) > inner.W {
			text = text[:inner.W]
		}
		x := inner.X + (inner.W-len(text))/2
		y := inner.Y + (inner.H-1)/2
		dst.DrawTextColor(x, y, string(text), c)
	case IconDetail:
		c := d.Color
		if b.Disabled {
			c = s.Disabled
		}
		dst.DrawRectColor(inner, d.Glyph, c)
	case NoDetail:
	}
}
