package gui

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// TextField edits a short uppercase name. It accepts only characters the
// level name charset allows and never grows past Max.
type TextField struct {
	X, Y  int    // position of the first character
	Label string // drawn right-aligned before the field
	Text  string
	Max   int
}

// NewTextField creates a field bounded by level.NameLen.
func NewTextField(x, y int, label, text string) *TextField {
	return &TextField{X: x, Y: y, Label: label, Text: level.SanitizeName(text), Max: level.NameLen}
}

// Update applies this frame's typed characters and editing keys. It
// returns true when Enter was pressed.
func (f *TextField) Update(frame core.Frame) bool {
	text := []rune(f.Text)
	for _, r := range frame.Text {
		r = unicode.ToUpper(r)
		if level.ValidChar(r) && len(text) < f.Max {
			text = append(text, r)
		}
	}
	if frame.Input.Has(core.ActionBackspace) && len(text) > 0 {
		text = text[:len(text)-1]
	}
	f.Text = string(text)
	return frame.Input.Has(core.ActionConfirm)
}

// Rect returns the cells the field occupies, label excluded.
func (f *TextField) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.Max, 1)
}

// Render draws label, text and underscores for the unused length. A focused
// field shows a cursor.
func (f *TextField) Render(dst *core.Screen, focused bool) {
	labelColor := core.ColorGray
	if focused {
		labelColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(f.X-len([]rune(f.Label))-1, f.Y, f.Label, labelColor)

	n := len([]rune(f.Text))
	dst.DrawTextColor(f.X, f.Y, f.Text, core.ColorWhite)
	if pad := f.Max - n; pad > 0 {
		dst.DrawTextColor(f.X+n, f.Y, strings.Repeat("_", pad), core.ColorDarkGray)
	}
	if focused && n < f.Max {
		dst.SetColor(f.X+n, f.Y, '█', core.ColorBrightYellow)
	}
}
