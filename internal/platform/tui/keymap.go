package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings shared by every scene. A key may trigger
// several actions: up both moves menu cursors and carries balls.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Fire      key.Binding
	Carry     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Pause     key.Binding
	Quit      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Tab       key.Binding
	Backspace key.Binding
	Help      key.Binding
	Snapshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Carry: key.NewBinding(
			key.WithKeys("up", "w", "x"),
			key.WithHelp("↑/w/x", "carry"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/test"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Carry, k.Fire, k.Back, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Carry, k.Fire, k.Pause},
		{k.Up, k.Down, k.Confirm, k.Back},
		{k.Undo, k.Redo, k.Tab, k.Help},
		{k.Snapshot, k.Quit},
	}
}

// actions returns the bindings in the order they map to actions.
func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Fire, core.ActionFire},
		{k.Carry, core.ActionLaunch},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
		{k.Undo, core.ActionUndo},
		{k.Redo, core.ActionRedo},
		{k.Tab, core.ActionTab},
		{k.Backspace, core.ActionBackspace},
		{k.Help, core.ActionHelp},
	}
}

// MapKey translates a key message to every action it triggers.
func (k KeyMap) MapKey(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, a := range k.actions() {
		if key.Matches(msg, a.binding) {
			out = append(out, a.action)
		}
	}
	return out
}

// MapKeyToFrame sets the actions of msg on frame. Returns true if the key
// was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	isQuit := false
	for _, a := range k.MapKey(msg) {
		frame.Set(a)
		if a == core.ActionQuit {
			isQuit = true
		}
	}
	return isQuit
}

// typedRunes returns the printable characters a key message carries.
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}
