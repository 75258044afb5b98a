package tui

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/app"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	_ "github.com/vovakirdan/tui-breakout/internal/packs"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	a := app.New(app.Options{Config: config.DefaultGameConfig(), Seed: 1})
	return NewModel(a, core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelDroppedPackFile(t *testing.T) {
	p, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	path, err := levelpack.Save(t.TempDir(), p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	m := newTestModel(t, 80, 40)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("'" + path + "'\n"), Paste: true})
	if cmd == nil {
		t.Fatal("pasting a pack path should read the file")
	}
	msg, ok := cmd().(core.LoadPackMessage)
	if !ok || msg.Source != path || len(msg.Data) == 0 || msg.Err != nil {
		t.Fatalf("read command produced %#v", msg)
	}

	m, _ = step(t, m, msg)
	m, _ = step(t, m, TickMsg(time.Now()))
	if got := m.app.Pack(); got == nil || got.Name != p.Name {
		t.Fatalf("loaded pack = %v, want %q", got, p.Name)
	}
	if !strings.Contains(m.View(), "CLASSIC") {
		t.Error("menu should show the loaded pack")
	}
}

func TestReadPackMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.brk")
	msg, ok := readPackCmd(path)().(core.LoadPackMessage)
	if !ok {
		t.Fatal("read command should produce a LoadPackMessage")
	}
	if !errors.Is(msg.Err, fs.ErrNotExist) {
		t.Errorf("Err = %v, want not-exist", msg.Err)
	}
}

func TestModelInitialMessages(t *testing.T) {
	p, _ := registry.Create("challenge")
	data, err := levelpack.Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	a := app.New(app.Options{Config: config.DefaultGameConfig()})
	m := NewModel(a, core.RuntimeConfig{ScreenW: 80, ScreenH: 40}, core.LoadPackMessage{Data: data, Source: "test"})

	m, _ = step(t, m, hostMessages(m.initial))
	m, _ = step(t, m, TickMsg(time.Now()))
	if a.Pack() == nil || a.Pack().Name != p.Name {
		t.Fatalf("initial pack not loaded: %v", a.Pack())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 80, 40)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatal("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelView(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		want    string
		wantNot string
	}{
		{"too small", 40, 20, "Window too small", "T U I"},
		{"exact fit", 72, 32, "T U I   B R E A K O U T", "ctrl+c"},
		{"room for help", 100, 40, "ctrl+c", "Window too small"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, tc.w, tc.h)
			view := m.View()
			if !strings.Contains(view, tc.want) {
				t.Errorf("view missing %q", tc.want)
			}
			if strings.Contains(view, tc.wantNot) {
				t.Errorf("view should not contain %q", tc.wantNot)
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 40, 20)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 90, Height: 35})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("growing the window should show the game")
	}
}
