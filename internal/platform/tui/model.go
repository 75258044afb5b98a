package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/app"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one App session.
type Model struct {
	app      *app.App
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	controls *controlTracker
	pointer  *pointerTracker

	// Collected between ticks and handed to the app as one frame.
	input    core.InputFrame
	text     []rune
	messages []core.Message

	initial  []core.Message
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a. The initial messages are delivered on
// the first tick, e.g. a pack to load.
func NewModel(a *app.App, cfg core.RuntimeConfig, initial ...core.Message) Model {
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	// cfg carries the terminal size; the scenes are laid out for the
	// default screen.
	width, height := cfg.ScreenW, cfg.ScreenH
	if width <= 0 || height <= 0 {
		width, height = def.ScreenW, def.ScreenH
	}
	cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH

	return Model{
		app:      a,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		controls: newControlTracker(),
		pointer:  &pointerTracker{},
		input:    core.NewInputFrame(),
		initial:  initial,
		width:    width,
		height:   height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if len(m.initial) == 0 {
		return tickCmd(m.config.TickRate)
	}
	msgs := m.initial
	return tea.Batch(tickCmd(m.config.TickRate), func() tea.Msg {
		return hostMessages(msgs)
	})
}

// hostMessages carries host requests into the update loop.
type hostMessages []core.Message

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.handle(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case hostMessages:
		m.messages = append(m.messages, msg...)
		return m, nil

	case core.LoadPackMessage:
		m.messages = append(m.messages, msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. A pasted path to a pack file, which
// is what most terminals produce when a file is dropped on them, loads
// that pack.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		path := strings.Trim(strings.TrimSpace(string(msg.Runes)), `'"`)
		if strings.EqualFold(filepath.Ext(path), levelpack.Ext) {
			return m, readPackCmd(path)
		}
	}

	if key.Matches(msg, m.keys.Snapshot) {
		m.saveScreenshot()
		return m, nil
	}

	actions := m.keys.MapKey(msg)
	for _, a := range actions {
		m.input.Set(a)
		if a == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	m.controls.press(actions, time.Now())
	m.text = append(m.text, typedRunes(msg)...)
	return m, nil
}

// readPackCmd reads a pack file off the update loop. Decoding is left to
// the app, which logs and ignores bad data and read errors.
func readPackCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return core.LoadPackMessage{Data: data, Source: path, Err: err}
	}
}

// handleTick runs one frame of the app.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.Frame{
		Delta:    m.config.TickDelta(),
		Input:    m.input,
		Controls: m.controls.controls(now),
		Pointer:  m.pointer.frame(),
		Text:     m.text,
		Messages: m.messages,
	}
	m.input = core.NewInputFrame()
	m.text = nil
	m.messages = nil

	if !m.app.Update(frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.app.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", strings.ToLower(m.app.Scene().String()), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < m.screen.Width() || m.height < m.screen.Height() {
		return fmt.Sprintf("Window too small\nNeed %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height(), m.width, m.height)
	}

	m.app.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.height > m.screen.Height() {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts the Bubble Tea program for a on the local terminal.
func Run(a *app.App, cfg core.RuntimeConfig, initial ...core.Message) error {
	model := NewModel(a, cfg, initial...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button
	)

	_, err := p.Run()
	return err
}
