// Package app owns the scenes of the game (main menu, play, level editor)
// and switches between them. The host feeds it one core.Frame per tick and
// draws whatever Render produces.
package app

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/editor"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Scene identifies the active scene.
type Scene int

const (
	SceneMenu Scene = iota
	SceneGame
	SceneEditor
)

// String returns the scene name.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "Menu"
	case SceneGame:
		return "Game"
	case SceneEditor:
		return "Editor"
	default:
		return "Unknown"
	}
}

// ErrNoPack is returned when a scene needs a level pack and none is loaded.
var ErrNoPack = errors.New("app: no level pack loaded")

// Options configures an App.
type Options struct {
	Config config.GameConfig
	Logger *log.Logger    // nil discards logs
	Store  *storage.Store // nil disables score saving
	Seed   int64
	Run    RunOptions
}

// App is one player's session.
type App struct {
	cfg    config.GameConfig
	logger *log.Logger
	store  *storage.Store
	seed   int64
	run    RunOptions

	pack  *levelpack.Pack
	scene Scene

	menu   *menuScene
	game   *gameScene
	editor *editor.Editor
}

// New creates an App showing the main menu with no pack loaded.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		cfg:    opts.Config,
		logger: logger,
		store:  opts.Store,
		seed:   opts.Seed,
		run:    opts.Run,
		menu:   newMenuScene(),
	}
}

// Scene returns the active scene.
func (a *App) Scene() Scene { return a.scene }

// Pack returns the loaded pack, or nil.
func (a *App) Pack() *levelpack.Pack { return a.pack }

// SetPack makes p the loaded pack after validating it.
func (a *App) SetPack(p *levelpack.Pack) error {
	if p == nil {
		return ErrNoPack
	}
	if err := p.Validate(); err != nil {
		return err
	}
	a.pack = p
	a.logger.Info("pack loaded", "name", p.Name, "author", p.Author, "levels", len(p.Levels))
	return nil
}

// Play starts a run of the loaded pack.
func (a *App) Play() error {
	if a.pack == nil {
		return ErrNoPack
	}
	a.seed++
	a.game = newGameScene(a.pack, a.cfg, a.logger, a.store, a.seed, a.run)
	a.scene = SceneGame
	return nil
}

// Edit opens the editor on a copy of the loaded pack, or on a blank pack
// when blank is set or nothing is loaded.
func (a *App) Edit(blank bool) {
	capacity := a.cfg.Editor.HistoryCapacity
	p := editor.NewPack(capacity)
	if !blank && a.pack != nil {
		p = editor.FromLevelPack(a.pack, capacity)
	}
	a.editor = editor.New(p, a.cfg, a.logger)
	a.scene = SceneEditor
	a.logger.Debug("editor opened", "pack", p.Name(), "levels", p.Count())
}

func (a *App) toMenu() {
	a.game = nil
	a.editor = nil
	a.scene = SceneMenu
}

// Update advances the active scene by one frame. It returns false when
// the session should end.
func (a *App) Update(frame core.Frame) bool {
	a.handleMessages(frame.Messages)

	if frame.Input.Has(core.ActionQuit) {
		return false
	}

	switch a.scene {
	case SceneMenu:
		switch a.menu.update(frame, a.pack) {
		case menuPlay:
			//nolint:errcheck // PLAY is disabled without a pack
			a.Play()
		case menuEditCurrent:
			a.Edit(false)
		case menuEditNew:
			a.Edit(true)
		case menuQuit:
			return false
		}

	case SceneGame:
		if a.game.update(frame) {
			a.toMenu()
		}

	case SceneEditor:
		if a.editor.Update(frame) == editor.ResultExit {
			a.toMenu()
		}
	}
	return true
}

// handleMessages applies host requests. A pack that cannot be read or
// fails to decode is logged and ignored. A run in progress is abandoned for the new pack; an
// open editor keeps its own copy.
func (a *App) handleMessages(msgs []core.Message) {
	for _, msg := range msgs {
		switch m := msg.(type) {
		case core.LoadPackMessage:
			if m.Err != nil {
				a.logger.Warn("cannot read level pack", "source", m.Source, "error", m.Err)
				continue
			}
			p, err := levelpack.Decode(m.Data)
			if err != nil {
				a.logger.Warn("ignoring level pack", "source", m.Source, "error", err)
				continue
			}
			//nolint:errcheck // Decode only returns valid packs
			a.SetPack(p)
			if a.scene == SceneGame {
				a.toMenu()
			}
		}
	}
}

// Render draws the active scene.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	switch a.scene {
	case SceneMenu:
		a.menu.render(dst, a.pack)
	case SceneGame:
		a.game.render(dst)
	case SceneEditor:
		a.editor.Render(dst)
	}
}
