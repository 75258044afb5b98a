package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/tui-breakout/internal/app"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

// session bundles what one local game session needs.
type session struct {
	app     *app.App
	runtime core.RuntimeConfig
	cleanup func()
}

// newSession sets up logging, storage and config and creates the app. It
// prints the error and exits on a bad config.
func newSession(adjust func(*config.GameConfig), run app.RunOptions) *session {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if adjust != nil {
		adjust(&cfg)
	}

	logger, logFile := openLogger()
	store := openStore()
	rc := runtimeConfig()

	a := app.New(app.Options{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Seed:   rc.Seed,
		Run:    run,
	})

	return &session{
		app:     a,
		runtime: rc,
		cleanup: func() {
			if store != nil {
				store.Close()
			}
			logFile.Close()
		},
	}
}

// setPack loads p into the session or exits with the validation error.
func (s *session) setPack(p *levelpack.Pack) {
	if err := s.app.SetPack(p); err != nil {
		s.cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run runs the TUI until the player quits.
func (s *session) run(initial ...core.Message) {
	err := tui.Run(s.app, s.runtime, initial...)
	s.cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
