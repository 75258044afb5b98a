// breakout is a brick breaker with a built-in level editor, played in the
// terminal.
//
// Usage:
//
//	breakout play [pack]       - Play a built-in pack or a .brk file
//	breakout edit [pack.brk]   - Open the level editor
//	breakout menu              - Start at the main menu
//	breakout list              - List built-in packs and saved pack files
//	breakout info <pack.brk>   - Describe a pack file
//	breakout scores [pack]     - Show high scores
//	breakout serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.breakout/scores.db)
//	--config <path>  - Use a custom game config YAML
//	--packs <dir>    - Directory the editor saves packs to
//	--log <path>     - Log file (default: ~/.breakout/breakout.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	_ "github.com/vovakirdan/tui-breakout/internal/packs" // Register built-in packs
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPackDir string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "TUI Breakout - Break bricks and build levels in your terminal",
	Long: `TUI Breakout is a brick breaker for the terminal with a level editor.
Levels come in packs: a few are built in, and the editor saves your own
as .brk files that can be shared and played by anyone.

Available commands:
  play     - Play a pack directly
  edit     - Open the level editor
  menu     - Start at the main menu
  list     - Show built-in packs and saved pack files
  info     - Describe a pack file
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  breakout play
  breakout play challenge
  breakout play ~/.breakout/packs/MINE.brk
  breakout edit
  breakout serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPackDir, "packs", "", "Directory for saved packs (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.breakout/breakout.log", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config and applies the --packs override.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPackDir != "" {
		cfg.Editor.PackDir = flagPackDir
	}
	return cfg, nil
}

// openLogger returns a logger writing to the --log file. The terminal
// belongs to the game, so a log file that cannot be opened discards logs.
func openLogger() (*log.Logger, io.Closer) {
	path := config.ExpandHome(flagLogPath)
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// openStore opens the score database, or returns nil so the game runs
// without saving scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// resolvePack returns the built-in pack with id arg, or else the pack
// file at path arg.
func resolvePack(arg string) (*levelpack.Pack, error) {
	if registry.Exists(arg) {
		return registry.Create(arg)
	}
	return levelpack.Load(config.ExpandHome(arg))
}
