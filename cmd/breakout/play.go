package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/app"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

var (
	flagLives      int
	flagLevel      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing a level pack: the id of a built-in pack (see 'breakout list')
or the path of a .brk file. Without an argument the classic pack is played.

Controls:
  Left/Right/A/D  - Move paddle
  Up/W/X          - Hold to carry the ball, release to launch it
  Space           - Fire (with the gun powerup)
  P/Esc           - Pause
  Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, wider paddle, more lives
  normal - Ball speeds up as you progress
  hard   - Fast start, fewer lives
  fixed  - No speed progression

Examples:
  breakout play
  breakout play challenge --difficulty hard
  breakout play ./MY_PACK.brk --level 3
  breakout play --lives -1`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "Starting lives (0 = from config, -1 = infinite)")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// livesOption converts the --lives flag.
func livesOption(n int) world.Lives {
	switch {
	case n == 0:
		return world.DefaultLives
	case n < 0:
		return world.InfiniteLives
	default:
		return world.Lives(n)
	}
}

// presetAdjust returns a config adjustment for the --difficulty flag, or
// exits on an unknown preset.
func presetAdjust(name string) func(*config.GameConfig) {
	if name == "" {
		return nil
	}
	preset, ok := config.ParseDifficultyPreset(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", name)
		os.Exit(1)
	}
	return func(cfg *config.GameConfig) {
		config.ApplyPreset(cfg, preset)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	packArg := "classic"
	if len(args) > 0 {
		packArg = args[0]
	}

	p, err := resolvePack(packArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available packs.")
		os.Exit(1)
	}

	s := newSession(presetAdjust(flagDifficulty), app.RunOptions{
		StartLevel: flagLevel - 1,
		Lives:      livesOption(flagLives),
	})
	s.setPack(p)
	//nolint:errcheck // The pack was just set
	s.app.Play()
	s.run()
}
