package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores of a pack. The pack is a built-in id, a
pack file or a pack name. Without an argument an interactive scoreboard
lists every pack.

Examples:
  breakout scores
  breakout scores classic
  breakout scores ./MY_PACK.brk
  breakout scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the scores of the pack")
}

// scoreName returns the name scores of the pack arg are stored under.
func scoreName(arg string) string {
	if registry.Exists(arg) {
		if p, err := registry.Create(arg); err == nil {
			return p.Name
		}
	}
	if p, err := levelpack.Load(config.ExpandHome(arg)); err == nil {
		return p.Name
	}
	return arg
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, "", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	pack := scoreName(args[0])

	if flagClearScores {
		if err := store.ClearScores(pack); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores of %s\n", pack)
		return
	}

	scores, err := store.TopScores(pack, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", pack)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play %s' to set the first high score!\n", args[0])
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "Rank", "Score", "Levels", "Done", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "----", "-----", "------", "----", "----")
	for i, entry := range scores {
		done := ""
		if entry.Completed {
			done = "yes"
		}
		fmt.Printf("  %-4d  %-10d  %-6d  %-4s  %s\n",
			i+1, entry.Score, entry.Levels, done, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(pack); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
