package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/app"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var menuCmd = &cobra.Command{
	Use:   "menu [pack]",
	Short: "Start at the main menu",
	Long: `Start at the main menu, optionally with a pack loaded.

A .brk file dropped onto the terminal window is loaded as the current pack.

Examples:
  breakout menu
  breakout menu challenge
  breakout menu ./MY_PACK.brk`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, args []string) {
	s := newSession(nil, app.RunOptions{Lives: livesOption(0)})

	if len(args) == 0 {
		s.run()
		return
	}

	// Pack files go through the same path as a dropped file.
	if data, err := os.ReadFile(args[0]); err == nil {
		s.run(core.LoadPackMessage{Data: data, Source: args[0]})
		return
	}
	p, err := resolvePack(args[0])
	if err != nil {
		s.cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s.setPack(p)
	s.run()
}
