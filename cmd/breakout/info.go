package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/level"
)

var infoCmd = &cobra.Command{
	Use:   "info <pack>",
	Short: "Describe a level pack",
	Long: `Decode a pack file (or a built-in pack) and print its name, author and a
summary of every level.

Examples:
  breakout info classic
  breakout info ./MY_PACK.brk`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func runInfo(_ *cobra.Command, args []string) {
	p, err := resolvePack(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Name:   %s\n", p.Name)
	fmt.Printf("Author: %s\n", p.Author)
	fmt.Printf("Levels: %d\n", len(p.Levels))
	fmt.Println()

	fmt.Printf("  %-3s  %-16s  %-10s  %s\n", "#", "Name", "Breakable", "Tiles")
	fmt.Printf("  %-3s  %-16s  %-10s  %s\n", "-", "----", "---------", "-----")
	for i, lvl := range p.Levels {
		tiles := 0
		for _, t := range lvl.Grid() {
			if t != level.Air {
				tiles++
			}
		}
		fmt.Printf("  %-3d  %-16s  %-10d  %d\n", i+1, lvl.Name(), lvl.Breakables(), tiles)
	}
}
