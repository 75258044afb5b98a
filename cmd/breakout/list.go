package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available level packs",
	Long:  `Shows the built-in level packs and the .brk files in the pack directory.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	fmt.Println("Built-in packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Levels")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "------")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-16s  %d\n", maxIDLen, p.ID, p.Title, p.Levels)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dir := config.ExpandHome(cfg.Editor.PackDir)
	paths, err := levelpack.List(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Saved packs (%s):\n", dir)
	fmt.Println()
	if len(paths) == 0 {
		fmt.Println("  none yet - run 'breakout edit' to make one")
	}
	for _, path := range paths {
		p, loadErr := levelpack.Load(path)
		if loadErr != nil {
			fmt.Printf("  %-24s  (unreadable: %v)\n", filepath.Base(path), loadErr)
			continue
		}
		fmt.Printf("  %-24s  %-16s  %d levels\n", filepath.Base(path), p.Name, len(p.Levels))
	}

	fmt.Println()
	fmt.Println("Run 'breakout play <id|file>' to play a pack.")
}
