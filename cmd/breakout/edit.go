package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit [pack]",
	Short: "Open the level editor",
	Long: `Open the level editor on a copy of a pack, or on a blank pack.

Packs are saved to the pack directory (--packs, or editor.pack_dir in the
config) as <NAME>.brk.

Controls:
  Left click      - Paint with the selected tile
  Right click     - Erase
  Ctrl+Z/Ctrl+Y   - Undo/Redo
  Tab             - Switch between the name and author fields
  Esc             - Test the level / stop testing

Examples:
  breakout edit
  breakout edit classic
  breakout edit ~/.breakout/packs/MINE.brk --packs ./packs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func runEdit(_ *cobra.Command, args []string) {
	s := newSession(nil, app.RunOptions{Lives: livesOption(0)})

	if len(args) > 0 {
		p, err := resolvePack(args[0])
		if err != nil {
			s.cleanup()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s.setPack(p)
	}

	s.app.Edit(len(args) == 0)
	s.run()
}
