// Package packs holds the level packs that ship with the game.
// Importing it registers them with the registry.
package packs

import (
	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Author is credited on every built-in pack.
const Author = "TUI BREAKOUT"

// levelMap is an ASCII level in the format accepted by level.ParseLevel.
type levelMap struct {
	name  string
	lines []string
}

type packDef struct {
	id     string
	name   string
	levels []levelMap
}

var builtin = []packDef{
	{"classic", "CLASSIC", classicLevels},
	{"challenge", "CHALLENGE", challengeLevels},
}

// build parses every map of the pack. Levels are fresh on each call.
func (d packDef) build() *levelpack.Pack {
	levels := make([]*level.Level, len(d.levels))
	for i, m := range d.levels {
		levels[i] = level.ParseLevel(m.name, m.lines)
	}
	return levelpack.New(d.name, Author, levels)
}

func init() {
	for _, d := range builtin {
		registry.Register(d.id, d.build)
	}
}
