package app

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
)

// Main menu entries, in display order.
const (
	menuPlay = iota
	menuEditCurrent
	menuEditNew
	menuQuit
)

const (
	menuButtonW = 30
	menuButtonY = 12
)

type menuScene struct {
	list *buttonList
}

func newMenuScene() *menuScene {
	x := (core.DefaultConfig().ScreenW - menuButtonW) / 2
	return &menuScene{
		list: newButtonList(x, menuButtonY, menuButtonW, 3, 0, 4,
			"PLAY",
			"EDIT CURRENT LEVEL PACK",
			"EDIT NEW LEVEL PACK",
			"QUIT",
		),
	}
}

// update returns the chosen entry or -1. Entries that need a pack are
// disabled while none is loaded.
func (m *menuScene) update(frame core.Frame, pack *levelpack.Pack) int {
	m.list.setDisabled(menuPlay, pack == nil)
	m.list.setDisabled(menuEditCurrent, pack == nil)
	return m.list.update(frame)
}

func (m *menuScene) render(dst *core.Screen, pack *levelpack.Pack) {
	dst.DrawTextCenteredColor(2, "T U I   B R E A K O U T", core.ColorBrightCyan)

	box := core.NewRect((dst.Width()-30)/2, 6, 30, 4)
	dst.DrawTextCenteredColor(5, "LEVEL PACK LOADED:", core.ColorWhite)
	dst.DrawBoxColor(box, core.ColorDarkGray)
	if pack != nil {
		dst.DrawTextColor(box.X+2, box.Y+1, pack.Name, core.ColorBrightWhite)
		dst.DrawTextColor(box.X+2, box.Y+2, pack.Author, core.ColorGray)
	} else {
		dst.DrawTextCenteredColor(box.Y+1, "NO PACK LOADED!", core.ColorGray)
	}

	m.list.render(dst)
	dst.DrawTextCenteredColor(dst.Height()-1, "Mouse or ↑/↓ + Enter  |  Ctrl+C quit", core.ColorGray)
}
