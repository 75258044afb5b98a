package editor

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gui"
	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

const (
	gridChar   = '·'
	cursorChar = '▲'
)

var helpLines = []string{
	"LEFT  PAINT",
	"RIGHT ERASE",
	"CTRL+Z/Y UNDO/REDO",
	"ESC   PLAY LEVEL",
	"TAB   NEXT FIELD",
	"ENTER DONE TYPING",
}

// Render draws the editor, or the test-play world when one is running.
func (e *Editor) Render(dst *core.Screen) {
	if e.play != nil {
		e.play.Render(dst)
		dst.DrawTextColor(panelX, 0, "TEST PLAY", core.ColorBrightYellow)
		dst.DrawTextColor(panelX, 1, "ESC: BACK TO EDITOR", core.ColorGray)
		return
	}

	e.renderCanvas(dst)
	e.renderPanel(dst)
	if e.PopupOpen() {
		e.renderPopup(dst)
	}
}

func (e *Editor) renderCanvas(dst *core.Screen) {
	dst.DrawTextColor(0, 0, "EDITOR", core.ColorWhite)
	dst.DrawTextColor(0, 1, "ESC: PLAY LEVEL", core.ColorGray)

	for row := range canvasH {
		for col := range level.Width {
			dst.SetColor(col*3+1, canvasTop+row, gridChar, core.ColorDarkGray)
		}
	}
	world.RenderLevel(dst, e.pack.Level())

	for x := range canvasW {
		dst.SetColor(x, canvasTop+canvasH, '─', core.ColorBlue)
	}
	for t := range level.Tile(level.TileCount) {
		b, ok := e.gui.Button(gui.Id(t))
		if !ok {
			continue
		}
		b.Render(dst, gui.DefaultStyle)
		if t == e.drawTile {
			dst.SetColor(b.Rect.X+1, b.Rect.Y+1, cursorChar, core.ColorBrightYellow)
		}
	}
	for y := range canvasTop + canvasH + 6 {
		dst.SetColor(canvasW, y, '│', core.ColorBlue)
	}
}

func (e *Editor) renderPanel(dst *core.Screen) {
	focused := func(id gui.Id) bool {
		return e.focus == id && e.blink < blinkPeriod/2
	}
	if f, ok := e.fields[idName]; ok {
		f.Render(dst, focused(idName))
	}

	dst.DrawTextColor(panelX, levelRowY, fmt.Sprintf("LVL %02d/%02d", e.pack.Current()+1, e.pack.Count()), core.ColorWhite)
	dst.DrawTextColor(panelX, shiftRowY, "SHIFT", core.ColorGray)
	for _, id := range panelIds {
		if b, ok := e.gui.Button(id); ok {
			style := gui.DefaultStyle
			if id == idHelp {
				style.Text = core.ColorBrightYellow
			}
			b.Render(dst, style)
		}
	}

	if e.status != "" {
		c := core.ColorBrightGreen
		if e.statusError {
			c = core.ColorBrightRed
		}
		dst.DrawTextColor(panelX, statusY, e.status, c)
	}
	if e.showHelp {
		for i, line := range helpLines {
			dst.DrawTextColor(panelX, helpY+i, line, core.ColorGray)
		}
	}
}

func (e *Editor) renderPopup(dst *core.Screen) {
	r := popupRect
	if e.popup == confirmSave {
		r = savePopupRect
	}
	dst.DrawRectColor(r, ' ', core.ColorDefault)
	dst.DrawBoxColor(r, core.ColorBlue)

	var lines []string
	switch e.popup {
	case confirmExit:
		lines = []string{"EXIT?", "UNSAVED CHANGES", "WILL BE LOST!"}
	case confirmDelete:
		lines = []string{"DELETE LEVEL?", "THIS CANNOT", "BE UNDONE"}
	case confirmSave:
		lines = []string{"SAVE LEVEL PACK"}
	}
	for i, line := range lines {
		x := r.X + (r.W-len(line))/2
		dst.DrawTextColor(x, r.Y+1+i, line, core.ColorWhite)
	}

	focused := func(id gui.Id) bool {
		return e.focus == id && e.blink < blinkPeriod/2
	}
	for _, id := range []gui.Id{idPackName, idPackAuthor} {
		if f, ok := e.fields[id]; ok {
			f.Render(dst, focused(id))
		}
	}
	for _, id := range []gui.Id{idYes, idNo} {
		if b, ok := e.gui.Button(id); ok {
			b.Render(dst, gui.DefaultStyle)
		}
	}
}
