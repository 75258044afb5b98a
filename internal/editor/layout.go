package editor

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gui"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// Button ids. Palette buttons use the tile code (0-15) as their id.
const (
	idName gui.Id = 100 + iota
	idExit
	idSave
	idClear
	idUndo
	idRedo
	idHelp
)

const (
	idLevelAdd gui.Id = 200 + iota
	idLevelNext
	idLevelPrev
	idShiftNext
	idShiftPrev
	idLevelDelete
)

const (
	idYes gui.Id = 300 + iota
	idNo
	idPackName
	idPackAuthor
)

// popupIds are the only buttons live while a confirmation is open.
var popupIds = []gui.Id{idYes, idNo, idPackName, idPackAuthor}

// textFieldIds are the buttons that focus a text field when clicked.
var textFieldIds = []gui.Id{idName, idPackName, idPackAuthor}

// panelIds are the side panel buttons drawn as regular buttons.
var panelIds = []gui.Id{
	idUndo, idRedo, idHelp, idClear, idSave, idExit,
	idLevelPrev, idLevelNext, idLevelAdd, idShiftPrev, idShiftNext, idLevelDelete,
}

// Screen layout in cells. The canvas occupies the playfield columns; the
// panel sits to its right.
const (
	canvasW   = level.Width * 3
	canvasTop = level.PaddingTop
	canvasH   = level.Height

	paletteY = 27
	panelX   = canvasW + 1
	fieldX   = panelX + 6

	levelRowY  = 4
	shiftRowY  = 6
	historyY   = 8
	fileRowY   = 11
	deleteY    = 14
	statusY    = 18
	helpY      = 20
	popupBoxY  = 8
	popupBtnY  = 15
	packFieldX = 16
)

var (
	popupRect     = core.NewRect(8, popupBoxY, 32, 11)
	savePopupRect = core.NewRect(2, popupBoxY, 44, 11)
)

// paletteRect returns the palette button for tile t.
func paletteRect(t level.Tile) core.Rect {
	return core.NewRect(int(t)*3, paletteY, 3, 1)
}

func addPanelButtons(g *gui.Gui) {
	text := func(s string) gui.Detail { return gui.TextDetail{Text: s} }

	g.Add(idName, gui.NewButton(core.NewRect(fieldX, 0, level.NameLen, 1), nil))

	g.Add(idLevelPrev, gui.NewButton(core.NewRect(panelX+10, levelRowY, 3, 1), text("<")))
	g.Add(idLevelNext, gui.NewButton(core.NewRect(panelX+14, levelRowY, 3, 1), text(">")))
	g.Add(idLevelAdd, gui.NewButton(core.NewRect(panelX+18, levelRowY, 3, 1), text("+")))
	g.Add(idShiftPrev, gui.NewButton(core.NewRect(panelX+10, shiftRowY, 3, 1), text("«")))
	g.Add(idShiftNext, gui.NewButton(core.NewRect(panelX+14, shiftRowY, 3, 1), text("»")))

	g.Add(idUndo, gui.NewButton(core.NewRect(panelX, historyY, 7, 3), text("UNDO")))
	g.Add(idRedo, gui.NewButton(core.NewRect(panelX+7, historyY, 7, 3), text("REDO")))
	g.Add(idHelp, gui.NewButton(core.NewRect(panelX+14, historyY, 8, 3), text("HELP")))
	g.Add(idClear, gui.NewButton(core.NewRect(panelX, fileRowY, 7, 3), text("CLEAR")))
	g.Add(idSave, gui.NewButton(core.NewRect(panelX+7, fileRowY, 7, 3), text("SAVE")))
	g.Add(idExit, gui.NewButton(core.NewRect(panelX+14, fileRowY, 8, 3), text("EXIT")))
	g.Add(idLevelDelete, gui.NewButton(core.NewRect(panelX, deleteY, 8, 3), text("DELETE")))
}

func addPaletteButtons(g *gui.Gui) {
	for t := range level.Tile(level.TileCount) {
		glyph := t.Glyph()
		if t == level.Air {
			glyph = '·'
		}
		g.Add(gui.Id(t), gui.NewButton(paletteRect(t), gui.IconDetail{Glyph: glyph, Color: t.Color()}))
	}
}

func addPopupButtons(g *gui.Gui, c confirmation) {
	g.Add(idYes, gui.NewButton(core.NewRect(12, popupBtnY, 7, 3), gui.TextDetail{Text: "YES"}))
	g.Add(idNo, gui.NewButton(core.NewRect(29, popupBtnY, 7, 3), gui.TextDetail{Text: "NO"}))
	if c == confirmSave {
		g.Add(idPackName, gui.NewButton(core.NewRect(packFieldX, popupBoxY+3, level.NameLen, 1), nil))
		g.Add(idPackAuthor, gui.NewButton(core.NewRect(packFieldX, popupBoxY+5, level.NameLen, 1), nil))
	}
}

func removePopupButtons(g *gui.Gui) {
	for _, id := range popupIds {
		g.Remove(id)
	}
}

// canvasIndex returns the tile under the pointer. inside reports whether
// the pointer is over the canvas at all.
func canvasIndex(p core.Pointer) (idx int, inside bool) {
	if !p.Valid || p.X < 0 || p.X >= canvasW || p.Y < canvasTop || p.Y >= canvasTop+canvasH {
		return 0, false
	}
	idx, ok := level.IndexAt(p.Pos())
	return idx, ok
}
