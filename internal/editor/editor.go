package editor

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gui"
	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// Result tells the owning scene what the editor wants after a frame.
type Result int

const (
	ResultNone Result = iota
	ResultExit
)

type confirmation int

const (
	confirmNone confirmation = iota
	confirmExit
	confirmSave
	confirmDelete
)

type clickAction int

const (
	clickNone clickAction = iota
	clickDraw
	clickErase
)

const blinkPeriod = 0.4

// Editor is the level editor scene.
type Editor struct {
	cfg    config.GameConfig
	logger *log.Logger
	pack   *Pack
	gui    *gui.Gui

	drawTile level.Tile
	click    clickAction

	popup  confirmation
	fields map[gui.Id]*gui.TextField
	focus  gui.Id // 0 when no field is focused

	play    *world.World
	paddleX *float64
	seed    int64

	showHelp    bool
	status      string
	statusError bool
	blink       float64
}

// New creates an editor on pack.
func New(pack *Pack, cfg config.GameConfig, logger *log.Logger) *Editor {
	g := gui.New()
	addPaletteButtons(g)
	addPanelButtons(g)

	return &Editor{
		cfg:      cfg,
		logger:   logger,
		pack:     pack,
		gui:      g,
		drawTile: level.Red,
		fields: map[gui.Id]*gui.TextField{
			idName: gui.NewTextField(fieldX, 0, "NAME", pack.Level().Name()),
		},
	}
}

// Pack returns the pack being edited.
func (e *Editor) Pack() *Pack { return e.pack }

// DrawTile returns the tile the left button paints.
func (e *Editor) DrawTile() level.Tile { return e.drawTile }

// Playing reports whether the current level is being test-played.
func (e *Editor) Playing() bool { return e.play != nil }

// PopupOpen reports whether a confirmation is waiting for an answer.
func (e *Editor) PopupOpen() bool { return e.popup != confirmNone }

// Status returns the last status line and whether it reports an error.
func (e *Editor) Status() (string, bool) { return e.status, e.statusError }

// Update advances the editor by one frame.
func (e *Editor) Update(frame core.Frame) Result {
	e.blink += frame.Delta
	for e.blink >= blinkPeriod {
		e.blink -= blinkPeriod
	}

	if frame.Input.Has(core.ActionBack) {
		if e.PopupOpen() {
			e.closePopup()
		} else {
			e.togglePlay()
		}
		return ResultNone
	}

	if e.play != nil {
		if e.play.Update(frame.Delta, frame.Controls) == world.UpdateBallStuck {
			e.play.GiveFreeBall()
		}
		return ResultNone
	}

	e.syncFields()
	e.refreshButtons()

	var only []gui.Id
	if e.PopupOpen() {
		only = popupIds
	}
	e.gui.Update(frame.Pointer, only)

	confirmed := e.updatePopup()
	e.updateFields(frame)

	for t := range level.Tile(level.TileCount) {
		if e.gui.Released(gui.Id(t)) {
			e.drawTile = t
		}
	}

	switch confirmed {
	case confirmExit:
		return ResultExit
	case confirmSave:
		e.save()
	case confirmDelete:
		e.pack.Delete()
		e.endGesture()
	}

	e.handleButtons(frame)
	e.paint(frame.Pointer)
	return ResultNone
}

func (e *Editor) togglePlay() {
	if e.play != nil {
		x := e.play.PaddleX()
		e.paddleX = &x
		e.play = nil
		return
	}
	e.endGesture()
	if e.focus == idName {
		e.focus = 0
	}
	e.seed++
	e.play = world.New(e.pack.Level().Clone(), e.cfg, world.Options{
		PaddleX: e.paddleX,
		Lives:   world.InfiniteLives,
		Seed:    e.seed,
	})
	e.logger.Debug("test play", "level", e.pack.Current()+1)
}

// refreshButtons greys out actions that would do nothing.
func (e *Editor) refreshButtons() {
	tw := e.pack.Timewarp()
	disable := map[gui.Id]bool{
		idUndo:      !tw.CanUndo(),
		idRedo:      !tw.CanRedo(),
		idLevelAdd:  !e.pack.CanAdd(),
		idLevelNext: !e.pack.CanNext(),
		idLevelPrev: !e.pack.CanPrev(),
		idShiftNext: !e.pack.CanShiftNext(),
		idShiftPrev: !e.pack.CanShiftPrev(),
	}
	for id, off := range disable {
		if b, ok := e.gui.Button(id); ok {
			b.Disabled = off
		}
	}
	for t := range level.Tile(level.TileCount) {
		if b, ok := e.gui.Button(gui.Id(t)); ok {
			b.Selected = t == e.drawTile
		}
	}
}

// updatePopup opens a confirmation when its button was clicked and
// returns the confirmation accepted this frame, if any.
func (e *Editor) updatePopup() confirmation {
	if !e.PopupOpen() {
		switch {
		case e.gui.Released(idExit):
			e.openPopup(confirmExit)
		case e.gui.Released(idSave):
			e.openPopup(confirmSave)
		case e.gui.Released(idLevelDelete):
			e.openPopup(confirmDelete)
		}
		return confirmNone
	}

	switch {
	case e.gui.Released(idYes):
		c := e.popup
		if c != confirmExit {
			e.closePopup()
		}
		return c
	case e.gui.Released(idNo):
		e.closePopup()
	}
	return confirmNone
}

func (e *Editor) openPopup(c confirmation) {
	e.popup = c
	e.endGesture()
	addPopupButtons(e.gui, c)
	if c == confirmSave {
		e.fields[idPackName] = gui.NewTextField(packFieldX, popupBoxY+3, "NAME", e.pack.Name())
		e.fields[idPackAuthor] = gui.NewTextField(packFieldX, popupBoxY+5, "AUTHOR", e.pack.Author())
		e.focus = idPackName
		e.blink = 0
	}
}

func (e *Editor) closePopup() {
	removePopupButtons(e.gui)
	delete(e.fields, idPackName)
	delete(e.fields, idPackAuthor)
	if e.focus == idPackName || e.focus == idPackAuthor {
		e.focus = 0
	}
	e.popup = confirmNone
}

// syncFields loads field text from the model, which may have changed
// through level navigation or undo.
func (e *Editor) syncFields() {
	for id, f := range e.fields {
		switch id {
		case idName:
			f.Text = e.pack.Level().Name()
		case idPackName:
			f.Text = e.pack.Name()
		case idPackAuthor:
			f.Text = e.pack.Author()
		}
	}
}

func (e *Editor) updateFields(frame core.Frame) {
	p := frame.Pointer
	hovering := false
	for _, id := range textFieldIds {
		if b, ok := e.gui.Button(id); ok && p.Valid && b.Rect.Contains(p.X, p.Y) {
			hovering = true
		}
		if e.gui.Released(id) {
			if e.focus == id {
				e.focus = 0
			} else {
				e.focus = id
				e.blink = 0
			}
		}
	}
	if !hovering && (p.LeftPressed || p.RightPressed) {
		e.focus = 0
	}

	f, ok := e.fields[e.focus]
	if !ok {
		return
	}
	if f.Update(frame) {
		e.focus = 0
	}
	switch e.focus {
	case idPackName:
		if frame.Input.Has(core.ActionTab) {
			e.focus = idPackAuthor
		}
	case idPackAuthor:
		if frame.Input.Has(core.ActionTab) {
			e.focus = idPackName
		}
	}

	for id, f := range e.fields {
		switch id {
		case idName:
			e.pack.Level().SetName(f.Text)
		case idPackName:
			e.pack.SetName(f.Text)
		case idPackAuthor:
			e.pack.SetAuthor(f.Text)
		}
	}
}

func (e *Editor) handleButtons(frame core.Frame) {
	if e.PopupOpen() {
		return
	}
	typing := e.focus != 0
	// History shortcuts wait until the stroke in progress is pushed.
	painting := e.click != clickNone

	if e.gui.Released(idClear) {
		e.pack.Clear()
	}
	if e.gui.Released(idUndo) || (!typing && !painting && frame.Input.Has(core.ActionUndo)) {
		e.pack.Undo()
	}
	if e.gui.Released(idRedo) || (!typing && !painting && frame.Input.Has(core.ActionRedo)) {
		e.pack.Redo()
	}
	if e.gui.Released(idHelp) || (!typing && frame.Input.Has(core.ActionHelp)) {
		e.showHelp = !e.showHelp
	}

	switch {
	case e.gui.Released(idLevelAdd):
		e.pack.Add()
	case e.gui.Released(idLevelNext):
		e.pack.Next()
	case e.gui.Released(idLevelPrev):
		e.pack.Prev()
	case e.gui.Released(idShiftNext):
		e.pack.ShiftNext()
	case e.gui.Released(idShiftPrev):
		e.pack.ShiftPrev()
	default:
		return
	}
	e.endGesture()
}

// paint runs the draw/erase gesture. One gesture is one undo entry;
// leaving the canvas or opening a popup ends it.
func (e *Editor) paint(p core.Pointer) {
	idx, inside := canvasIndex(p)
	if !inside || e.PopupOpen() {
		e.endGesture()
		return
	}

	switch {
	case p.LeftPressed:
		e.endGesture()
		e.click = clickDraw
		e.pack.SavePreviousState()
	case p.RightPressed:
		e.endGesture()
		e.click = clickErase
		e.pack.SavePreviousState()
	}

	switch e.click {
	case clickDraw:
		e.pack.Level().SetTile(idx, e.drawTile)
	case clickErase:
		e.pack.Level().SetTile(idx, level.Air)
	}

	if (p.LeftReleased && e.click == clickDraw) || (p.RightReleased && e.click == clickErase) {
		e.endGesture()
	}
}

func (e *Editor) endGesture() {
	if e.click == clickNone {
		return
	}
	e.click = clickNone
	e.pack.PushCurrentState()
}

func (e *Editor) save() {
	dir := config.ExpandHome(e.cfg.Editor.PackDir)
	path, err := e.pack.Save(dir)
	if err != nil {
		e.logger.Error("save failed", "pack", e.pack.Name(), "error", err)
		e.setStatus("SAVE FAILED", true)
		return
	}
	e.logger.Info("pack saved", "path", path, "levels", e.pack.Count())
	e.setStatus("SAVED "+filepath.Base(path), false)
}

func (e *Editor) setStatus(s string, isErr bool) {
	e.status, e.statusError = s, isErr
}
