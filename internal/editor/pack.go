// Package editor implements the level editor: a pack of levels each with
// its own undo history, and the interactive scene that edits them.
package editor

import (
	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/timewarp"
)

// editorLevel pairs a level with the history that belongs to it alone.
type editorLevel struct {
	level    *level.Level
	timewarp *timewarp.Timewarp
}

func newEditorLevel(lvl *level.Level, capacity int) editorLevel {
	return editorLevel{level: lvl, timewarp: timewarp.New(lvl, capacity)}
}

// Pack is a level pack being edited. It always holds at least one level
// and keeps a cursor on the current one.
type Pack struct {
	name     string
	author   string
	levels   []editorLevel
	current  int
	capacity int
}

// NewPack creates a pack with one blank level. capacity bounds each
// level's undo history.
func NewPack(capacity int) *Pack {
	return &Pack{
		levels:   []editorLevel{newEditorLevel(level.New(), capacity)},
		capacity: capacity,
	}
}

// FromLevelPack copies lp into an editable pack. The source is not
// modified by later edits.
func FromLevelPack(lp *levelpack.Pack, capacity int) *Pack {
	p := &Pack{
		name:     level.SanitizeName(lp.Name),
		author:   level.SanitizeName(lp.Author),
		capacity: capacity,
	}
	for _, lvl := range lp.Levels {
		p.levels = append(p.levels, newEditorLevel(lvl.Clone(), capacity))
	}
	if len(p.levels) == 0 {
		p.levels = append(p.levels, newEditorLevel(level.New(), capacity))
	}
	return p
}

// Name returns the pack name.
func (p *Pack) Name() string { return p.name }

// SetName stores a sanitized pack name.
func (p *Pack) SetName(name string) { p.name = level.SanitizeName(name) }

// Author returns the pack author.
func (p *Pack) Author() string { return p.author }

// SetAuthor stores a sanitized author name.
func (p *Pack) SetAuthor(author string) { p.author = level.SanitizeName(author) }

// Current returns the index of the level being edited.
func (p *Pack) Current() int { return p.current }

// Count returns the number of levels.
func (p *Pack) Count() int { return len(p.levels) }

// Level returns the level being edited.
func (p *Pack) Level() *level.Level { return p.levels[p.current].level }

// Timewarp returns the history of the level being edited.
func (p *Pack) Timewarp() *timewarp.Timewarp { return p.levels[p.current].timewarp }

func (p *Pack) CanAdd() bool       { return len(p.levels) < levelpack.MaxLevels }
func (p *Pack) CanNext() bool      { return p.current < len(p.levels)-1 }
func (p *Pack) CanPrev() bool      { return p.current > 0 }
func (p *Pack) CanShiftNext() bool { return p.CanNext() }
func (p *Pack) CanShiftPrev() bool { return p.CanPrev() }

// Add inserts a blank level after the current one and selects it.
func (p *Pack) Add() {
	if !p.CanAdd() {
		return
	}
	p.current++
	p.levels = append(p.levels, editorLevel{})
	copy(p.levels[p.current+1:], p.levels[p.current:])
	p.levels[p.current] = newEditorLevel(level.New(), p.capacity)
}

// Delete removes the current level. Deleting the only level leaves a
// fresh blank one in its place.
func (p *Pack) Delete() {
	if len(p.levels) == 1 {
		p.levels[0] = newEditorLevel(level.New(), p.capacity)
		p.current = 0
		return
	}
	p.levels = append(p.levels[:p.current], p.levels[p.current+1:]...)
	if p.current >= len(p.levels) {
		p.current = len(p.levels) - 1
	}
}

// Next selects the following level.
func (p *Pack) Next() {
	if p.CanNext() {
		p.current++
	}
}

// Prev selects the preceding level.
func (p *Pack) Prev() {
	if p.CanPrev() {
		p.current--
	}
}

// ShiftNext moves the current level one place later; the cursor follows.
func (p *Pack) ShiftNext() {
	if !p.CanShiftNext() {
		return
	}
	p.levels[p.current], p.levels[p.current+1] = p.levels[p.current+1], p.levels[p.current]
	p.current++
}

// ShiftPrev moves the current level one place earlier; the cursor follows.
func (p *Pack) ShiftPrev() {
	if !p.CanShiftPrev() {
		return
	}
	p.levels[p.current], p.levels[p.current-1] = p.levels[p.current-1], p.levels[p.current]
	p.current--
}

func (p *Pack) Undo()              { p.Timewarp().Undo(p.Level()) }
func (p *Pack) Redo()              { p.Timewarp().Redo(p.Level()) }
func (p *Pack) SavePreviousState() { p.Timewarp().SavePreviousState(p.Level()) }
func (p *Pack) PushCurrentState()  { p.Timewarp().PushCurrentState(p.Level()) }

// Clear empties the current level as a single undoable edit.
func (p *Pack) Clear() {
	p.Timewarp().ImmediatePush(p.Level(), (*level.Level).Clear)
}

// LevelPack returns a snapshot of the pack. Levels are copied.
func (p *Pack) LevelPack() *levelpack.Pack {
	levels := make([]*level.Level, len(p.levels))
	for i, el := range p.levels {
		levels[i] = el.level.Clone()
	}
	return &levelpack.Pack{Name: p.name, Author: p.author, Levels: levels}
}

// Encode serializes the pack in the .brk format.
func (p *Pack) Encode() ([]byte, error) {
	return levelpack.Encode(p.LevelPack())
}

// Save writes the pack into dir and returns the file path.
func (p *Pack) Save(dir string) (string, error) {
	return levelpack.Save(dir, p.LevelPack())
}
