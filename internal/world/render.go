package world

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// Glyphs for world elements.
const (
	BallChar   = '●'
	BulletChar = '╿'
	PaddleChar = '▀'
	NetChar    = '─'
	LifeChar   = '●'
	CarryChar  = '○'
)

// Render draws the playfield into dst with its top-left corner at cell
// (0, 0). The playfield is 48×30 cells.
func (w *World) Render(dst *core.Screen) {
	RenderLevel(dst, w.level)

	if w.paddle.safeVisible() {
		_, y := core.ToCell(core.V(0, w.view.Y-1))
		cols := int(w.view.X) / core.CellW
		for x := 0; x < cols; x++ {
			dst.SetColor(x, y, NetChar, core.ColorBrightBlue)
		}
	}

	for _, p := range w.powerups {
		r := core.CellRect(p.rect())
		dst.DrawTextColor(r.X, r.Y, p.Kind.Label(), p.Kind.Color())
	}
	for _, b := range w.balls {
		w.drawBall(dst, b)
	}
	for _, b := range w.bullets {
		x, y := core.ToCell(b.Pos.Add(core.V(1, bulletLength/2)))
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}
	w.renderPaddle(dst)
	w.renderHUD(dst)
}

// RenderLevel draws the tiles of lvl. The editor uses it for the canvas.
func RenderLevel(dst *core.Screen, lvl *level.Level) {
	for i := 0; i < level.Cells; i++ {
		t, _ := lvl.Tile(i)
		if t == level.Air {
			continue
		}
		r := core.CellRect(level.TileRect(i))
		dst.DrawRectColor(r, t.Glyph(), t.Color())
	}
}

func (w *World) drawBall(dst *core.Screen, b Ball) {
	size := w.cfg.Physics.BallSize
	// The top edge picks the row so a ball resting on the paddle is drawn
	// above it.
	x, y := core.ToCell(b.Pos.Add(core.V(size/2, 0)))
	dst.SetColor(x, y, BallChar, core.ColorBrightWhite)
}

func (w *World) renderPaddle(dst *core.Screen) {
	p := w.paddle
	color := core.ColorWhite
	if p.gun > 0 && (p.gun > 2 || math.Mod(p.gun, 0.2) >= 0.1) {
		color = core.ColorBrightRed
	}
	x0, y := core.ToCell(core.V(p.x, p.Y()))
	x1, _ := core.ToCell(core.V(p.x+p.width-0.01, p.Y()))
	for x := x0; x <= x1; x++ {
		dst.SetColor(x, y, PaddleChar, color)
	}
	if p.carry != nil {
		w.drawBall(dst, *p.carry)
	}
}

// renderHUD draws score and level name on the top row, active timed
// powerups below them, and lives and carries in the bottom-left corner.
func (w *World) renderHUD(dst *core.Screen) {
	cols := int(w.view.X) / core.CellW
	rows := int(w.view.Y) / core.CellH

	dst.DrawTextColor(0, 0, fmt.Sprintf("SCORE: %d", w.score), core.ColorBrightWhite)
	name := w.level.Name()
	dst.DrawTextColor(cols-len(name), 0, name, core.ColorBrightWhite)

	var effects []string
	for _, e := range []struct {
		label string
		t     float64
	}{
		{"GUN", w.paddle.gun},
		{"GROW", w.paddle.long},
		{"SAFE", w.paddle.safe},
	} {
		if e.t > 0 {
			effects = append(effects, fmt.Sprintf("%s %d", e.label, int(math.Ceil(e.t))))
		}
	}
	if len(effects) > 0 {
		dst.DrawTextColor(0, 1, strings.Join(effects, "  "), core.ColorGray)
	}

	x := 0
	if w.lives != InfiniteLives {
		for range int(w.lives) {
			dst.SetColor(x, rows-1, LifeChar, core.ColorBrightRed)
			x++
		}
	}
	for range w.paddle.carries {
		dst.SetColor(x, rows-1, CarryChar, core.ColorBrightCyan)
		x++
	}
}
