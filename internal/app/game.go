package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
	"github.com/vovakirdan/tui-breakout/internal/levelpack"
	"github.com/vovakirdan/tui-breakout/internal/storage"
	"github.com/vovakirdan/tui-breakout/internal/world"
)

// gameState is the phase of a run.
type gameState int

const (
	statePlaying gameState = iota
	statePaused
	stateFinished
)

const (
	noticeDuration = 2.0
	playfieldW     = 48
	sidePanelX     = playfieldW + 1
)

// Pause menu entries.
const (
	pauseResume = iota
	pauseExit
)

// RunOptions customises the start of a run.
type RunOptions struct {
	StartLevel int         // zero-based index of the first level
	Lives      world.Lives // world.DefaultLives uses the configured count
}

// gameScene plays every level of a pack in order.
type gameScene struct {
	cfg        config.GameConfig
	logger     *log.Logger
	store      *storage.Store
	difficulty *config.DifficultyManager

	pack  *levelpack.Pack
	index int
	world *world.World
	seed  int64
	state gameState

	pause  *buttonList
	result *buttonList

	notice      string
	noticeTimer float64

	cleared   int
	completed bool
	highScore int
}

func newGameScene(pack *levelpack.Pack, cfg config.GameConfig, logger *log.Logger, store *storage.Store, seed int64, opts RunOptions) *gameScene {
	levels := make([]*level.Level, len(pack.Levels))
	for i, l := range pack.Levels {
		levels[i] = l.Clone()
	}

	g := &gameScene{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		pack:       &levelpack.Pack{Name: pack.Name, Author: pack.Author, Levels: levels},
		index:      core.Clamp(opts.StartLevel, 0, len(levels)-1),
		seed:       seed,
		pause:      newButtonList(12, 16, 11, 3, 13, 0, "RESUME", "EXIT"),
		result:     newButtonList((playfieldW-12)/2, 20, 12, 3, 0, 0, "MENU"),
	}
	g.world = g.newWorld(world.Options{Lives: opts.Lives})
	logger.Info("run started", "pack", pack.Name, "levels", len(levels), "start", g.index+1)
	return g
}

// newWorld starts the current level. Ball speed follows the difficulty
// progression for the score carried in.
func (g *gameScene) newWorld(opts world.Options) *world.World {
	cfg := g.cfg
	cfg.Physics.BallSpeed = g.difficulty.Speed(g.cfg.Physics.BallSpeed, opts.Score, g.index)
	opts.Seed = g.seed + int64(g.index)
	return world.New(g.pack.Levels[g.index], cfg, opts)
}

// update runs one frame and reports whether the player left the scene.
func (g *gameScene) update(frame core.Frame) bool {
	if g.noticeTimer > 0 {
		g.noticeTimer -= frame.Delta
	}

	switch g.state {
	case statePaused:
		if frame.Input.Has(core.ActionBack) || frame.Input.Has(core.ActionPause) {
			g.state = statePlaying
			return false
		}
		switch g.pause.update(frame) {
		case pauseResume:
			g.state = statePlaying
		case pauseExit:
			g.logger.Info("run abandoned", "pack", g.pack.Name, "score", g.world.Score())
			return true
		}
		return false

	case stateFinished:
		return g.result.update(frame) == 0 || frame.Input.Has(core.ActionBack)
	}

	if frame.Input.Has(core.ActionBack) || frame.Input.Has(core.ActionPause) {
		g.state = statePaused
		g.pause.cursor = pauseResume
		return false
	}

	switch g.world.Update(frame.Delta, frame.Controls) {
	case world.UpdateBallStuck:
		g.world.GiveFreeBall()
		g.showNotice("BALL STUCK! FREE BALL")
		g.logger.Debug("ball stuck", "level", g.index+1)
	case world.UpdateGameOver:
		g.finish(false)
		return false
	}

	if g.world.LevelComplete() {
		g.nextLevel()
	}
	return false
}

func (g *gameScene) nextLevel() {
	g.cleared++
	prev := g.world
	if g.index+1 >= len(g.pack.Levels) {
		g.finish(true)
		return
	}
	g.index++
	x := prev.PaddleX()
	g.world = g.newWorld(world.Options{
		Score:   prev.Score(),
		PaddleX: &x,
		Lives:   prev.Lives(),
		Carries: prev.Carries(),
	})
	g.showNotice(fmt.Sprintf("LEVEL %d", g.index+1))
	g.logger.Debug("level cleared", "level", g.index, "score", prev.Score())
}

// finish ends the run and records the score.
func (g *gameScene) finish(completed bool) {
	g.state = stateFinished
	g.completed = completed
	score := g.world.Score()

	g.logger.Info("run finished", "pack", g.pack.Name, "score", score, "cleared", g.cleared, "completed", completed)

	if g.store == nil {
		return
	}
	if _, err := g.store.SaveScore(g.pack.Name, score, g.cleared, completed); err != nil {
		g.logger.Error("cannot save score", "error", err)
	}
	high, err := g.store.HighScore(g.pack.Name)
	if err != nil {
		g.logger.Error("cannot read high score", "error", err)
		return
	}
	g.highScore = high
}

func (g *gameScene) showNotice(s string) {
	g.notice = s
	g.noticeTimer = noticeDuration
}

func (g *gameScene) render(dst *core.Screen) {
	g.world.Render(dst)
	g.renderPanel(dst)

	if g.noticeTimer > 0 && g.state == statePlaying {
		dst.DrawTextColor((playfieldW-len(g.notice))/2, 20, g.notice, core.ColorBrightYellow)
	}

	switch g.state {
	case statePaused:
		g.renderOverlay(dst, "PAUSED", "")
		g.pause.render(dst)
	case stateFinished:
		title := "GAME OVER"
		if g.completed {
			title = "LEVEL PACK COMPLETE!"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("SCORE %d", g.world.Score()))
		dst.DrawTextColor(12, 16, fmt.Sprintf("LEVELS CLEARED %d/%d", g.cleared, len(g.pack.Levels)), core.ColorGray)
		if g.highScore > 0 {
			dst.DrawTextColor(12, 17, fmt.Sprintf("HIGH SCORE     %d", g.highScore), core.ColorGray)
		}
		g.result.render(dst)
	}
}

// renderOverlay blanks a box over the playfield for menus and results.
func (g *gameScene) renderOverlay(dst *core.Screen, title, subtitle string) {
	box := core.NewRect(8, 10, playfieldW-16, 14)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorWhite)
	dst.DrawTextColor((playfieldW-len([]rune(title)))/2, 12, title, core.ColorBrightWhite)
	if subtitle != "" {
		dst.DrawTextColor((playfieldW-len(subtitle))/2, 14, subtitle, core.ColorBrightYellow)
	}
}

func (g *gameScene) renderPanel(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		dst.SetColor(playfieldW, y, '│', core.ColorDarkGray)
	}
	dst.DrawTextColor(sidePanelX+1, 1, g.pack.Name, core.ColorBrightWhite)
	dst.DrawTextColor(sidePanelX+1, 2, g.pack.Author, core.ColorGray)
	dst.DrawTextColor(sidePanelX+1, 4, fmt.Sprintf("LEVEL %02d/%02d", g.index+1, len(g.pack.Levels)), core.ColorWhite)
	dst.DrawTextColor(sidePanelX+1, 5, fmt.Sprintf("SCORE %d", g.world.Score()), core.ColorWhite)

	lives := "∞"
	if l := g.world.Lives(); l != world.InfiniteLives {
		lives = fmt.Sprint(int(l))
	}
	dst.DrawTextColor(sidePanelX+1, 6, "LIVES "+lives, core.ColorWhite)
	dst.DrawTextColor(sidePanelX+1, 7, fmt.Sprintf("CARRIES %d", g.world.Carries()), core.ColorWhite)

	help := []string{
		"←/→ A/D  MOVE",
		"↑/W      CARRY",
		"SPACE    FIRE",
		"ESC/P    PAUSE",
	}
	for i, line := range help {
		dst.DrawTextColor(sidePanelX+1, 10+i, line, core.ColorGray)
	}
}
