// Package world implements the brick breaker simulation: one level, a
// paddle, balls, bullets and falling powerups, advanced one frame at a
// time. It has no dependency on the terminal; scenes feed it per-frame
// controls and draw it into a core.Screen.
package world

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// UpdateResult is the terminal condition reported by one frame.
type UpdateResult int

const (
	UpdateNone      UpdateResult = iota
	UpdateBallStuck              // no tile or paddle touched for too long
	UpdateGameOver               // last ball lost with no lives left
)

// String returns the name of the result.
func (r UpdateResult) String() string {
	switch r {
	case UpdateNone:
		return "None"
	case UpdateBallStuck:
		return "BallStuck"
	case UpdateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Lives is a remaining life count, or one of the special values below.
type Lives int

const (
	// InfiniteLives never runs out; a lost ball is simply replaced.
	InfiniteLives Lives = -1
	// DefaultLives resolves to the configured starting lives.
	DefaultLives Lives = -2
)

// Options carries state from a previous level into a new World.
type Options struct {
	Score   int
	PaddleX *float64 // nil centres the paddle
	Lives   Lives
	Carries int
	Seed    int64
}

// DefaultOptions returns options for a fresh run.
func DefaultOptions() Options {
	return Options{Lives: DefaultLives}
}

type dispenseBatch struct {
	timer float64
	balls []Ball
}

// World is the simulation state of one level being played.
type World struct {
	cfg    config.GameConfig
	rng    *RNG
	view   core.Vec2
	level  *level.Level
	paddle *Paddle

	lives    Lives
	score    int
	balls    []Ball
	powerups []Powerup
	bullets  []Bullet
	dispense []dispenseBatch

	stuckTimer  float64
	nextPowerup int
}

// New creates a world playing lvl. The world takes ownership of lvl and
// breaks its tiles as the game goes.
func New(lvl *level.Level, cfg config.GameConfig, opts Options) *World {
	view := level.ViewSize()
	rng := NewRNG(opts.Seed)

	lives := opts.Lives
	if lives == DefaultLives {
		lives = Lives(cfg.Gameplay.Lives)
	}

	return &World{
		cfg:         cfg,
		rng:         rng,
		view:        view,
		level:       lvl,
		paddle:      newPaddle(cfg.Paddle, cfg.Physics.BallSize, view, opts.PaddleX, opts.Carries),
		lives:       lives,
		score:       opts.Score,
		balls:       make([]Ball, 0, 100),
		powerups:    make([]Powerup, 0, 20),
		bullets:     make([]Bullet, 0, 20),
		nextPowerup: rng.Intn(cfg.Powerups.FirstDropMax),
	}
}

// Score returns the current score.
func (w *World) Score() int { return w.score }

// PaddleX returns the paddle's left edge, to carry over between levels.
func (w *World) PaddleX() float64 { return w.paddle.x }

// Lives returns the remaining lives, or InfiniteLives.
func (w *World) Lives() Lives { return w.lives }

// Carries returns the paddle's spare carries.
func (w *World) Carries() int { return w.paddle.carries }

// Level returns the level being played.
func (w *World) Level() *level.Level { return w.level }

// LevelComplete reports whether no breakable tile remains.
func (w *World) LevelComplete() bool {
	return w.level.Complete()
}

// GiveFreeBall puts a fresh ball on the paddle. Hosts call it in response
// to UpdateBallStuck.
func (w *World) GiveFreeBall() {
	w.paddle.carryNew()
}

// Update advances the simulation by delta seconds.
func (w *World) Update(delta float64, in core.Controls) UpdateResult {
	// 1. Stuck-ball timer
	if w.paddle.carrying() {
		w.stuckTimer = 0
	} else {
		w.stuckTimer += delta
	}

	// 2. Paddle
	if b := w.paddle.update(delta, in, &w.bullets); b != nil {
		w.balls = append(w.balls, *b)
	}

	// 3. Scheduled dispense batches
	kept := w.dispense[:0]
	for _, d := range w.dispense {
		d.timer += delta
		if d.timer >= w.cfg.Powerups.DispenseInterval {
			if n := len(d.balls); n > 0 {
				w.balls = append(w.balls, d.balls[n-1])
				d.balls = d.balls[:n-1]
			}
			d.timer = 0
		}
		if len(d.balls) > 0 {
			kept = append(kept, d)
		}
	}
	w.dispense = kept

	// 4. Balls
	env := ballEnv{
		phys:   w.cfg.Physics,
		level:  w.level,
		paddle: w.paddle,
		safe:   w.paddle.ballsSafe(),
		view:   w.view,
		rng:    w.rng,
	}
	var hitTiles []int
	removeBall := make([]bool, len(w.balls))
	catch := -1
	for i := range w.balls {
		hit := w.balls[i].update(delta, env)
		switch hit.kind {
		case ballHitFloor:
			removeBall[i] = true
		case ballHitPaddle:
			w.stuckTimer = 0
			if catch < 0 {
				catch = i
			}
		case ballHitTiles:
			hitTiles = append(hitTiles, hit.tiles...)
		}
	}
	if catch >= 0 && w.paddle.canCarry(in.CarryHeld) {
		w.paddle.carryBall(w.balls[catch])
		removeBall[catch] = true
	}

	// 5. Bullets
	removeBullet := make([]bool, len(w.bullets))
	for i := range w.bullets {
		kind, tile := w.bullets[i].update(delta, w.cfg.Physics.BulletSpeed, w.level)
		if kind == bulletHitTile {
			hitTiles = append(hitTiles, tile)
		}
		if kind != bulletHitNone {
			removeBullet[i] = true
		}
	}

	// 6. Break every touched tile once
	seen := make(map[int]bool, len(hitTiles))
	for _, i := range hitTiles {
		if seen[i] {
			continue
		}
		seen[i] = true
		w.breakTile(i)
	}

	// 7. Powerups
	removePowerup := make([]bool, len(w.powerups))
	dispenses := 0
	trail := false
	for i := range w.powerups {
		switch w.powerups[i].update(delta, w.paddle, w.view) {
		case powerupHitPaddle:
			w.score += w.cfg.Scoring.Pickup
			switch w.powerups[i].Kind {
			case PaddleCarry:
				w.paddle.powerupCarry()
			case PaddleGrow:
				w.paddle.powerupGrow(w.cfg.Powerups.GrowDuration)
			case PaddleGun:
				w.paddle.powerupGun(w.cfg.Powerups.GunDuration)
			case BallsSafe:
				w.paddle.powerupSafe(w.cfg.Powerups.SafeDuration)
			case BallsFive:
				dispenses++
			case BallsTrail:
				trail = true
			}
			removePowerup[i] = true
		case powerupHitFloor:
			removePowerup[i] = true
		}
	}
	for ; dispenses > 0; dispenses-- {
		w.dispenseAngledBalls(w.cfg.Powerups.DispenseCount)
	}
	if trail {
		w.trailBalls(removeBall)
	}

	// 8. Ball loss
	gameOver := false
	if countKept(removeBall, len(w.balls)) == 0 && !w.paddle.carrying() && len(w.dispense) == 0 {
		if w.lives != InfiniteLives && !w.LevelComplete() {
			if w.lives == 0 && !w.lastChance(removeBullet, removePowerup) {
				gameOver = true
			}
			if w.lives > 0 {
				w.lives--
				w.paddle.carryNew()
			}
		}
		if w.lives == InfiniteLives {
			w.paddle.carryNew()
		}
	}

	// 9. Removal
	w.balls = compact(w.balls, removeBall)
	w.bullets = compact(w.bullets, removeBullet)
	w.powerups = compact(w.powerups, removePowerup)

	switch {
	case gameOver:
		return UpdateGameOver
	case w.stuckTimer >= w.cfg.Gameplay.StuckTimeout && len(w.balls) > 0:
		w.stuckTimer = 0
		return UpdateBallStuck
	}
	return UpdateNone
}

// lastChance reports whether an active gun, a bullet in flight or a
// falling Gun/BallsFive powerup could still save a game with no lives.
func (w *World) lastChance(removeBullet, removePowerup []bool) bool {
	if w.paddle.hasGun() {
		return true
	}
	if countKept(removeBullet, len(w.bullets)) > 0 {
		return true
	}
	for i, p := range w.powerups {
		if !removePowerup[i] && p.Kind.canStopGameOver() {
			return true
		}
	}
	return false
}

// breakTile hits the tile at index i. A tile that turns to Air scores,
// resets the stuck timer and advances the powerup drop counter.
func (w *World) breakTile(i int) {
	if !w.level.Break(i) {
		return
	}
	w.score += w.cfg.Scoring.Break
	w.stuckTimer = 0

	if w.nextPowerup == 0 {
		w.nextPowerup = w.rng.IntRange(w.cfg.Powerups.DropMin, w.cfg.Powerups.DropMax)
		spawnCarry := w.paddle.carries < w.cfg.Paddle.MaxCarries
		w.powerups = append(w.powerups,
			newPowerup(i, spawnCarry, w.rng, w.cfg.Powerups.MinFallSpeed, w.cfg.Powerups.MaxFallSpeed))
		return
	}
	w.nextPowerup--
}

// trailBalls splits every ball still in play into slower copies. The
// copies are shuffled and capped so a crowded field stays bounded.
func (w *World) trailBalls(removed []bool) {
	copies := w.cfg.Powerups.TrailCopies
	trail := make([]Ball, 0, len(w.balls)*copies)
	for i, b := range w.balls {
		if i < len(removed) && removed[i] {
			continue
		}
		angle := b.Vel.Angle()
		speed := 1.0
		for range copies {
			speed -= 0.1
			trail = append(trail, NewBall(b.Pos, angle, speed))
		}
	}
	w.rng.Shuffle(len(trail), func(i, j int) { trail[i], trail[j] = trail[j], trail[i] })
	if len(trail) > w.cfg.Powerups.MaxTrailBalls {
		trail = trail[:w.cfg.Powerups.MaxTrailBalls]
	}
	w.balls = append(w.balls, trail...)
}

// dispenseAngledBalls schedules a fan of balls rising from above the
// paddle, released one at a time.
func (w *World) dispenseAngledBalls(n int) {
	pos := core.V(w.paddle.x, w.view.Y-w.rng.Range(23, 40))
	rotation := w.rng.Range(-90, -75)
	step := w.rng.Range(5, 15)

	balls := make([]Ball, 0, n)
	for range n {
		balls = append(balls, NewBall(pos, rotation*math.Pi/180, 1))
		rotation += step
	}
	// An infinite timer releases the first ball on the next frame.
	w.dispense = append(w.dispense, dispenseBatch{timer: math.Inf(1), balls: balls})
}

// countKept returns how many of the first n entries are not flagged.
func countKept(flags []bool, n int) int {
	kept := n
	for _, f := range flags {
		if f {
			kept--
		}
	}
	return kept
}

// compact drops flagged entries, walking from the back so the indices of
// earlier entries stay valid. Entries past the end of flags are kept.
func compact[T any](items []T, flags []bool) []T {
	for i := len(flags) - 1; i >= 0; i-- {
		if flags[i] {
			items = append(items[:i], items[i+1:]...)
		}
	}
	return items
}
