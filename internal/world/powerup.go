package world

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// PowerupKind identifies the effect of a falling powerup.
type PowerupKind int

const (
	PaddleCarry PowerupKind = iota // one more carry
	PaddleGun                      // paddle fires bullets
	PaddleGrow                     // paddle grows wide
	Zap                            // never spawned
	BallsFive                      // five balls dispensed from the paddle
	BallsTrail                     // every ball splits into slower copies
	BallsSafe                      // safety net over the floor
)

// String returns the name of the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PaddleCarry:
		return "Carry"
	case PaddleGun:
		return "Gun"
	case PaddleGrow:
		return "Grow"
	case Zap:
		return "Zap"
	case BallsFive:
		return "Five"
	case BallsTrail:
		return "Trail"
	case BallsSafe:
		return "Safe"
	default:
		return "?"
	}
}

// Label returns the three-character label drawn on the falling capsule.
func (k PowerupKind) Label() string {
	switch k {
	case PaddleCarry:
		return "(C)"
	case PaddleGun:
		return "(G)"
	case PaddleGrow:
		return "(W)"
	case Zap:
		return "(Z)"
	case BallsFive:
		return "(5)"
	case BallsTrail:
		return "(T)"
	case BallsSafe:
		return "(S)"
	default:
		return "(?)"
	}
}

// Color returns the capsule color.
func (k PowerupKind) Color() core.Color {
	switch k {
	case PaddleCarry:
		return core.ColorBrightCyan
	case PaddleGun:
		return core.ColorBrightRed
	case PaddleGrow:
		return core.ColorBrightGreen
	case BallsFive:
		return core.ColorBrightYellow
	case BallsTrail:
		return core.ColorBrightMagenta
	case BallsSafe:
		return core.ColorBrightBlue
	default:
		return core.ColorGray
	}
}

// canStopGameOver reports whether a falling powerup of this kind could
// still bring a ball back into play.
func (k PowerupKind) canStopGameOver() bool {
	return k == PaddleGun || k == BallsFive
}

// Powerup capsule size in pixels.
const (
	powerupW = 13
	powerupH = 7
)

// Powerup is a falling capsule released by a broken tile.
type Powerup struct {
	Pos       core.Vec2
	Kind      PowerupKind
	FallSpeed float64
}

// spawnPool lists the kinds a broken tile can release. PaddleCarry is
// appended only while the paddle can still gain carries.
var spawnPool = []PowerupKind{PaddleGun, PaddleGrow, BallsFive, BallsTrail, BallsSafe}

func newPowerup(tileIndex int, spawnCarry bool, rng *RNG, minFall, maxFall float64) Powerup {
	n := len(spawnPool)
	if spawnCarry {
		n++
	}
	kind := PaddleCarry
	if k := rng.Intn(n); k < len(spawnPool) {
		kind = spawnPool[k]
	}
	return Powerup{
		Pos:       level.TilePos(tileIndex).Sub(core.V(1, 1)),
		Kind:      kind,
		FallSpeed: rng.Range(minFall, maxFall),
	}
}

func (p *Powerup) rect() core.RectF {
	return core.RF(p.Pos.X, p.Pos.Y, powerupW, powerupH)
}

type powerupHitKind int

const (
	powerupHitNone powerupHitKind = iota
	powerupHitPaddle
	powerupHitFloor
)

func (p *Powerup) update(delta float64, paddle *Paddle, view core.Vec2) powerupHitKind {
	p.Pos.Y += delta * p.FallSpeed

	switch {
	case paddle.collisionRect().Overlaps(p.rect()):
		return powerupHitPaddle
	case p.Pos.Y >= view.Y+powerupH:
		return powerupHitFloor
	}
	return powerupHitNone
}
