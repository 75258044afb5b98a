package world

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// Ball is a square projectile. Vel is a direction scaled by a speed
// factor; the pixel speed is Vel times the configured ball speed.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// NewBall creates a ball moving at angle radians (clockwise from +X) with
// the given speed factor.
func NewBall(pos core.Vec2, angle, speed float64) Ball {
	return Ball{Pos: pos, Vel: core.FromAngle(angle).Scale(speed)}
}

// ballHitKind is what a ball touched during one update.
type ballHitKind int

const (
	ballHitNone ballHitKind = iota
	ballHitPaddle
	ballHitFloor
	ballHitTiles
)

// ballHit reports the outcome of one ball update. Tiles lists every
// non-air tile the ball touched; tiles take precedence over the floor,
// and the floor over the paddle.
type ballHit struct {
	kind  ballHitKind
	tiles []int
}

// ballEnv is the read-only context a ball collides against.
type ballEnv struct {
	phys   config.PhysicsConfig
	level  *level.Level
	paddle *Paddle
	safe   bool
	view   core.Vec2
	rng    *RNG
}

func (b *Ball) box(at core.Vec2, size float64) core.RectF {
	return core.RF(at.X, at.Y, size, size)
}

// update advances the ball by delta seconds and resolves collisions.
func (b *Ball) update(delta float64, env ballEnv) ballHit {
	size := env.phys.BallSize
	prev := b.Pos
	bounceX, bounceY := false, false

	b.Pos = b.Pos.Add(b.Vel.Scale(delta * env.phys.BallSpeed))

	// Only the 3×3 tile neighbourhood around the ball can be touched.
	var hits []int
	cellW := level.TileW + level.TileGap
	cellH := level.TileH + level.TileGap
	tx := b.Pos.X / cellW
	ty := (b.Pos.Y - level.PaddingTop*cellH) / cellH
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			i, ok := level.Index(int(math.Floor(tx+float64(dx))), int(math.Floor(ty+float64(dy))))
			if !ok {
				continue
			}
			if t, _ := env.level.Tile(i); t == level.Air {
				continue
			}

			r := level.TileRect(i)
			touched := false
			if r.Overlaps(b.box(core.V(b.Pos.X, prev.Y), size)) {
				bounceX = true
				touched = true
			}
			if r.Overlaps(b.box(core.V(prev.X, b.Pos.Y), size)) {
				bounceY = true
				touched = true
			}
			if touched {
				hits = append(hits, i)
			}
		}
	}

	hitPaddle := false
	if b.Vel.Y > 0 && env.paddle.collisionRect().Overlaps(b.box(core.V(prev.X, b.Pos.Y), size)) {
		b.Pos = prev
		hitPaddle = true
		d := env.paddle.centerDist(b.Pos.X + size/2)
		jitter := env.rng.Range(env.phys.BounceJitterMin, env.phys.BounceJitterMax)
		b.Vel = paddleBounce(b.Vel, d, jitter, env.phys)
		// paddleBounce returns the upward velocity; the vertical flip
		// below is shared with tile hits on the same frame.
		b.Vel.Y = -b.Vel.Y
		bounceY = true
	}

	if (b.Pos.X <= 0 && b.Vel.X < 0) || (b.Pos.X >= env.view.X-size && b.Vel.X > 0) {
		bounceX = true
	}
	if (b.Pos.Y <= 0 && b.Vel.Y < 0) || (env.safe && b.Pos.Y >= env.view.Y-size && b.Vel.Y > 0) {
		prev.Y = math.Min(prev.Y, env.view.Y-size)
		bounceY = true
	}

	if bounceX {
		b.Pos.X = prev.X
		b.Vel.X = -b.Vel.X
	}
	if bounceY {
		b.Pos.Y = prev.Y
		b.Vel.Y = -b.Vel.Y
	}

	switch {
	case len(hits) > 0:
		return ballHit{kind: ballHitTiles, tiles: hits}
	case b.Pos.Y >= env.view.Y:
		return ballHit{kind: ballHitFloor}
	case hitPaddle:
		return ballHit{kind: ballHitPaddle}
	}
	return ballHit{kind: ballHitNone}
}

// paddleBounce returns the velocity of a ball leaving the paddle.
//
// The reflected direction is measured from straight up and pushed towards
// the side of the paddle that was hit: d is -1 at the left edge, 0 at the
// centre and 1 at the right edge. The angle is clamped to MaxBounceAngle
// and the speed factor, scaled by jitter, to [MinBallSpeed, MaxBallSpeed].
func paddleBounce(vel core.Vec2, d, jitter float64, phys config.PhysicsConfig) core.Vec2 {
	toRad := math.Pi / 180
	limit := phys.MaxBounceAngle * toRad

	theta := math.Atan2(vel.X, math.Abs(vel.Y))
	theta = core.Clamp(theta+phys.BounceDeflection*toRad*core.Clamp(d, -1, 1), -limit, limit)

	speed := core.Clamp(vel.Len()*jitter, phys.MinBallSpeed, phys.MaxBallSpeed)
	return core.V(math.Sin(theta), -math.Cos(theta)).Scale(speed)
}
