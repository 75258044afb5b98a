package world

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled bat. It may hold one carried ball and
// keeps a count of spare carries that let it catch balls on contact.
type Paddle struct {
	cfg    config.PaddleConfig
	ball   float64 // ball size
	view   core.Vec2
	x      float64
	vel    float64 // -1, 0 or 1 this frame
	width  float64
	target float64

	carries int
	carry   *Ball
	carryX  float64 // carried ball offset from the paddle's left edge

	// Remaining seconds of each timed powerup; zero when inactive.
	long float64
	gun  float64
	safe float64

	shotTimer float64
}

func newPaddle(cfg config.PaddleConfig, ballSize float64, view core.Vec2, x *float64, carries int) *Paddle {
	p := &Paddle{
		cfg:       cfg,
		ball:      ballSize,
		view:      view,
		width:     cfg.Width,
		target:    cfg.Width,
		carries:   carries,
		shotTimer: math.Inf(-1),
	}
	if x != nil {
		p.x = *x
	} else {
		p.x = (view.X - cfg.Width) / 2
	}
	p.carryNew()
	return p
}

// Y returns the top edge.
func (p *Paddle) Y() float64 { return p.view.Y - p.cfg.FloorOffset }

func (p *Paddle) carrying() bool { return p.carry != nil }

func (p *Paddle) hasGun() bool { return p.gun > 0 }

func (p *Paddle) ballsSafe() bool { return p.safe > 0 }

// safeVisible blinks the safety net during its last 1.5 seconds.
func (p *Paddle) safeVisible() bool {
	return p.safe > 0 && (math.Mod(p.safe, 0.25) <= 0.125 || p.safe > 1.5)
}

// centerDist maps x to -1 at the left edge, 0 at the centre and 1 at the
// right edge, clamped.
func (p *Paddle) centerDist(x float64) float64 {
	half := p.width / 2
	return core.Clamp((x-(p.x+half))/half, -1, 1)
}

// collisionRect is the thin top surface that balls and powerups hit.
func (p *Paddle) collisionRect() core.RectF {
	return core.RF(p.x, p.Y(), p.width-2, 0.01)
}

func (p *Paddle) canCarry(held bool) bool {
	return p.carries > 0 && p.carry == nil && held
}

// carryBall catches b on the paddle, spending one carry.
func (p *Paddle) carryBall(b Ball) {
	if p.carries > 0 {
		p.carries--
	}
	p.carryX = b.Pos.X - p.x
	p.carry = &b
	p.placeCarry()
}

// carryNew places a fresh ball in the middle of the paddle.
func (p *Paddle) carryNew() {
	p.carry = &Ball{}
	p.carryX = (p.width - p.ball) / 2
	p.placeCarry()
}

func (p *Paddle) placeCarry() {
	if p.carry == nil {
		return
	}
	p.carryX = core.Clamp(p.carryX, 0, p.width-p.ball)
	p.carry.Pos = core.V(p.x+p.carryX, p.Y()-p.ball)
	// Launch diagonally up, leaning the way the paddle moves.
	dir := 1.0
	if p.vel < 0 {
		dir = -1
	}
	p.carry.Vel = core.V(dir*math.Sqrt2/2, -math.Sqrt2/2)
}

// Timed powerups restart their countdown when picked up again.
func (p *Paddle) powerupGun(d float64)  { p.gun = d }
func (p *Paddle) powerupGrow(d float64) { p.long = d }
func (p *Paddle) powerupSafe(d float64) { p.safe = d }

func (p *Paddle) powerupCarry() {
	if p.carries < p.cfg.MaxCarries {
		p.carries++
	}
}

// update advances timers, fires the gun, animates width, moves the paddle
// and returns the carried ball if it was launched this frame.
func (p *Paddle) update(delta float64, in core.Controls, bullets *[]Bullet) *Ball {
	prevX := p.x

	for _, t := range []*float64{&p.gun, &p.long, &p.safe} {
		if *t > 0 {
			*t -= delta
			if *t <= 0 {
				*t = 0
			}
		}
	}

	p.shotTimer -= delta
	if in.Fire && p.gun > 0 && p.shotTimer <= 0 {
		p.shotTimer = p.cfg.ShotCooldown
		*bullets = append(*bullets,
			Bullet{Pos: core.V(p.x+2, p.Y())},
			Bullet{Pos: core.V(p.x-2+p.width, p.Y())},
		)
	}

	p.target = p.cfg.Width
	if p.long > 0 {
		p.target = p.cfg.LongWidth
	}
	if p.width != p.target {
		change := delta * p.cfg.GrowthSpeed
		if p.width > p.target {
			change = -change
		}
		p.width = core.Clamp(p.width+change, math.Min(p.width, p.target), math.Max(p.width, p.target))
		// Grow around the centre and keep the carried ball still.
		p.x -= change / 2
		p.carryX += prevX - p.x
	}

	p.vel = 0
	if in.Left {
		p.x -= delta * p.cfg.Speed
		p.vel--
	}
	if in.Right {
		p.x += delta * p.cfg.Speed
		p.vel++
	}
	p.x = core.Clamp(p.x, 0, p.view.X-p.width)

	p.placeCarry()

	if in.CarryReleased && p.carry != nil {
		b := *p.carry
		p.carry = nil
		return &b
	}
	return nil
}
