package world

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/level"
)

// bulletLength is the drawn height of a bullet; its hitbox is the pixel
// row just below the tip.
const bulletLength = 6

// Bullet is a shot fired by the paddle gun, travelling straight up.
type Bullet struct {
	Pos core.Vec2
}

type bulletHitKind int

const (
	bulletHitNone bulletHitKind = iota
	bulletHitTile
	bulletHitRoof
)

func (b *Bullet) rect() core.RectF {
	return core.RF(b.Pos.X, b.Pos.Y+bulletLength, 2, 1)
}

// update moves the bullet up and returns the first breakable tile it
// overlaps, if any.
func (b *Bullet) update(delta, speed float64, lvl *level.Level) (bulletHitKind, int) {
	b.Pos.Y -= delta * speed

	r := b.rect()
	for i := 0; i < level.Cells; i++ {
		t, _ := lvl.Tile(i)
		if t.Breakable() && level.TileRect(i).Overlaps(r) {
			return bulletHitTile, i
		}
	}
	if b.Pos.Y < -10 {
		return bulletHitRoof, 0
	}
	return bulletHitNone, 0
}
