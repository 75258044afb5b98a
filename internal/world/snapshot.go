package world

import "math"

// Snapshot contains the complete simulation state in primitive types,
// used to compare runs for determinism.
type Snapshot struct {
	Score       int
	Lives       int
	Carries     int
	Carrying    bool
	PaddleX     float64
	PaddleWidth float64
	StuckTimer  float64
	NextPowerup int

	// Each ball is 4 floats: X, Y, VX, VY
	BallData []float64
	// Each powerup is 3 floats: Kind, X, Y
	PowerupData []float64
	// Each bullet is 2 floats: X, Y
	BulletData []float64

	Tiles    []int
	RNGState uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	balls := make([]float64, 0, len(w.balls)*4)
	for _, b := range w.balls {
		balls = append(balls, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	powerups := make([]float64, 0, len(w.powerups)*3)
	for _, p := range w.powerups {
		powerups = append(powerups, float64(p.Kind), p.Pos.X, p.Pos.Y)
	}
	bullets := make([]float64, 0, len(w.bullets)*2)
	for _, b := range w.bullets {
		bullets = append(bullets, b.Pos.X, b.Pos.Y)
	}
	grid := w.level.Grid()
	tiles := make([]int, len(grid))
	for i, t := range grid {
		tiles[i] = int(t)
	}

	return Snapshot{
		Score:       w.score,
		Lives:       int(w.lives),
		Carries:     w.paddle.carries,
		Carrying:    w.paddle.carrying(),
		PaddleX:     w.paddle.x,
		PaddleWidth: w.paddle.width,
		StuckTimer:  w.stuckTimer,
		NextPowerup: w.nextPowerup,
		BallData:    balls,
		PowerupData: powerups,
		BulletData:  bullets,
		Tiles:       tiles,
		RNGState:    w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Carries)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextPowerup) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + math.Float64bits(snap.StuckTimer)
	if snap.Carrying {
		h = h*31 + 1
	}

	for _, data := range [][]float64{snap.BallData, snap.PowerupData, snap.BulletData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	for _, v := range snap.Tiles {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h*31 + snap.RNGState
}
