package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			BallSize:         4,
			BallSpeed:        70,
			BulletSpeed:      200,
			BounceJitterMin:  1.0,
			BounceJitterMax:  1.05,
			MinBallSpeed:     1.0,
			MaxBallSpeed:     1.3,
			MaxBounceAngle:   60,
			BounceDeflection: 60,
		},
		Paddle: PaddleConfig{
			Speed:        100,
			Width:        20,
			LongWidth:    40,
			GrowthSpeed:  40,
			FloorOffset:  12,
			ShotCooldown: 0.3,
			MaxCarries:   3,
		},
		Powerups: PowerupConfig{
			GunDuration:      7,
			GrowDuration:     15,
			SafeDuration:     7,
			MinFallSpeed:     25,
			MaxFallSpeed:     40,
			FirstDropMax:     5,
			DropMin:          2,
			DropMax:          5,
			DispenseCount:    5,
			DispenseInterval: 0.25,
			TrailCopies:      4,
			MaxTrailBalls:    20,
		},
		Scoring: ScoringConfig{
			Break:  10,
			Pickup: 15,
		},
		Gameplay: GameplayConfig{
			Lives:        2,
			StuckTimeout: 30,
		},
		Editor: EditorConfig{
			HistoryCapacity: 50,
			PackDir:         "~/.breakout/packs",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
