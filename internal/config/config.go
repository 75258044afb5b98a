// Package config provides YAML-based tuning configuration and difficulty
// presets for the game and the level editor.
package config

// GameConfig contains every tunable constant of the simulation and editor.
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Editor     EditorConfig     `yaml:"editor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines ball and bullet motion. Distances are in pixels,
// speeds in pixels per second.
type PhysicsConfig struct {
	BallSize         float64 `yaml:"ball_size"`
	BallSpeed        float64 `yaml:"ball_speed"` // pixels per second at velocity length 1
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BounceJitterMin  float64 `yaml:"bounce_jitter_min"` // paddle bounce speed multiplier range
	BounceJitterMax  float64 `yaml:"bounce_jitter_max"`
	MinBallSpeed     float64 `yaml:"min_ball_speed"` // velocity length clamp after a paddle bounce
	MaxBallSpeed     float64 `yaml:"max_ball_speed"`
	MaxBounceAngle   float64 `yaml:"max_bounce_angle"` // degrees from straight up
	BounceDeflection float64 `yaml:"bounce_deflection"`
}

// PaddleConfig defines paddle movement, size and gun parameters.
type PaddleConfig struct {
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
	LongWidth    float64 `yaml:"long_width"`
	GrowthSpeed  float64 `yaml:"growth_speed"`
	FloorOffset  float64 `yaml:"floor_offset"` // distance from the bottom of the view
	ShotCooldown float64 `yaml:"shot_cooldown"`
	MaxCarries   int     `yaml:"max_carries"`
}

// PowerupConfig defines powerup durations, drop cadence and ball effects.
type PowerupConfig struct {
	GunDuration      float64 `yaml:"gun_duration"`
	GrowDuration     float64 `yaml:"grow_duration"`
	SafeDuration     float64 `yaml:"safe_duration"`
	MinFallSpeed     float64 `yaml:"min_fall_speed"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	FirstDropMax     int     `yaml:"first_drop_max"` // initial counter drawn from [0, first_drop_max)
	DropMin          int     `yaml:"drop_min"`       // re-rolled counter drawn from [drop_min, drop_max)
	DropMax          int     `yaml:"drop_max"`
	DispenseCount    int     `yaml:"dispense_count"`
	DispenseInterval float64 `yaml:"dispense_interval"`
	TrailCopies      int     `yaml:"trail_copies"`
	MaxTrailBalls    int     `yaml:"max_trail_balls"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	Break  int `yaml:"break"`
	Pickup int `yaml:"pickup"`
}

// GameplayConfig defines lives and stuck-ball detection.
type GameplayConfig struct {
	Lives        int     `yaml:"lives"`
	StuckTimeout float64 `yaml:"stuck_timeout"` // seconds without touching paddle or tiles
}

// EditorConfig defines level editor behaviour.
type EditorConfig struct {
	HistoryCapacity int    `yaml:"history_capacity"` // undo entries kept per level
	PackDir         string `yaml:"pack_dir"`
}

// DifficultyConfig defines the speed progression across a level pack.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score/level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value to a preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
