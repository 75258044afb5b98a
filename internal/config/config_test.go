package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded YAML differs from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nphysics:\n  ball_speed: 90\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Physics.BallSpeed != 90 {
		t.Errorf("BallSpeed = %v, expected 90", cfg.Physics.BallSpeed)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Paddle.Width != 20 {
		t.Errorf("Paddle.Width = %v, expected default 20", cfg.Paddle.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 4, true},
		{DifficultyNormal, 2, true},
		{DifficultyHard, 1, true},
		{DifficultyFixed, 2, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Speed(70, 0, 0); got != 70 {
		t.Errorf("Speed at first level = %v, expected 70", got)
	}
	if got := dm.Speed(70, 0, 100); math.Abs(got-91) > 1e-9 {
		t.Errorf("Speed past max_at = %v, expected 91", got)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if got := dm.Speed(70, 5000, 10); got != 70 {
		t.Errorf("Speed with progression disabled = %v, expected 70", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/packs"); got != filepath.Join(home, "packs") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}
