package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTuning() {
		t.Errorf("embedded YAML differs from DefaultTuning():\n got %+v\nwant %+v", cfg, DefaultTuning())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: -30\ninput:\n  mode: touch\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != -30 {
		t.Errorf("Gravity = %v, expected -30", cfg.Physics.Gravity)
	}
	if cfg.Input.Mode != InputTouch {
		t.Errorf("Mode = %q, expected touch", cfg.Input.Mode)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.BounceBoost != 8 {
		t.Errorf("BounceBoost = %v, expected default 8", cfg.Physics.BounceBoost)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"positive gravity", func(c *Tuning) { c.Physics.Gravity = 5 }, "gravity"},
		{"zero dt cap", func(c *Tuning) { c.Physics.MaxDeltaTime = 0 }, "max_delta_time"},
		{"dt cap above a tenth", func(c *Tuning) { c.Physics.MaxDeltaTime = 0.5 }, "max_delta_time"},
		{"elastic walls", func(c *Tuning) { c.Physics.WallRestitution = 1.2 }, "wall_restitution"},
		{"bounce restitution", func(c *Tuning) { c.Physics.BounceRestitution = 1 }, "bounce_restitution"},
		{"floor above paddle", func(c *Tuning) { c.Physics.FloorY = 0 }, "floor_y"},
		{"smoothing zero", func(c *Tuning) { c.Input.Smoothing = 0 }, "smoothing"},
		{"unknown mode", func(c *Tuning) { c.Input.Mode = "gamepad" }, "input.mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTuning()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tekkers.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  wall_x: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.WallX != 20 {
		t.Errorf("WallX = %v, expected 20", cfg.Arena.WallX)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  gravity: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid tuning should fail")
	}
}

func TestMarshalRoundTripKeepsValidity(t *testing.T) {
	data, err := Marshal(DefaultTuning())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "bounce_boost: 8") {
		t.Errorf("marshalled YAML missing bounce_boost:\n%s", data)
	}
}

func TestPresets(t *testing.T) {
	base := DefaultTuning()

	easy := DefaultTuning()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Paddle.ContactX <= base.Paddle.ContactX {
		t.Error("easy preset should widen the paddle contact")
	}

	hard := DefaultTuning()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Paddle.ContactX >= base.Paddle.ContactX {
		t.Error("hard preset should narrow the paddle contact")
	}

	normal := DefaultTuning()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change tuning")
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
}

func TestParseRejectsLooseDeltaCap(t *testing.T) {
	if _, err := Parse([]byte("physics:\n  max_delta_time: 0.5\n")); err == nil {
		t.Error("Parse() should reject a dt cap above 0.1")
	}
	cfg, err := Parse([]byte("physics:\n  max_delta_time: 0.05\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.MaxDeltaTime != 0.05 {
		t.Errorf("MaxDeltaTime = %v, expected 0.05", cfg.Physics.MaxDeltaTime)
	}
}
