package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Tekkers tuning.
// Search order: customPath -> ~/.tekkers/config.yaml -> ./configs/tekkers.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it cares about.
func Load(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Tuning{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tekkers.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTuningYAML)
	if err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default tuning and validates the result.
func Parse(data []byte) (Tuning, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}
	return cfg, nil
}

// Marshal encodes the tuning as YAML.
func Marshal(t Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode tuning: %w", err)
	}
	return data, nil
}

// Validate rejects values the integrator cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := t.Physics
	check(p.Gravity < 0, "physics.gravity must be negative, got %v", p.Gravity)
	check(p.MaxDeltaTime > 0 && p.MaxDeltaTime <= MaxFrameDelta,
		"physics.max_delta_time must be in (0,%v], got %v", MaxFrameDelta, p.MaxDeltaTime)
	check(p.AngularDamping > 0 && p.AngularDamping <= 1, "physics.angular_damping must be in (0,1], got %v", p.AngularDamping)
	check(p.WallRestitution > 0 && p.WallRestitution < 1, "physics.wall_restitution must be in (0,1), got %v", p.WallRestitution)
	check(p.BounceRestitution > 0 && p.BounceRestitution < 1, "physics.bounce_restitution must be in (0,1), got %v", p.BounceRestitution)
	check(p.BounceBoost >= 0, "physics.bounce_boost must not be negative, got %v", p.BounceBoost)
	check(p.OffsetScaleX > 0 && p.OffsetScaleZ > 0, "physics.offset_scale_x/z must be positive")
	check(p.FloorY < t.Paddle.Y, "physics.floor_y (%v) must be below paddle.y (%v)", p.FloorY, t.Paddle.Y)
	check(p.FlashMillis >= 0, "physics.flash_millis must not be negative")

	check(t.Arena.WallX > 0 && t.Arena.WallZ > 0, "arena walls must be positive")
	check(t.Cube.HalfExtent > 0, "cube.half_extent must be positive, got %v", t.Cube.HalfExtent)
	check(t.Cube.SpawnY > t.Paddle.Y, "cube.spawn_y must be above the paddle")
	check(t.Cube.SpawnSpeed >= 0, "cube.spawn_speed must not be negative")

	check(t.Paddle.RangeX >= 0 && t.Paddle.RangeZ >= 0, "paddle range must not be negative")
	check(t.Paddle.ContactX > 0 && t.Paddle.ContactZ > 0, "paddle contact tolerance must be positive")
	check(t.Particles.Count >= 0, "particles.count must not be negative")
	check(t.Particles.Decay > 0, "particles.decay must be positive")

	in := t.Input
	check(in.Smoothing > 0 && in.Smoothing <= 1, "input.smoothing must be in (0,1], got %v", in.Smoothing)
	check(in.Mode == InputPointer || in.Mode == InputScroll || in.Mode == InputTouch,
		"input.mode must be pointer, scroll or touch, got %q", in.Mode)
	check(in.TapMaxMillis > 0, "input.tap_max_millis must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tekkers", filename)
}
