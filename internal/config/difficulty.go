package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets change how forgiving the paddle is; nothing ramps during a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the tuning based on a difficulty preset.
// Normal and the empty preset leave the tuning untouched.
func ApplyPreset(t *Tuning, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		t.Paddle.ContactX *= 1.3
		t.Paddle.ContactZ *= 1.3
		t.Paddle.Width *= 1.3
		t.Paddle.Depth *= 1.3
		t.Physics.BounceBoost *= 0.85
	case DifficultyHard:
		t.Paddle.ContactX *= 0.7
		t.Paddle.ContactZ *= 0.7
		t.Paddle.Width *= 0.7
		t.Paddle.Depth *= 0.7
		t.Physics.BounceBoost *= 1.2
	}
}
