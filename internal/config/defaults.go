package config

import (
	_ "embed"
)

//go:embed defaults/tekkers.yaml
var defaultTuningYAML []byte

// MaxFrameDelta is the largest physics.max_delta_time a tuning may set, in seconds.
const MaxFrameDelta = 0.1

// DefaultTuning returns the built-in Tekkers tuning.
// It mirrors defaults/tekkers.yaml and is used when the embedded file cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: Physics{
			Gravity:           -20,
			MaxDeltaTime:      MaxFrameDelta,
			AngularDamping:    0.99,
			WallRestitution:   0.8,
			BounceRestitution: 0.85,
			BounceBoost:       8,
			OffsetScaleX:      2,
			OffsetScaleZ:      1,
			DeflectGain:       3,
			SpinCoupling:      0.5,
			SpinJitter:        5,
			FloorY:            -8,
			FlashMillis:       100,
		},
		Arena: Arena{
			WallX: 12,
			WallZ: 8,
		},
		Cube: Cube{
			HalfExtent: 0.5,
			SpawnY:     5,
			SpawnSpeed: 1,
		},
		Paddle: Paddle{
			Y:         -4,
			Thickness: 0.3,
			Width:     4,
			Depth:     4,
			ContactX:  2.5,
			ContactZ:  2.5,
			RangeX:    10,
			RangeZ:    6,
		},
		Particles: Particles{
			Count:   15,
			Spread:  10,
			Lift:    8,
			Gravity: -20,
			Decay:   2,
		},
		Input: Input{
			Mode:          InputPointer,
			Smoothing:     0.15,
			SpanX:         20,
			SpanZ:         12,
			ScrollStep:    0.75,
			NudgeStep:     1,
			TapMaxMillis:  250,
			DragThreshold: 0.02,
			DragGain:      1,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
