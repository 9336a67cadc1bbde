package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tekkers/internal/config"
)

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen, reached once per program
	PhaseRunning                 // Cube in play
	PhaseGameOver                // Cube fell past the floor
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Cube is the juggled body. Rotation holds Euler angles in XYZ order.
type Cube struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Vec3
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	HalfExtent      float64
}

// Bottom returns the height of the cube's lower face.
func (c Cube) Bottom() float64 {
	return c.Position.Y() - c.HalfExtent
}

// Size returns the cube's edge length.
func (c Cube) Size() float64 {
	return c.HalfExtent * 2
}

// Paddle is the player-controlled surface. It moves on the XZ plane at a fixed height.
type Paddle struct {
	X, Z      float64 // Center on the XZ plane
	Y         float64 // Center height (fixed)
	Thickness float64
	Width     float64 // Extent on X
	Depth     float64 // Extent on Z
}

// NewPaddle creates a centred paddle from tuning.
func NewPaddle(cfg config.Paddle) Paddle {
	return Paddle{
		Y:         cfg.Y,
		Thickness: cfg.Thickness,
		Width:     cfg.Width,
		Depth:     cfg.Depth,
	}
}

// Top returns the height of the paddle's upper face.
func (p Paddle) Top() float64 {
	return p.Y + p.Thickness/2
}

// Center returns the paddle center as a vector.
func (p Paddle) Center() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// ClampDelta makes a frame delta safe to integrate.
// NaN and negative values become 0; anything above maxDT (including +Inf) becomes maxDT.
func ClampDelta(dt, maxDT float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}
