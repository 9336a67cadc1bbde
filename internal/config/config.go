// Package config provides YAML-based tuning for the Tekkers simulation
// and the difficulty presets that adjust it.
package config

// Tuning contains every constant the simulation and input mapper read.
type Tuning struct {
	Physics   Physics   `yaml:"physics"`
	Arena     Arena     `yaml:"arena"`
	Cube      Cube      `yaml:"cube"`
	Paddle    Paddle    `yaml:"paddle"`
	Particles Particles `yaml:"particles"`
	Input     Input     `yaml:"input"`
}

// Physics defines integration and collision response parameters.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`            // Vertical acceleration (units/s^2, negative = down)
	MaxDeltaTime      float64 `yaml:"max_delta_time"`     // Upper clamp for a frame's dt in seconds
	AngularDamping    float64 `yaml:"angular_damping"`    // Per-frame multiplier on angular velocity
	WallRestitution   float64 `yaml:"wall_restitution"`   // Velocity kept after a wall bounce
	BounceRestitution float64 `yaml:"bounce_restitution"` // Vertical speed kept after a paddle bounce
	BounceBoost       float64 `yaml:"bounce_boost"`       // Vertical speed added on every paddle bounce
	OffsetScaleX      float64 `yaml:"offset_scale_x"`     // Hit offset divisor on X
	OffsetScaleZ      float64 `yaml:"offset_scale_z"`     // Hit offset divisor on Z
	DeflectGain       float64 `yaml:"deflect_gain"`       // Horizontal speed per unit of normalised offset
	SpinCoupling      float64 `yaml:"spin_coupling"`      // Angular velocity per unit of horizontal velocity
	SpinJitter        float64 `yaml:"spin_jitter"`        // Width of the random spin range
	FloorY            float64 `yaml:"floor_y"`            // Height below which the run ends
	FlashMillis       int     `yaml:"flash_millis"`       // Paddle flash duration after a bounce
}

// Arena defines the vertical walls of the play volume.
type Arena struct {
	WallX float64 `yaml:"wall_x"`
	WallZ float64 `yaml:"wall_z"`
}

// Cube defines cube size and spawn parameters.
type Cube struct {
	HalfExtent float64 `yaml:"half_extent"`
	SpawnY     float64 `yaml:"spawn_y"`
	SpawnSpeed float64 `yaml:"spawn_speed"` // Horizontal spawn speed is uniform in [-SpawnSpeed, SpawnSpeed)
}

// Paddle defines paddle geometry, contact tolerance and legal range.
type Paddle struct {
	Y         float64 `yaml:"y"`
	Thickness float64 `yaml:"thickness"`
	Width     float64 `yaml:"width"`
	Depth     float64 `yaml:"depth"`
	ContactX  float64 `yaml:"contact_x"`
	ContactZ  float64 `yaml:"contact_z"`
	RangeX    float64 `yaml:"range_x"`
	RangeZ    float64 `yaml:"range_z"`
}

// Particles defines the bounce burst.
type Particles struct {
	Count   int     `yaml:"count"`
	Spread  float64 `yaml:"spread"` // Horizontal velocity range width
	Lift    float64 `yaml:"lift"`   // Maximum initial upward velocity
	Gravity float64 `yaml:"gravity"`
	Decay   float64 `yaml:"decay"` // Life lost per second
}

// InputMode selects how pointer events are mapped onto the paddle plane.
type InputMode string

const (
	InputPointer InputMode = "pointer" // Pointer position drives both axes
	InputScroll  InputMode = "scroll"  // Pointer drives X, scroll wheel drives Z
	InputTouch   InputMode = "touch"   // Relative drag from the touch-down anchor
)

// Input defines how device input becomes a paddle target.
type Input struct {
	Mode          InputMode `yaml:"mode"`
	Smoothing     float64   `yaml:"smoothing"`      // Fraction of the remaining distance covered per frame
	SpanX         float64   `yaml:"span_x"`         // World units across the full device width
	SpanZ         float64   `yaml:"span_z"`         // World units across the full device height
	ScrollStep    float64   `yaml:"scroll_step"`    // Z units per scroll notch
	NudgeStep     float64   `yaml:"nudge_step"`     // Units per keyboard step
	TapMaxMillis  int       `yaml:"tap_max_millis"` // Longest press still treated as a tap
	DragThreshold float64   `yaml:"drag_threshold"` // Fraction of device size that turns a press into a drag
	DragGain      float64   `yaml:"drag_gain"`
}
