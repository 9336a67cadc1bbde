// Package input maps raw pointer, scroll, drag and tap events onto a paddle
// target on the XZ plane. It knows nothing about the event source: the
// platform layer forwards device coordinates and the simulation reads the
// latest target once per frame.
//
// A Mapper is not safe for concurrent use. Event handlers and the frame
// callback must run on the same goroutine (Bubble Tea's update loop does this).
package input

import (
	"math"
	"time"

	"github.com/vovakirdan/tekkers/internal/config"
)

// Target is a position on the paddle plane.
type Target struct {
	X, Z float64
}

// Mapper turns device input into a smoothed, clamped paddle position.
type Mapper struct {
	cfg    config.Input
	rangeX float64
	rangeZ float64

	width  float64
	height float64

	target Target

	// Press tracking for tap and drag detection
	pressed      bool
	pressAt      time.Time
	anchorX      float64
	anchorY      float64
	anchorTarget Target
	dragged      bool

	tapPending bool
	disabled   bool
}

// New creates a mapper for the given input tuning and paddle range.
// The device size defaults to 1x1 until Resize is called.
func New(cfg config.Input, paddle config.Paddle) *Mapper {
	return &Mapper{
		cfg:    cfg,
		rangeX: paddle.RangeX,
		rangeZ: paddle.RangeZ,
		width:  1,
		height: 1,
	}
}

// Resize updates the device dimensions used to normalise coordinates.
// Non-positive sizes are ignored.
func (m *Mapper) Resize(width, height int) {
	if width > 0 {
		m.width = float64(width)
	}
	if height > 0 {
		m.height = float64(height)
	}
}

// Size returns the current device dimensions.
func (m *Mapper) Size() (width, height float64) {
	return m.width, m.height
}

// Mode returns the configured input mode.
func (m *Mapper) Mode() config.InputMode {
	return m.cfg.Mode
}

// SetPointerTarget maps an absolute pointer position to a target on both axes.
// Left/right of the device is X, top/bottom is far/near Z.
func (m *Mapper) SetPointerTarget(x, y float64) {
	if m.disabled {
		return
	}
	m.setTarget(m.mapX(x), m.mapZ(y))
}

// SetPointerX maps an absolute pointer position to X only. Z is left to Scroll.
func (m *Mapper) SetPointerX(x float64) {
	if m.disabled {
		return
	}
	m.setTarget(m.mapX(x), m.target.Z)
}

// Scroll moves the Z target by delta notches (positive = towards the viewer).
func (m *Mapper) Scroll(delta float64) {
	if m.disabled {
		return
	}
	m.setTarget(m.target.X, m.target.Z+delta*m.cfg.ScrollStep)
}

// Nudge moves the target by whole keyboard steps.
func (m *Mapper) Nudge(dx, dz float64) {
	if m.disabled {
		return
	}
	m.setTarget(m.target.X+dx*m.cfg.NudgeStep, m.target.Z+dz*m.cfg.NudgeStep)
}

// Move dispatches a pointer motion according to the input mode.
func (m *Mapper) Move(x, y float64) {
	if m.disabled {
		return
	}
	if m.pressed {
		m.trackDrag(x, y)
	}

	switch m.cfg.Mode {
	case config.InputTouch:
		if m.pressed {
			m.SetDragDelta(x-m.anchorX, y-m.anchorY)
		}
	case config.InputScroll:
		m.SetPointerX(x)
	default:
		m.SetPointerTarget(x, y)
	}
}

// Press records a touch-down or button-down at device coordinates.
func (m *Mapper) Press(x, y float64, at time.Time) {
	if m.disabled {
		return
	}
	m.pressed = true
	m.pressAt = at
	m.anchorX = x
	m.anchorY = y
	m.anchorTarget = m.target
	m.dragged = false
}

// SetDragDelta places the target relative to the anchor captured by Press.
// The delta is in device units and is normalised by device size.
func (m *Mapper) SetDragDelta(dx, dy float64) {
	if m.disabled {
		return
	}
	gain := m.cfg.DragGain
	m.setTarget(
		m.anchorTarget.X+dx/m.width*m.cfg.SpanX*gain,
		m.anchorTarget.Z+dy/m.height*m.cfg.SpanZ*gain,
	)
}

// Release ends a press. A short press that never became a drag is a tap;
// Release reports it and queues it for the next frame.
func (m *Mapper) Release(at time.Time) bool {
	if m.disabled || !m.pressed {
		return false
	}
	m.pressed = false

	held := at.Sub(m.pressAt)
	if held < 0 || held >= time.Duration(m.cfg.TapMaxMillis)*time.Millisecond || m.dragged {
		return false
	}
	m.tapPending = true
	return true
}

// NotifyTap queues a discrete activate signal.
func (m *Mapper) NotifyTap() {
	if m.disabled {
		return
	}
	m.tapPending = true
}

// TakeTap returns whether a tap is pending and clears it.
func (m *Mapper) TakeTap() bool {
	tap := m.tapPending
	m.tapPending = false
	return tap
}

// Pressed reports whether a press is in progress.
func (m *Mapper) Pressed() bool {
	return m.pressed
}

// Dragging reports whether the current press has moved past the drag threshold.
func (m *Mapper) Dragging() bool {
	return m.pressed && m.dragged
}

// Target returns the latest paddle target.
func (m *Mapper) Target() Target {
	return m.target
}

// Apply moves a paddle position one smoothing step towards the target
// and clamps it to the paddle's legal rectangle.
func (m *Mapper) Apply(x, z float64) (float64, float64) {
	k := m.cfg.Smoothing
	x += (m.target.X - x) * k
	z += (m.target.Z - z) * k
	return clamp(x, -m.rangeX, m.rangeX), clamp(z, -m.rangeZ, m.rangeZ)
}

// Disable drops all further input. Used when the simulation is torn down.
func (m *Mapper) Disable() {
	m.disabled = true
	m.pressed = false
	m.tapPending = false
}

func (m *Mapper) trackDrag(x, y float64) {
	if m.dragged {
		return
	}
	dx := math.Abs(x-m.anchorX) / m.width
	dy := math.Abs(y-m.anchorY) / m.height
	if dx > m.cfg.DragThreshold || dy > m.cfg.DragThreshold {
		m.dragged = true
	}
}

func (m *Mapper) mapX(x float64) float64 {
	return (x/m.width - 0.5) * m.cfg.SpanX
}

func (m *Mapper) mapZ(y float64) float64 {
	return (y/m.height - 0.5) * m.cfg.SpanZ
}

func (m *Mapper) setTarget(x, z float64) {
	if math.IsNaN(x) || math.IsNaN(z) {
		return
	}
	m.target = Target{
		X: clamp(x, -m.rangeX, m.rangeX),
		Z: clamp(z, -m.rangeZ, m.rangeZ),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
