package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Event is something that happened during a tick.
// The set of events is closed; switch on the concrete type.
type Event interface {
	simEvent()
}

// BounceEvent is emitted on a valid paddle contact.
type BounceEvent struct {
	Position mgl64.Vec3 // Cube center at the moment of contact
}

func (BounceEvent) simEvent() {}

// FloorBreachEvent is emitted when the cube drops below the termination height.
type FloorBreachEvent struct {
	Y float64
}

func (FloorBreachEvent) simEvent() {}

// FlashEvent asks the presentation layer to highlight the paddle for Duration.
// The core never schedules it itself.
type FlashEvent struct {
	Duration time.Duration
}

func (FlashEvent) simEvent() {}

// StartEvent is emitted when a run begins.
type StartEvent struct {
	Run int // 1-based run number within this Game
}

func (StartEvent) simEvent() {}

// GameOverEvent is emitted once per run when the session enters GameOver.
type GameOverEvent struct {
	Score     int
	HighScore int
	NewBest   bool
	Duration  time.Duration // Simulated time the run lasted
}

func (GameOverEvent) simEvent() {}
