// Package sim implements the Tekkers simulation: a cube falls inside a walled
// volume and the player keeps it in the air with a paddle.
//
// Everything lives in a Game value. The platform calls Tick once per displayed
// frame and draws the returned Frame; there are no globals and no timers, so
// two Games with the same seed and inputs produce identical runs.
package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tekkers/internal/config"
	"github.com/vovakirdan/tekkers/internal/input"
)

// Frame is the renderable result of one tick.
type Frame struct {
	Tick      uint64
	Elapsed   float64 // Simulated seconds since the Game was created
	Phase     Phase
	Score     int
	HighScore int
	NewBest   bool
	Run       int
	Cube      Cube
	Paddle    Paddle
	Particles []Particle
	Events    []Event
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists the high score in store.
func WithStore(store KeyValueStore) Option {
	return func(g *Game) { g.store = store }
}

// WithRand sets the random source for spawn velocity, spin jitter and sparks.
func WithRand(rng Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewRand(seed) }
}

// WithLogger sets the logger for persistence warnings and phase changes.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// Game owns one session and everything it simulates.
type Game struct {
	tuning config.Tuning
	store  KeyValueStore
	rng    Rand
	logger *log.Logger

	session    *Session
	integrator Integrator
	mapper     *input.Mapper
	particles  *Particles

	cube   Cube
	paddle Paddle

	tick     uint64
	elapsed  float64
	runStart float64
	pending  []Event // Raised outside Tick, delivered with the next frame
	stopped  bool
	last     Frame
}

// New creates a Game in the NotStarted phase.
func New(tuning config.Tuning, opts ...Option) *Game {
	g := &Game{tuning: tuning}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(time.Now().UnixNano())
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.session = NewSession(NewHighScoreKeeper(g.store, g.logger))
	g.integrator = NewIntegrator(tuning, g.rng)
	g.mapper = input.New(tuning.Input, tuning.Paddle)
	g.particles = NewParticles(tuning.Particles)
	g.paddle = NewPaddle(tuning.Paddle)
	g.cube = g.spawnCube()
	g.cube.Velocity = mgl64.Vec3{}
	g.last = g.frame(nil)

	return g
}

// Input returns the mapper that input handlers write into.
func (g *Game) Input() *input.Mapper {
	return g.mapper
}

// Session returns the state machine.
func (g *Game) Session() *Session {
	return g.session
}

// Tuning returns the tuning the game was built with.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}

// Start begins a run if none is in progress: the cube respawns and the score resets.
// It returns false while running or after Stop.
func (g *Game) Start() bool {
	if g.stopped || !g.session.Start() {
		return false
	}
	g.cube = g.spawnCube()
	g.runStart = g.elapsed
	g.pending = append(g.pending, StartEvent{Run: g.session.Runs()})
	g.logger.Debug("run started", "run", g.session.Runs(), "high", g.session.HighScore())
	return true
}

// Restart is Start under the name used after a game over.
func (g *Game) Restart() bool {
	return g.Start()
}

// Resize forwards new viewport dimensions to the input mapper.
// Simulation state is unaffected.
func (g *Game) Resize(width, height int) {
	g.mapper.Resize(width, height)
}

// Stop tears the simulation down. Input is dropped and every later Tick
// returns the last frame unchanged.
func (g *Game) Stop() {
	g.stopped = true
	g.mapper.Disable()
	g.pending = nil
}

// Stopped reports whether Stop has been called.
func (g *Game) Stopped() bool {
	return g.stopped
}

// Tick advances one frame. dt is the wall-clock time since the previous tick
// in seconds; it is clamped before use.
func (g *Game) Tick(dt float64) Frame {
	if g.stopped {
		return g.last
	}
	dt = ClampDelta(dt, g.tuning.Physics.MaxDeltaTime)

	// A tap only means "start" when there is no run in progress
	if g.mapper.TakeTap() && !g.session.Running() {
		g.Start()
	}

	events := g.pending
	g.pending = nil

	// Paddle follows input in every phase
	g.paddle.X, g.paddle.Z = g.mapper.Apply(g.paddle.X, g.paddle.Z)

	if g.session.Running() {
		var stepEvents []Event
		g.cube, stepEvents = g.integrator.Step(g.cube, g.paddle, dt)
		events = append(events, stepEvents...)
		events = g.apply(stepEvents, events, dt)
	}

	g.particles.Update(dt)
	g.elapsed += dt
	g.tick++

	g.last = g.frame(events)
	return g.last
}

// apply feeds integrator events to the session and the particle set.
func (g *Game) apply(stepEvents, out []Event, dt float64) []Event {
	for _, ev := range stepEvents {
		switch e := ev.(type) {
		case BounceEvent:
			g.session.OnBounce()
			contact := mgl64.Vec3{e.Position.X(), g.paddle.Top(), e.Position.Z()}
			g.particles.Burst(contact, g.rng)
		case FloorBreachEvent:
			if g.session.OnFloorBreach() {
				over := GameOverEvent{
					Score:     g.session.Score(),
					HighScore: g.session.HighScore(),
					NewBest:   g.session.NewBest(),
					Duration:  time.Duration((g.elapsed + dt - g.runStart) * float64(time.Second)),
				}
				out = append(out, over)
				g.logger.Debug("run over", "score", over.Score, "high", over.HighScore, "best", over.NewBest)
			}
		}
	}
	return out
}

// spawnCube returns a cube at the spawn point with a small random horizontal drift.
func (g *Game) spawnCube() Cube {
	c := g.tuning.Cube
	return Cube{
		Position: mgl64.Vec3{0, c.SpawnY, 0},
		Velocity: mgl64.Vec3{
			symmetric(g.rng, c.SpawnSpeed),
			0,
			symmetric(g.rng, c.SpawnSpeed),
		},
		HalfExtent: c.HalfExtent,
	}
}

func (g *Game) frame(events []Event) Frame {
	return Frame{
		Tick:      g.tick,
		Elapsed:   g.elapsed,
		Phase:     g.session.Phase(),
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		NewBest:   g.session.NewBest(),
		Run:       g.session.Runs(),
		Cube:      g.cube,
		Paddle:    g.paddle,
		Particles: g.particles.Snapshot(),
		Events:    events,
	}
}
