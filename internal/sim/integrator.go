package sim

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tekkers/internal/config"
)

// Integrator advances the cube one frame and resolves its contacts.
//
// Collision tests are axis-aligned proximity checks, not swept tests. A cube
// moving fast enough to cross the paddle's contact band in one frame passes
// through it. Walls are resolved before the paddle.
type Integrator struct {
	physics config.Physics
	arena   config.Arena
	paddle  config.Paddle
	rng     Rand
}

// NewIntegrator creates an integrator from tuning. rng supplies bounce spin jitter.
func NewIntegrator(t config.Tuning, rng Rand) Integrator {
	return Integrator{
		physics: t.Physics,
		arena:   t.Arena,
		paddle:  t.Paddle,
		rng:     rng,
	}
}

// Step integrates one frame with semi-implicit Euler and returns the new cube
// state plus the events raised. dt must already be clamped.
func (in Integrator) Step(cube Cube, paddle Paddle, dt float64) (Cube, []Event) {
	var events []Event
	p := in.physics

	// Gravity, then position with the updated velocity
	cube.Velocity[1] += p.Gravity * dt
	cube.Position = cube.Position.Add(cube.Velocity.Mul(dt))

	// Rotation, then exponential spin decay
	cube.Rotation = cube.Rotation.Add(cube.AngularVelocity.Mul(dt))
	cube.AngularVelocity = cube.AngularVelocity.Mul(p.AngularDamping)

	// Walls on X (index 0) and Z (index 2); the floor is not a wall
	in.bounceWall(&cube, 0, in.arena.WallX)
	in.bounceWall(&cube, 2, in.arena.WallZ)

	if in.paddleContact(cube, paddle) {
		in.bouncePaddle(&cube, paddle)
		events = append(events,
			BounceEvent{Position: cube.Position},
			FlashEvent{Duration: time.Duration(p.FlashMillis) * time.Millisecond},
		)
	}

	if cube.Position.Y() < p.FloorY {
		events = append(events, FloorBreachEvent{Y: cube.Position.Y()})
	}

	return cube, events
}

// bounceWall reflects one horizontal axis against a symmetric bound.
func (in Integrator) bounceWall(cube *Cube, axis int, bound float64) {
	pos := cube.Position[axis]
	vel := cube.Velocity[axis]

	switch {
	case pos > bound:
		cube.Position[axis] = bound
		if vel > 0 {
			cube.Velocity[axis] = -vel * in.physics.WallRestitution
		}
	case pos < -bound:
		cube.Position[axis] = -bound
		if vel < 0 {
			cube.Velocity[axis] = -vel * in.physics.WallRestitution
		}
	}
}

// paddleContact reports whether the cube is resting on or just sinking into the
// paddle's top face while descending and within the contact rectangle.
func (in Integrator) paddleContact(cube Cube, paddle Paddle) bool {
	top := paddle.Top()
	bottom := cube.Bottom()

	if bottom > top || bottom < top-cube.Size() {
		return false
	}
	if cube.Velocity.Y() >= 0 {
		return false
	}
	return math.Abs(cube.Position.X()-paddle.X) < in.paddle.ContactX &&
		math.Abs(cube.Position.Z()-paddle.Z) < in.paddle.ContactZ
}

// bouncePaddle applies the paddle response. The boost term adds energy on
// every bounce so a well-placed paddle can keep the rally going forever.
func (in Integrator) bouncePaddle(cube *Cube, paddle Paddle) {
	p := in.physics

	cube.Velocity[1] = math.Abs(cube.Velocity.Y())*p.BounceRestitution + p.BounceBoost

	// Off-center hits deflect the cube away from the paddle center
	offsetX := (cube.Position.X() - paddle.X) / p.OffsetScaleX
	offsetZ := (cube.Position.Z() - paddle.Z) / p.OffsetScaleZ
	cube.Velocity[0] += offsetX * p.DeflectGain
	cube.Velocity[2] += offsetZ * p.DeflectGain

	// Visual spin only; it never feeds back into the linear motion
	jitter := p.SpinJitter / 2
	cube.AngularVelocity = mgl64.Vec3{
		cube.Velocity.Z()*p.SpinCoupling + symmetric(in.rng, jitter),
		symmetric(in.rng, jitter),
		cube.Velocity.X() * p.SpinCoupling,
	}
}
