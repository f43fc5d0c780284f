// Package movement simulates a platformer character: horizontal
// acceleration, apex-derived jumping with a double jump, and a timed dash.
package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is the rigid body the simulator drives. Velocity is written once per
// tick and never read back.
type Body interface {
	Position() cp.Vector
	SetVelocity(v cp.Vector)
}

// GroundProbe answers whether an axis-aligned box centred at center overlaps
// any geometry whose layer is in mask.
type GroundProbe interface {
	OverlapBox(center, size cp.Vector, mask uint) bool
}

// Input is one tick's worth of player intent.
type Input struct {
	MoveX       float64
	JumpHeld    bool
	JumpPressed bool
	DashPressed bool
}

// Simulator owns the kinematic and logical state of one character. It is
// not safe for concurrent use; step it from a single tick callback.
type Simulator struct {
	cfg    Config
	consts Constants

	body  Body
	probe GroundProbe

	velocity cp.Vector
	facing   Direction
	grounded bool
	dead     bool

	current  State
	previous State

	dashing           bool
	dashTimer         float64
	dashCooldownTimer float64

	canDoubleJump   bool
	hasDoubleJumped bool
}

// New validates cfg and returns a simulator at rest. body and probe must be
// non-nil before the first Tick.
func New(cfg Config, body Body, probe GroundProbe) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		cfg:      cfg,
		consts:   cfg.Derive(),
		body:     body,
		probe:    probe,
		facing:   DirectionRight,
		current:  StateIdle,
		previous: StateIdle,
	}, nil
}

// Configure replaces the tunables and recomputes the derived constants.
// Kinematic state is kept.
func (s *Simulator) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.consts = cfg.Derive()
	return nil
}

// Tick advances the simulation by dt seconds and writes the resulting
// velocity to the body.
func (s *Simulator) Tick(dt float64, in Input) (cp.Vector, State) {
	s.previous = s.current

	s.checkGround()

	if s.dead || s.current == StateDead {
		s.current = StateDead
		s.body.SetVelocity(s.velocity)
		return s.velocity, s.current
	}

	s.current = NextState(s.current, s.grounded, s.velocity.X)

	// Facing follows input even mid-dash; the dash itself keeps the
	// direction it started with.
	if in.MoveX < 0 {
		s.facing = DirectionLeft
	} else if in.MoveX > 0 {
		s.facing = DirectionRight
	}

	if s.dashing {
		s.dashUpdate(dt)
	} else {
		s.movementUpdate(dt, in)
	}

	s.jumpUpdate(in)

	if s.grounded {
		s.velocity.Y = 0
	} else {
		s.velocity.Y += s.consts.Gravity * dt
	}

	s.body.SetVelocity(s.velocity)

	if s.dashCooldownTimer > 0 {
		s.dashCooldownTimer -= dt
	}

	return s.velocity, s.current
}

func (s *Simulator) checkGround() {
	pos := s.body.Position()
	center := cp.Vector{X: pos.X, Y: pos.Y - s.cfg.GroundCheckOffset}
	s.grounded = s.probe.OverlapBox(center, s.cfg.GroundCheckSize, s.cfg.GroundCheckMask)
}

func (s *Simulator) movementUpdate(dt float64, in Input) {
	if in.MoveX != 0 {
		s.velocity.X += s.consts.AccelerationRate * in.MoveX * dt
		s.velocity.X = math.Max(-s.cfg.MaxSpeed, math.Min(s.velocity.X, s.cfg.MaxSpeed))
	} else if s.velocity.X > 0 {
		s.velocity.X = math.Max(s.velocity.X-s.consts.DecelerationRate*dt, 0)
	} else if s.velocity.X < 0 {
		s.velocity.X = math.Min(s.velocity.X+s.consts.DecelerationRate*dt, 0)
	}

	if in.DashPressed && s.dashCooldownTimer <= 0 {
		s.startDash()
	}
}

// startDash locks the dash to the current facing.
func (s *Simulator) startDash() {
	s.velocity.X = s.facing.Sign() * s.cfg.DashSpeed
	s.dashCooldownTimer = s.cfg.DashCooldown
	s.dashing = true
	s.dashTimer = s.cfg.DashDuration
}

func (s *Simulator) dashUpdate(dt float64) {
	s.dashTimer -= dt
	if s.dashTimer <= 0 {
		s.dashing = false
	}
}

func (s *Simulator) jumpUpdate(in Input) {
	if s.grounded {
		s.hasDoubleJumped = false
		s.canDoubleJump = true

		if in.JumpHeld {
			s.velocity.Y = s.consts.InitialJumpSpeed
			s.grounded = false
			s.current = StateJumping
		}
		return
	}

	if in.JumpPressed && s.canDoubleJump && !s.hasDoubleJumped {
		s.velocity.Y = s.consts.InitialJumpSpeed
		s.hasDoubleJumped = true
		s.canDoubleJump = false
	}
}

// SetDead forces the dead state from the next tick on. Clearing the flag
// does not leave the dead state; call Respawn for that.
func (s *Simulator) SetDead(dead bool) {
	s.dead = dead
}

func (s *Simulator) Dead() bool {
	return s.dead
}

// Respawn clears the dead flag and returns the character to rest in the
// idle state.
func (s *Simulator) Respawn() {
	s.dead = false
	s.velocity = cp.Vector{}
	s.current = StateIdle
	s.previous = StateIdle
	s.dashing = false
	s.dashTimer = 0
	s.dashCooldownTimer = 0
	s.canDoubleJump = false
	s.hasDoubleJumped = false
}

func (s *Simulator) Velocity() cp.Vector { return s.velocity }
func (s *Simulator) Facing() Direction { return s.facing }
func (s *Simulator) IsWalking() bool { return s.velocity.X != 0 }
func (s *Simulator) IsGrounded() bool { return s.grounded }
func (s *Simulator) IsDashing() bool { return s.dashing }
func (s *Simulator) State() State { return s.current }
func (s *Simulator) PreviousState() State { return s.previous }
func (s *Simulator) Config() Config { return s.cfg }
func (s *Simulator) Constants() Constants { return s.consts }
func (s *Simulator) DashCooldownRemaining() float64 {
	return math.Max(s.dashCooldownTimer, 0)
}
