package movement

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the designer-facing tunables for a character.
type Config struct {
	MaxSpeed         float64
	AccelerationTime float64
	DecelerationTime float64

	ApexHeight float64
	ApexTime   float64

	GroundCheckOffset float64
	GroundCheckSize   cp.Vector
	GroundCheckMask   uint

	// DashForce is accepted for data compatibility and has no effect.
	// DashSpeed drives the dash velocity.
	DashForce    float64
	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
}

// Constants are derived from a Config once, on New or Configure.
type Constants struct {
	AccelerationRate float64
	DecelerationRate float64
	Gravity          float64
	InitialJumpSpeed float64
}

func DefaultConfig() Config {
	return Config{
		MaxSpeed:          5,
		AccelerationTime:  0.25,
		DecelerationTime:  0.15,
		ApexHeight:        3,
		ApexTime:          0.5,
		GroundCheckOffset: 0.5,
		GroundCheckSize:   cp.Vector{X: 0.4, Y: 0.1},
		GroundCheckMask:   ^uint(0),
		DashForce:         10,
		DashSpeed:         10,
		DashDuration:      0.2,
		DashCooldown:      1,
	}
}

// Validate reports the first field that would make the derived constants
// meaningless.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"acceleration_time", c.AccelerationTime},
		{"deceleration_time", c.DecelerationTime},
		{"apex_time", c.ApexTime},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("movement: %s must be > 0, got %v: %w", f.name, f.value, ErrInvalidConfig)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"max_speed", c.MaxSpeed},
		{"apex_height", c.ApexHeight},
		{"ground_check.size.x", c.GroundCheckSize.X},
		{"ground_check.size.y", c.GroundCheckSize.Y},
		{"dash_speed", c.DashSpeed},
		{"dash_duration", c.DashDuration},
		{"dash_cooldown", c.DashCooldown},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("movement: %s must be >= 0, got %v: %w", f.name, f.value, ErrInvalidConfig)
		}
	}
	return nil
}

// Derive computes the rates and jump parameters implied by c.
func (c Config) Derive() Constants {
	return Constants{
		AccelerationRate: c.MaxSpeed / c.AccelerationTime,
		DecelerationRate: c.MaxSpeed / c.DecelerationTime,
		Gravity:          -2 * c.ApexHeight / (c.ApexTime * c.ApexTime),
		InitialJumpSpeed: 2 * c.ApexHeight / c.ApexTime,
	}
}
