package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/movement"
)

// Controller binds a movement simulator to an entity. LastVelocity and
// LastState hold the result of the most recent tick.
type Controller struct {
	Sim          *movement.Simulator
	LastVelocity cp.Vector
	LastState    movement.State
}

var ControllerComponent = NewComponent[Controller]()
