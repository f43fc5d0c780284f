package component

import "github.com/milk9111/platformer/movement"

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX          float64
	Jump           bool
	JumpPressed    bool
	DashPressed    bool
	RespawnPressed bool
}

// Movement returns the snapshot the movement simulator consumes.
func (in Input) Movement() movement.Input {
	return movement.Input{
		MoveX:       in.MoveX,
		JumpHeld:    in.Jump,
		JumpPressed: in.JumpPressed,
		DashPressed: in.DashPressed,
	}
}

var InputComponent = NewComponent[Input]()
