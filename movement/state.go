package movement

// State is the logical state polled by animation, audio and UI.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateJumping
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Direction is the horizontal facing of the character.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// NextState returns the state that follows cur given the ground flag and
// horizontal velocity. Dead never transitions.
func NextState(cur State, grounded bool, vx float64) State {
	switch cur {
	case StateIdle:
		if !grounded {
			return StateJumping
		}
		if vx != 0 {
			return StateWalking
		}
	case StateWalking:
		if !grounded {
			return StateJumping
		}
		if vx == 0 {
			return StateIdle
		}
	case StateJumping:
		if grounded {
			if vx != 0 {
				return StateWalking
			}
			return StateIdle
		}
	}
	return cur
}
