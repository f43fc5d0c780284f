package component

// LevelBounds stores the kill plane of the current level. Players whose
// body falls below KillY die.
type LevelBounds struct {
	KillY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
