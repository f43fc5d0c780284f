package component

// Transform mirrors the physics body position after each step.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
