package component

import "github.com/milk9111/platformer/physics"

// PhysicsBody stores the Chipmunk2D body driven for this entity.
type PhysicsBody struct {
	Body   *physics.Body
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
