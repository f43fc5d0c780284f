package physics

import "github.com/jakecoffman/cp"

// Body adapts a Chipmunk body to movement.Body.
type Body struct {
	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// SetVelocity replaces the body velocity. Rotation stays locked.
func (b *Body) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
	b.body.SetAngle(0)
	b.body.SetAngularVelocity(0)
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

// SetPosition teleports the body, e.g. on respawn.
func (b *Body) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
}

func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Shape() *cp.Shape {
	return b.shape
}
