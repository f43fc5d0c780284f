package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
)

// PhysicsSystem steps the Chipmunk2D space and mirrors body positions
// back into Transform.
type PhysicsSystem struct {
	world *physics.World
	dt    float64
}

func NewPhysicsSystem(world *physics.World, dt float64) *PhysicsSystem {
	return &PhysicsSystem{world: world, dt: dt}
}

func (p *PhysicsSystem) World() *physics.World {
	return p.world
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || p.world == nil {
		return
	}

	p.world.Step(p.dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Body == nil {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}
