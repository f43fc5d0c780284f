package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem ticks the movement simulator of every controlled
// entity. The simulator writes the resulting velocity straight to the body,
// so this must run before PhysicsSystem.
type PlayerControllerSystem struct {
	dt    float64
	debug bool
}

func NewPlayerControllerSystem(dt float64, debug bool) *PlayerControllerSystem {
	return &PlayerControllerSystem{dt: dt, debug: debug}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller, in *component.Input) {
		if ctrl.Sim == nil {
			return
		}

		wasDashing := ctrl.Sim.IsDashing()
		vel, state := ctrl.Sim.Tick(p.dt, in.Movement())
		if p.debug {
			if state != ctrl.LastState {
				log.Printf("player %v: %v -> %v", e, ctrl.LastState, state)
			}
			if !wasDashing && ctrl.Sim.IsDashing() {
				log.Printf("player %v: dash %v", e, ctrl.Sim.Facing())
			}
		}
		ctrl.LastVelocity = vel
		ctrl.LastState = state
	})
}
