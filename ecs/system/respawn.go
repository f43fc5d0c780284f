package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

// Update performs pending respawn requests for players. A request fires once
// its frame countdown reaches zero, or immediately when respawn is pressed.
func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
			return
		}

		skip := false
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			skip = in.RespawnPressed
		}
		if req.Frames > 0 && !skip {
			req.Frames--
			return
		}

		safe, ok := ecs.Get(w, e, component.SafeRespawnComponent.Kind())
		if !ok {
			_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
			return
		}
		spawn := cp.Vector{X: safe.X, Y: safe.Y}

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = spawn.X
			t.Y = spawn.Y
		}
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && b.Body != nil {
			b.Body.SetPosition(spawn)
			b.Body.SetVelocity(cp.Vector{})
		}
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok && ctrl.Sim != nil {
			ctrl.Sim.Respawn()
			ctrl.LastVelocity = cp.Vector{}
			ctrl.LastState = ctrl.Sim.State()
		}

		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
		log.Printf("player %v respawned at (%.2f, %.2f)", e, spawn.X, spawn.Y)
	})
}

// RequestRespawnSystem lets the player restart from the spawn point at any
// time by pressing respawn.
type RequestRespawnSystem struct{}

func NewRequestRespawnSystem() *RequestRespawnSystem { return &RequestRespawnSystem{} }

func (s *RequestRespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, in *component.Input) {
		if !in.RespawnPressed || ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			return
		}
		if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{}); err != nil {
			log.Printf("respawn: request for %v: %v", e, err)
		}
	})
}
