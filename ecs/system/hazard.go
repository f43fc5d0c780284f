package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HazardSystem kills players that fall below the level's kill plane and
// queues their respawn.
type HazardSystem struct {
	respawnFrames int
}

func NewHazardSystem(respawnFrames int) *HazardSystem {
	return &HazardSystem{respawnFrames: respawnFrames}
}

func (h *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.ControllerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, ctrl *component.Controller, t *component.Transform) {
		if ctrl.Sim == nil || ctrl.Sim.Dead() || t.Y >= bounds.KillY {
			return
		}
		ctrl.Sim.SetDead(true)
		if ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			return
		}
		if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Frames: h.respawnFrames}); err != nil {
			log.Printf("hazard: queue respawn for %v: %v", e, err)
			return
		}
		log.Printf("player %v fell out of the level at y=%.2f", e, t.Y)
	})
}
