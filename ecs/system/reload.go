package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
)

// ConfigLoader returns a validated movement config for the player prefab.
type ConfigLoader func() (movement.Config, error)

// LoadPlayerConfig reads player.yaml from disk or the embedded prefabs.
func LoadPlayerConfig() (movement.Config, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return movement.Config{}, err
	}
	return spec.MovementConfig()
}

// ReloadSystem reconfigures every simulator when the player prefab changes
// on disk or a ReloadRequest is queued. A config that fails validation is
// logged and the running one is kept.
type ReloadSystem struct {
	events <-chan prefabs.Change
	load   ConfigLoader
}

func NewReloadSystem(events <-chan prefabs.Change, load ConfigLoader) *ReloadSystem {
	if load == nil {
		load = LoadPlayerConfig
	}
	return &ReloadSystem{events: events, load: load}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	requested := consumeReloadRequests(w)
	changed := r.drain()
	if !requested && !changed {
		return
	}

	cfg, err := r.load()
	if err != nil {
		log.Printf("reload: %s: %v", prefabs.PlayerFile, err)
		return
	}

	count := 0
	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller) {
		if ctrl.Sim == nil {
			return
		}
		if err := ctrl.Sim.Configure(cfg); err != nil {
			log.Printf("reload: configure %v: %v", e, err)
			return
		}
		count++
	})
	log.Printf("reload: applied %s to %d controller(s)", prefabs.PlayerFile, count)
}

func consumeReloadRequests(w *ecs.World) bool {
	found := false
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, _ *component.ReloadRequest) {
		found = true
		ecs.DestroyEntity(w, e)
	})
	return found
}

// drain consumes pending events without blocking and reports whether any
// of them touched the player prefab.
func (r *ReloadSystem) drain() bool {
	if r.events == nil {
		return false
	}
	changed := false
	for {
		select {
		case c, ok := <-r.events:
			if !ok {
				r.events = nil
				return changed
			}
			if c.Name == prefabs.PlayerFile {
				changed = true
			}
		default:
			return changed
		}
	}
}
