package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// LoadLevelToWorld adds the level geometry to pw and creates the entity
// holding its bounds. It returns the spawn point.
func LoadLevelToWorld(w *ecs.World, pw *physics.World, lvl *prefabs.LevelSpec) (cp.Vector, error) {
	if err := lvl.Build(pw); err != nil {
		return cp.Vector{}, err
	}

	boundsEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{KillY: lvl.KillY}); err != nil {
		return cp.Vector{}, err
	}
	return lvl.Spawn.Vector(), nil
}
