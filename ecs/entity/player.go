package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlayer loads player.yaml and spawns the player at spawn.
func NewPlayer(w *ecs.World, pw *physics.World, spawn cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}
	return NewPlayerFromSpec(w, pw, spec, spawn)
}

func NewPlayerFromSpec(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, spawn cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	cfg, err := spec.MovementConfig()
	if err != nil {
		return 0, err
	}

	body := pw.AddBody(spawn, spec.Collider.Width, spec.Collider.Height, spec.Collider.Mass)
	sim, err := movement.New(cfg, body, pw)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := addPlayerComponents(w, e, sim, body, spec, spawn); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func addPlayerComponents(w *ecs.World, e ecs.Entity, sim *movement.Simulator, body *physics.Body, spec *prefabs.PlayerSpec, spawn cp.Vector) error {
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   body,
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		Sim:       sim,
		LastState: sim.State(),
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SafeRespawnComponent.Kind(), &component.SafeRespawn{X: spawn.X, Y: spawn.Y})
}
