package entity

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

func TestNewPlayerFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()
	spec := prefabs.DefaultPlayerSpec()
	spawn := cp.Vector{X: 2, Y: 1.5}

	e, err := NewPlayerFromSpec(w, pw, &spec, spawn)
	if err != nil {
		t.Fatalf("NewPlayerFromSpec: %v", err)
	}

	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
		t.Fatalf("player missing tag or input")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != spawn.X || tr.Y != spawn.Y {
		t.Fatalf("unexpected transform %+v", tr)
	}
	safe, ok := ecs.Get(w, e, component.SafeRespawnComponent.Kind())
	if !ok || safe.X != spawn.X || safe.Y != spawn.Y {
		t.Fatalf("unexpected safe respawn %+v", safe)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body.Position() != spawn || body.Width != 1 || body.Height != 1 {
		t.Fatalf("unexpected physics body %+v", body)
	}
	ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind())
	if !ok || ctrl.Sim == nil || ctrl.Sim.State() != movement.StateIdle {
		t.Fatalf("expected idle simulator, got %+v", ctrl)
	}
	if ctrl.Sim.Config().GroundCheckMask != uint(physics.LayerGround) {
		t.Fatalf("expected ground mask, got %b", ctrl.Sim.Config().GroundCheckMask)
	}
}

func TestNewPlayerRejectsInvalidSpec(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.DefaultPlayerSpec()
	spec.ApexTime = 0

	if _, err := NewPlayerFromSpec(w, physics.NewWorld(), &spec, cp.Vector{}); !errors.Is(err, movement.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("expected no entities after failure, got %d", n)
	}
	if _, err := NewPlayerFromSpec(w, physics.NewWorld(), nil, cp.Vector{}); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()
	lvl := &prefabs.LevelSpec{
		Name:   "flat",
		Spawn:  prefabs.VectorSpec{X: 1, Y: 0.5},
		KillY:  -7,
		Ground: []prefabs.GroundSpec{{BoxSpec: prefabs.BoxSpec{L: -5, B: -1, R: 5, T: 0}}},
	}

	spawn, err := LoadLevelToWorld(w, pw, lvl)
	if err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}
	if spawn != (cp.Vector{X: 1, Y: 0.5}) {
		t.Fatalf("unexpected spawn %v", spawn)
	}
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		t.Fatalf("expected level bounds entity")
	}
	if b, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); b.KillY != -7 {
		t.Fatalf("expected kill_y -7, got %v", b.KillY)
	}
	if !pw.OverlapBox(cp.Vector{X: 1, Y: 0}, cp.Vector{X: 0.4, Y: 0.1}, uint(physics.LayerGround)) {
		t.Fatalf("expected ground geometry")
	}
}
