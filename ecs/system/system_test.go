package system

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
)

const dt = 1.0 / 60.0

var testSpawn = cp.Vector{X: 0, Y: 0.5}

func newTestLevel(t *testing.T) (*ecs.World, *physics.World, ecs.Entity) {
	t.Helper()

	w := ecs.NewWorld()
	pw := physics.NewWorld()
	lvl := &prefabs.LevelSpec{
		Name:  "test",
		Spawn: prefabs.VectorSpec{X: testSpawn.X, Y: testSpawn.Y},
		KillY: -10,
		Ground: []prefabs.GroundSpec{
			{BoxSpec: prefabs.BoxSpec{L: -20, B: -2, R: 20, T: 0}},
		},
	}
	spawn, err := entity.LoadLevelToWorld(w, pw, lvl)
	if err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}

	spec := prefabs.DefaultPlayerSpec()
	player, err := entity.NewPlayerFromSpec(w, pw, &spec, spawn)
	if err != nil {
		t.Fatalf("NewPlayerFromSpec: %v", err)
	}
	return w, pw, player
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing %v", e, kind)
	}
	return v
}

func TestPlayerControllerDrivesBody(t *testing.T) {
	w, pw, player := newTestLevel(t)

	sched := ecs.NewScheduler(
		NewInputSystem(func() component.Input { return component.Input{MoveX: 1} }),
		NewPlayerControllerSystem(dt, false),
		NewPhysicsSystem(pw, dt),
	)
	for i := 0; i < 60; i++ {
		sched.Update(w)
	}

	ctrl := mustGet(t, w, player, component.ControllerComponent.Kind())
	if ctrl.LastState != movement.StateWalking {
		t.Fatalf("expected walking, got %v", ctrl.LastState)
	}
	if ctrl.LastVelocity.X != ctrl.Sim.Config().MaxSpeed {
		t.Fatalf("expected max speed, got %v", ctrl.LastVelocity.X)
	}
	if !ctrl.Sim.IsGrounded() {
		t.Fatalf("expected player to stay grounded")
	}

	tr := mustGet(t, w, player, component.TransformComponent.Kind())
	if tr.X <= 1 {
		t.Fatalf("expected transform to follow the body, got x=%v", tr.X)
	}
	if dy := tr.Y - testSpawn.Y; dy > 0.05 || dy < -0.05 {
		t.Fatalf("expected player to stay on the ground, got y=%v", tr.Y)
	}
}

func TestInputSystemCopiesSnapshot(t *testing.T) {
	w, _, player := newTestLevel(t)

	want := component.Input{MoveX: -1, Jump: true, JumpPressed: true}
	NewInputSystem(func() component.Input { return want }).Update(w)

	got := mustGet(t, w, player, component.InputComponent.Kind())
	if *got != want {
		t.Fatalf("expected %+v, got %+v", want, *got)
	}
	if m := got.Movement(); !m.JumpHeld || !m.JumpPressed || m.DashPressed || m.MoveX != -1 {
		t.Fatalf("unexpected movement input %+v", m)
	}

	// Nil reader leaves the component alone.
	NewInputSystem(nil).Update(w)
	if *got != want {
		t.Fatalf("nil reader changed input to %+v", *got)
	}
}

func TestFallingBelowKillPlaneRespawns(t *testing.T) {
	w, _, player := newTestLevel(t)

	ctrl := mustGet(t, w, player, component.ControllerComponent.Kind())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	tr := mustGet(t, w, player, component.TransformComponent.Kind())

	hazard := NewHazardSystem(2)
	respawn := NewRespawnSystem()

	hazard.Update(w)
	if ctrl.Sim.Dead() {
		t.Fatalf("player above the kill plane should be alive")
	}

	body.Body.SetPosition(cp.Vector{X: 3, Y: -20})
	tr.X, tr.Y = 3, -20
	hazard.Update(w)
	if !ctrl.Sim.Dead() {
		t.Fatalf("expected player to die below the kill plane")
	}
	req := mustGet(t, w, player, component.RespawnRequestComponent.Kind())
	if req.Frames != 2 {
		t.Fatalf("expected 2 frame delay, got %d", req.Frames)
	}

	if _, state := ctrl.Sim.Tick(dt, movement.Input{MoveX: 1}); state != movement.StateDead {
		t.Fatalf("expected dead state, got %v", state)
	}

	respawn.Update(w)
	respawn.Update(w)
	if !ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("respawn fired before the delay elapsed")
	}

	respawn.Update(w)
	if ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("expected request to be consumed")
	}
	if ctrl.Sim.Dead() || ctrl.Sim.State() != movement.StateIdle {
		t.Fatalf("expected idle living player, got dead=%v state=%v", ctrl.Sim.Dead(), ctrl.Sim.State())
	}
	if got := body.Body.Position(); got != testSpawn {
		t.Fatalf("expected body at spawn %v, got %v", testSpawn, got)
	}
	if tr.X != testSpawn.X || tr.Y != testSpawn.Y {
		t.Fatalf("expected transform at spawn, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestRespawnPressedSkipsDelay(t *testing.T) {
	w, _, player := newTestLevel(t)

	in := mustGet(t, w, player, component.InputComponent.Kind())
	in.RespawnPressed = true

	NewRequestRespawnSystem().Update(w)
	if err := ecs.Add(w, player, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Frames: 30}); err != nil {
		t.Fatal(err)
	}

	NewRespawnSystem().Update(w)
	if ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("expected respawn to skip the remaining frames")
	}
}

func TestRequestRespawnSystem(t *testing.T) {
	w, _, player := newTestLevel(t)

	sys := NewRequestRespawnSystem()
	sys.Update(w)
	if ecs.Has(w, player, component.RespawnRequestComponent.Kind()) {
		t.Fatalf("no request expected without input")
	}

	mustGet(t, w, player, component.InputComponent.Kind()).RespawnPressed = true
	sys.Update(w)
	req := mustGet(t, w, player, component.RespawnRequestComponent.Kind())
	if req.Frames != 0 {
		t.Fatalf("expected immediate request, got %d frames", req.Frames)
	}
}

func TestReloadSystem(t *testing.T) {
	w, _, player := newTestLevel(t)
	ctrl := mustGet(t, w, player, component.ControllerComponent.Kind())

	var (
		calls   int
		nextCfg movement.Config
		nextErr error
	)
	load := func() (movement.Config, error) {
		calls++
		return nextCfg, nextErr
	}

	playerChange := prefabs.Change{Path: "prefabs/player.yaml", Name: prefabs.PlayerFile}
	events := make(chan prefabs.Change, 4)
	sys := NewReloadSystem(events, load)

	nextCfg = movement.DefaultConfig()
	nextCfg.MaxSpeed = 9
	events <- prefabs.Change{Path: "prefabs/level.yaml", Name: prefabs.LevelFile}
	sys.Update(w)
	if calls != 0 {
		t.Fatalf("level.yaml should not reload the player config")
	}

	events <- playerChange
	events <- playerChange
	sys.Update(w)
	if calls != 1 {
		t.Fatalf("expected one reload for coalesced events, got %d", calls)
	}
	if ctrl.Sim.Config().MaxSpeed != 9 {
		t.Fatalf("expected max speed 9, got %v", ctrl.Sim.Config().MaxSpeed)
	}

	nextErr = errors.New("broken yaml")
	events <- playerChange
	sys.Update(w)
	if ctrl.Sim.Config().MaxSpeed != 9 {
		t.Fatalf("failed load should keep running config")
	}

	nextErr = nil
	nextCfg.ApexTime = 0
	events <- playerChange
	sys.Update(w)
	if ctrl.Sim.Config().ApexTime != movement.DefaultConfig().ApexTime {
		t.Fatalf("invalid config should be rejected, got apex_time %v", ctrl.Sim.Config().ApexTime)
	}

	close(events)
	sys.Update(w)
	if calls != 3 {
		t.Fatalf("closed channel should not trigger reloads, got %d calls", calls)
	}

	nextCfg = movement.DefaultConfig()
	nextCfg.MaxSpeed = 4
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}); err != nil {
		t.Fatal(err)
	}
	sys.Update(w)
	if calls != 4 || ctrl.Sim.Config().MaxSpeed != 4 {
		t.Fatalf("expected reload request to apply config, calls=%d max_speed=%v", calls, ctrl.Sim.Config().MaxSpeed)
	}
	if ecs.IsAlive(w, req) {
		t.Fatalf("expected reload request entity to be destroyed")
	}
}
