package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth     = 1280
	baseHeight    = 720
	pixelsPerUnit = 32
	respawnFrames = 30
)

type Game struct {
	world     *ecs.World
	physics   *physics.World
	scheduler *ecs.Scheduler
	player    ecs.Entity
	levelName string
	debug     bool
	watcher   *prefabs.Watcher
}

// NewGame builds the level and player and wires the systems in tick order.
func NewGame(levelFile string, tps int, debug, watch bool) (*Game, error) {
	lvl, err := prefabs.LoadLevelSpec(levelFile)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	pw := physics.NewWorld()
	spawn, err := entity.LoadLevelToWorld(world, pw, lvl)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	player, err := entity.NewPlayer(world, pw, spawn)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:     world,
		physics:   pw,
		player:    player,
		levelName: lvl.Name,
		debug:     debug,
	}

	var events <-chan prefabs.Change
	if watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, prefabs.PlayerFile)
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
			events = w.Changes
			go logWatchErrors(w)
		}
	}

	dt := 1.0 / float64(tps)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(readInput),
		system.NewReloadSystem(events, system.LoadPlayerConfig),
		system.NewRequestRespawnSystem(),
		system.NewRespawnSystem(),
		system.NewPlayerControllerSystem(dt, debug),
		system.NewPhysicsSystem(pw, dt),
		system.NewHazardSystem(respawnFrames),
	)

	log.Printf("loaded level %s, player spawned at (%.2f, %.2f)", lvl.Name, spawn.X, spawn.Y)
	return g, nil
}

func logWatchErrors(w *prefabs.Watcher) {
	for err := range w.Errors {
		log.Printf("prefab watcher: %v", err)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := ecs.Add(g.world, ecs.CreateEntity(g.world), component.ReloadRequestComponent.Kind(), &component.ReloadRequest{}); err != nil {
			log.Printf("reload request: %v", err)
		}
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	ctrl, ok := ecs.Get(g.world, g.player, component.ControllerComponent.Kind())
	if !ok || ctrl.Sim == nil {
		return
	}
	tr, _ := ecs.Get(g.world, g.player, component.TransformComponent.Kind())

	cam := camera{scale: pixelsPerUnit, width: baseWidth, height: baseHeight}
	if tr != nil {
		cam.focus = cp.Vector{X: tr.X, Y: tr.Y}
	}
	drawSpace(screen, g.physics.Space(), cam)

	sim := ctrl.Sim
	if g.debug && tr != nil {
		cfg := sim.Config()
		probe := cp.Vector{X: tr.X, Y: tr.Y - cfg.GroundCheckOffset}
		probeColor := colornames.Yellow
		if sim.IsGrounded() {
			probeColor = colornames.Lime
		}
		cam.drawBox(screen, probe, cfg.GroundCheckSize, probeColor)
	}

	vel := sim.Velocity()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Level: %s    Frames: %d    FPS: %.2f\nstate: %v (prev %v)  facing: %v  grounded: %v\nvelocity: (%.2f, %.2f)  dashing: %v  dash cooldown: %.2f",
		g.levelName, g.scheduler.Frames(), ebiten.ActualFPS(),
		sim.State(), sim.PreviousState(), sim.Facing(), sim.IsGrounded(),
		vel.X, vel.Y, sim.IsDashing(), sim.DashCooldownRemaining(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the prefab watcher if one is running.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
