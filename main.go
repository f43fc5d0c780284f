package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log state transitions and draw the ground probe")
	levelName := flag.String("level", prefabs.LevelFile, "level prefab in prefabs/ (basename)")
	tps := flag.Int("tps", 60, "fixed simulation ticks per second")
	watch := flag.Bool("watch", false, "reload player.yaml from disk when it changes")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be > 0, got %d", *tps)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(*tps)

	game, err := NewGame(*levelName, *tps, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
