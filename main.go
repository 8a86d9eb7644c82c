package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boids/prefabs"
)

func main() {
	configPath := flag.String("config", "", "flock spec file (.yaml, .yml or .toml); empty uses the built-in defaults")
	count := flag.Int("n", -1, "number of agents (overrides the config)")
	seed := flag.Int64("seed", 0, "random seed (overrides the config)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts (overrides the config)")
	watch := flag.Bool("watch", false, "rebuild the flock when the config or a scenario changes")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrides := func(spec *prefabs.FlockSpec) {
		if set["n"] {
			spec.Count = *count
		}
		if set["seed"] {
			spec.Seed = *seed
		}
		if set["scenario"] {
			spec.Scenario = *scenario
		}
	}

	game, err := NewGame(*configPath, overrides, *watch, *debug)
	if err != nil {
		log.Fatal(err)
	}

	spec := game.world.Spec
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle("boids")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
