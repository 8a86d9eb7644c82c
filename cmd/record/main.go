// Command record runs a flock headless and writes its frames as a YAML stream.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/boids/prefabs"
	"github.com/milk9111/boids/system"
)

func main() {
	configPath := flag.String("config", "", "flock spec file (.yaml, .yml or .toml); empty uses the built-in defaults")
	steps := flag.Int("steps", 600, "number of steps to simulate")
	dt := flag.Float64("dt", 1.0/60, "fixed time step in seconds")
	every := flag.Int("every", 1, "record one frame every this many steps")
	out := flag.String("out", "run.yaml", "output file, - for stdout")
	flag.Parse()

	spec, err := prefabs.LoadSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	w, err := system.NewWorld(spec)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recording %d steps of %d agents (seed %d) to %s", *steps, spec.Count, spec.Seed, *out)

	conf := Config{Output: *out, Steps: *steps, Dt: *dt, Every: *every}
	progress := os.Stdout
	if *out == "-" {
		progress = os.Stderr
	}
	if err := RecordFile(w, conf, progress); err != nil {
		log.Fatal(err)
	}
}
