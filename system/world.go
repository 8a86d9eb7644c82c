package system

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/entity"
	ecssys "github.com/milk9111/boids/ecs/system"
	"github.com/milk9111/boids/prefabs"
)

// World owns flock loading and rebuilding from a spec.
type World struct {
	Spec *prefabs.FlockSpec
	ECS  *ecs.World
}

// NewWorld creates a new world and builds the flock described by spec.
func NewWorld(spec *prefabs.FlockSpec) (*World, error) {
	w := &World{}
	if err := w.Load(spec); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the flock with a fresh one built from spec. On error the
// current flock is left untouched.
func (w *World) Load(spec *prefabs.FlockSpec) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if spec == nil {
		return fmt.Errorf("%w: nil flock spec", ecs.ErrInvalidParams)
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	world, err := ecs.NewWorld(spec.Params(), rand.New(rand.NewSource(spec.Seed)))
	if err != nil {
		return err
	}
	world.AddSystem(ecssys.NewSteeringSystem())
	world.AddSystem(ecssys.NewMotionSystem())

	if err := entity.BuildFlock(world, spec); err != nil {
		return err
	}

	w.Spec = spec.Clone()
	w.ECS = world
	return nil
}

// Reset rebuilds the flock from the current spec, reseeding the random
// source so the run replays from the start.
func (w *World) Reset() error {
	if w == nil || w.Spec == nil {
		return fmt.Errorf("world is nil")
	}
	return w.Load(w.Spec)
}

// Step advances the flock by dt seconds.
func (w *World) Step(dt float64) error {
	if w == nil || w.ECS == nil {
		return fmt.Errorf("world is nil")
	}
	return w.ECS.Step(dt)
}
