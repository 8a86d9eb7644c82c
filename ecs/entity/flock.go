package entity

import (
	"fmt"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"github.com/milk9111/boids/prefabs"
)

// Placement is the initial state of one agent: a position and a heading.
type Placement struct {
	X, Y   float64
	FX, FY float64
}

// BuildFlock populates w from spec. With no scenario, spec.Count agents are
// placed uniformly in the arena with uniformly random headings drawn from
// the world's random source.
func BuildFlock(w *ecs.World, spec *prefabs.FlockSpec) error {
	if w == nil {
		return fmt.Errorf("entity: build flock on nil world")
	}
	if spec == nil {
		return fmt.Errorf("%w: nil flock spec", ecs.ErrInvalidParams)
	}
	if spec.Count < 0 {
		return fmt.Errorf("%w: count %d must not be negative", ecs.ErrInvalidParams, spec.Count)
	}

	if spec.Scenario != "" {
		placements, err := RunScenario(spec.Scenario, spec.Count, w.Params(), w.Rand())
		if err != nil {
			return err
		}
		PlaceAgents(w, placements)
		return nil
	}

	p := w.Params()
	rng := w.Rand()
	for i := 0; i < spec.Count; i++ {
		w.CreateEntity(randomAgent(p, rng))
	}
	return nil
}

func randomAgent(p ecs.Params, rng common.Rand) component.Agent {
	x := p.HalfWidth - rng.Float64()*2*p.HalfWidth
	y := p.HalfHeight - rng.Float64()*2*p.HalfHeight
	fx := 1 - 2*rng.Float64()
	fy := 1 - 2*rng.Float64()
	return component.Agent{
		Position:    common.Vec2(x, y),
		Orientation: common.RotationFromTo(common.BaseForward, common.Vec2(fx, fy), rng),
	}
}

// PlaceAgents appends one agent per placement, in order.
func PlaceAgents(w *ecs.World, placements []Placement) []ecs.Entity {
	out := make([]ecs.Entity, 0, len(placements))
	for _, pl := range placements {
		out = append(out, w.CreateEntity(component.NewAgent(pl.X, pl.Y, pl.FX, pl.FY)))
	}
	return out
}
