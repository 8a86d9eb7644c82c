package ecs

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs/component"
)

// World owns the agent store, the system order and the event queue.
//
// A world is driven by a single goroutine: Step is the only mutator and
// readers tolerate seeing a mix of pre- and post-tick agents.
type World struct {
	agents    []component.Agent
	params    Params
	rng       common.Rand
	scheduler *Scheduler
	events    EventQueue

	dt      float64
	ticks   uint64
	elapsed float64
}

// NewWorld creates an empty world. A nil rng is replaced with a source
// seeded with 0.
func NewWorld(params Params, rng common.Rand) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &World{
		params:    params,
		rng:       rng,
		scheduler: NewScheduler(),
	}, nil
}

// CreateEntity appends an agent to the store.
func (w *World) CreateEntity(a component.Agent) Entity {
	w.agents = append(w.agents, a)
	return Entity(len(w.agents) - 1)
}

// Len returns the number of agents.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.agents)
}

// Agent returns the agent stored at e.
func (w *World) Agent(e Entity) (component.Agent, bool) {
	if w == nil || !e.Valid() || e.Index() >= len(w.agents) {
		return component.Agent{}, false
	}
	return w.agents[e.Index()], true
}

// SetAgent overwrites the agent stored at e.
func (w *World) SetAgent(e Entity, a component.Agent) bool {
	if w == nil || !e.Valid() || e.Index() >= len(w.agents) {
		return false
	}
	w.agents[e.Index()] = a
	return true
}

// Agents returns the live agent store. Only systems should mutate it.
func (w *World) Agents() []component.Agent {
	if w == nil {
		return nil
	}
	return w.agents
}

// Params returns the world's parameters.
func (w *World) Params() Params {
	return w.params
}

// Rand returns the world's random source.
func (w *World) Rand() common.Rand {
	return w.rng
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Step advances the world by dt seconds. Events left over from the previous
// step are discarded first.
func (w *World) Step(dt float64) error {
	if w == nil {
		return fmt.Errorf("ecs: step on nil world")
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %g", ErrNegativeDt, dt)
	}
	w.events.flush()
	w.dt = dt
	w.scheduler.Update(w)
	w.ticks++
	w.elapsed += dt
	return nil
}

// Dt returns the time step of the tick in progress (or the last one).
func (w *World) Dt() float64 {
	return w.dt
}

// Ticks returns the number of completed steps.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
