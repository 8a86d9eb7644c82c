package system

import (
	"github.com/milk9111/boids/ecs/component"
	ecssys "github.com/milk9111/boids/ecs/system"
)

// AgentState is the serialized form of one agent.
type AgentState struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	QX float64 `yaml:"qx"`
	QY float64 `yaml:"qy"`
	QZ float64 `yaml:"qz"`
	QW float64 `yaml:"qw"`
}

// Frame is a snapshot of the flock at one step.
type Frame struct {
	Step   uint64       `yaml:"step"`
	Time   float64      `yaml:"time"`
	Stats  ecssys.Stats `yaml:"stats"`
	Agents []AgentState `yaml:"agents"`
}

// NewFrame converts a snapshot into a frame.
func NewFrame(step uint64, time float64, agents []component.Agent) Frame {
	f := Frame{
		Step:   step,
		Time:   time,
		Stats:  ecssys.ComputeStats(agents),
		Agents: make([]AgentState, len(agents)),
	}
	for i, a := range agents {
		q := a.Orientation
		f.Agents[i] = AgentState{
			X: a.Position.X, Y: a.Position.Y,
			QX: q.Imag, QY: q.Jmag, QZ: q.Kmag, QW: q.Real,
		}
	}
	return f
}

// Frame snapshots the current flock.
func (w *World) Frame() Frame {
	if w == nil || w.ECS == nil {
		return Frame{}
	}
	return NewFrame(w.ECS.Ticks(), w.ECS.Elapsed(), w.ECS.Snapshot())
}
