package system

import (
	"math"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// MotionSystem moves every agent along its heading and turns agents that
// left the arena around.
type MotionSystem struct {
	halfTurn quat.Number
}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{halfTurn: common.RotationZ(math.Pi)}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	p := w.Params()
	dt := w.Dt()
	base := r3.Scale(p.Speed, common.BaseForward)

	agents := w.Agents()
	for i := range agents {
		a := &agents[i]

		vel := common.Rotate(a.Orientation, base)
		a.Position.X += vel.X * dt
		a.Position.Y += vel.Y * dt

		var out ecs.Axis
		if math.Abs(a.Position.X) > p.HalfWidth {
			out |= ecs.AxisX
		}
		if math.Abs(a.Position.Y) > p.HalfHeight {
			out |= ecs.AxisY
		}
		if out == 0 {
			continue
		}

		// turn around first so the agent points inward once pulled back
		a.Orientation = quat.Mul(a.Orientation, m.halfTurn)
		if out&ecs.AxisY != 0 {
			a.Position.Y *= p.Damping
		}
		if out&ecs.AxisX != 0 {
			a.Position.X *= p.Damping
		}

		w.Events().Push(ecs.Event{
			Type: ecs.EventBoundary,
			Data: ecs.BoundaryEvent{Entity: ecs.Entity(i), Axis: out},
		})
	}
}
