package system

import (
	"math"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// SteeringSystem turns every agent toward its neighbours' centroid, away from
// neighbours that are too close, and toward their mean orientation.
//
// Updates are computed from the state at the start of the pass and committed
// together afterwards, so the result does not depend on agent order.
type SteeringSystem struct {
	updates   []component.Steer
	neighbors []int
}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	agents := w.Agents()
	p := w.Params()
	rng := w.Rand()

	s.updates = s.updates[:0]
	for i := range agents {
		s.updates = append(s.updates, s.steer(agents, i, p, rng))
	}

	for i, u := range s.updates {
		agents[i].Orientation = applySteer(agents[i].Orientation, u, p)
	}
}

func (s *SteeringSystem) steer(agents []component.Agent, i int, p ecs.Params, rng common.Rand) component.Steer {
	me := agents[i]
	s.neighbors = AppendNeighbors(s.neighbors[:0], agents, i, p)
	if len(s.neighbors) == 0 {
		return component.Steer{Target: common.Identity, Align: me.Orientation}
	}

	avoidR2 := p.AvoidDistance() * p.AvoidDistance()

	var centroid, avoid r3.Vec
	var align quat.Number
	for _, j := range s.neighbors {
		b := agents[j]
		centroid = r3.Add(centroid, b.Position)
		align = quat.Add(align, b.Orientation)

		d := r3.Sub(me.Position, b.Position)
		if d2 := r3.Norm2(d); d2 < avoidR2 {
			avoid = r3.Add(avoid, r3.Scale(1/math.Max(d2, 1), d))
		}
	}
	n := float64(len(s.neighbors))
	centroid = r3.Scale(1/n, centroid)

	fwd := me.Forward()
	convergence := common.RotationFromTo(fwd, r3.Sub(centroid, me.Position), rng)
	avoidance := common.RotationFromTo(fwd, avoid, rng)

	target := quat.Add(quat.Scale(p.ConvergenceWeight, convergence), quat.Scale(p.AvoidanceWeight, avoidance))
	return component.Steer{
		Target: common.NormalizeOr(target, common.Identity),
		Align:  common.NormalizeOr(quat.Scale(1/n, align), me.Orientation),
	}
}

// applySteer nudges q by a shrunken (not renormalized) target rotation, then
// blends the result toward the neighbourhood mean and renormalizes.
func applySteer(q quat.Number, u component.Steer, p ecs.Params) quat.Number {
	nudged := quat.Mul(q, quat.Scale(1/p.TurnDivisor, u.Target))
	blend := quat.Add(quat.Scale(1-p.AlignBlend, nudged), quat.Scale(p.AlignBlend, u.Align))
	return common.NormalizeOr(blend, q)
}
