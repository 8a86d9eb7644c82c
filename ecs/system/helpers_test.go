package system

import (
	"math"
	"testing"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// fixedRand always returns the same draw, which pins the outcome of every
// degenerate rotation.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

const (
	heads = fixedRand(0)   // degenerate rotations resolve to the identity
	tails = fixedRand(0.9) // degenerate rotations resolve to a half turn
)

func newFlock(t *testing.T, rng common.Rand, agents ...component.Agent) *ecs.World {
	t.Helper()
	w, err := ecs.NewWorld(ecs.DefaultParams(), rng)
	require.NoError(t, err)
	w.AddSystem(NewSteeringSystem())
	w.AddSystem(NewMotionSystem())
	for _, a := range agents {
		w.CreateEntity(a)
	}
	return w
}

func cosine(u, v r3.Vec) float64 {
	return r3.Dot(u, v) / (r3.Norm(u) * r3.Norm(v))
}

func degrees(u, v r3.Vec) float64 {
	return common.AngleBetween(u, v) * 180 / math.Pi
}

// requireInvariants checks unit orientations, bounded positions and the
// absence of NaN or infinite values.
func requireInvariants(t *testing.T, w *ecs.World) {
	t.Helper()
	p := w.Params()
	for i, a := range w.Snapshot() {
		require.True(t, common.IsFiniteVec(a.Position), "agent %d position %v", i, a.Position)
		require.True(t, common.IsFinite(a.Orientation), "agent %d orientation %v", i, a.Orientation)
		require.InDelta(t, 1, quat.Abs(a.Orientation), 1e-4, "agent %d", i)
		require.LessOrEqual(t, math.Abs(a.Position.X), p.HalfWidth/p.Damping, "agent %d", i)
		require.LessOrEqual(t, math.Abs(a.Position.Y), p.HalfHeight/p.Damping, "agent %d", i)
	}
}
