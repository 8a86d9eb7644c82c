package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSteeringLoneAgentKeepsHeading(t *testing.T) {
	start := component.NewAgent(10, -20, 0.6, 0.8)
	w, err := ecs.NewWorld(ecs.DefaultParams(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	w.AddSystem(NewSteeringSystem())
	w.CreateEntity(start)

	for i := 0; i < 10; i++ {
		require.NoError(t, w.Step(1.0/60))
	}

	got, _ := w.Agent(0)
	assert.InDelta(t, start.Orientation.Real, got.Orientation.Real, 1e-12)
	assert.InDelta(t, start.Orientation.Kmag, got.Orientation.Kmag, 1e-12)
	assert.Equal(t, start.Position, got.Position)
}

func TestSteeringPairSameHeadingStaysParallel(t *testing.T) {
	// The follower sees its leader straight ahead, so both convergence and
	// avoidance are degenerate; resolving them to the identity leaves the
	// pair flying in formation. The formation only holds on that draw: a half
	// turn swings the follower about 21 degrees, which
	// TestSteeringAvoidanceSplitsClosePair covers.
	cases := []struct {
		name   string
		leader float64
	}{
		{"distance_10", 10},
		{"distance_20", 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newFlock(t, heads,
				component.NewAgent(0, 0, 0, 1),
				component.NewAgent(0, c.leader, 0, 1),
			)
			require.NoError(t, w.Step(1.0/60))

			snap := w.Snapshot()
			assert.Greater(t, cosine(snap[0].Forward(), snap[1].Forward()), 0.99)
			for _, a := range snap {
				assert.Less(t, degrees(a.Forward(), common.Vec2(0, 1)), 5.0)
			}
		})
	}
}

func TestSteeringAvoidanceSplitsClosePair(t *testing.T) {
	w := newFlock(t, tails,
		component.NewAgent(0, 0, 0, 1),
		component.NewAgent(0, 20, 0, 1),
	)
	require.NoError(t, w.Step(1.0/60))

	snap := w.Snapshot()
	assert.Less(t, cosine(snap[0].Forward(), snap[1].Forward()), 1.0)
	// the leader has nobody in view and keeps going
	assert.InDelta(t, 0, degrees(snap[1].Forward(), common.Vec2(0, 1)), 1e-4)
}

func TestSteeringClosePairSeparates(t *testing.T) {
	w := newFlock(t, rand.New(rand.NewSource(3)),
		component.NewAgent(0, 0, 0, 1),
		component.NewAgent(0, 20, 0, 1),
	)
	for i := 0; i < 30; i++ {
		require.NoError(t, w.Step(1.0/60))
	}

	snap := w.Snapshot()
	assert.Greater(t, r3.Norm(r3.Sub(snap[1].Position, snap[0].Position)), 20.0)
}

func TestSteeringIsOrderIndependent(t *testing.T) {
	agents := []component.Agent{
		component.NewAgent(0, 0, 0.2, 1),
		component.NewAgent(12, 18, -0.5, 1),
		component.NewAgent(-15, 22, 1, 0.3),
		component.NewAgent(4, -9, -1, 0.1),
		component.NewAgent(30, 5, 0, -1),
	}

	build := func(order []int) *ecs.World {
		w, err := ecs.NewWorld(ecs.DefaultParams(), fixedRand(0.3))
		require.NoError(t, err)
		w.AddSystem(NewSteeringSystem())
		for _, i := range order {
			w.CreateEntity(agents[i])
		}
		require.NoError(t, w.Step(1.0/60))
		return w
	}

	forward := build([]int{0, 1, 2, 3, 4}).Snapshot()
	reverse := build([]int{4, 3, 2, 1, 0}).Snapshot()

	for i := range agents {
		a, b := forward[i].Orientation, reverse[len(agents)-1-i].Orientation
		assert.InDelta(t, a.Real, b.Real, 1e-12, "agent %d", i)
		assert.InDelta(t, a.Kmag, b.Kmag, 1e-12, "agent %d", i)
	}
}

func TestSteerComputesBlend(t *testing.T) {
	p := ecs.DefaultParams()
	agents := []component.Agent{
		component.NewAgent(0, 0, 0, 1),
		component.NewAgent(10, 10, 1, 0),
	}
	s := NewSteeringSystem()

	u := s.steer(agents, 0, p, heads)
	require.InDelta(t, 1, quat.Abs(u.Target), 1e-12)
	assert.InDelta(t, 1, quat.Abs(u.Align), 1e-12)
	assert.InDelta(t, agents[1].Orientation.Real, u.Align.Real, 1e-12)
	assert.InDelta(t, agents[1].Orientation.Kmag, u.Align.Kmag, 1e-12)

	// convergence turns right toward (10, 10), avoidance turns left away from it
	conv := common.RotationFromTo(common.Vec2(0, 1), common.Vec2(10, 10), heads)
	avoid := common.RotationFromTo(common.Vec2(0, 1), common.Vec2(-10, -10), heads)
	want := common.Normalize(quat.Add(quat.Scale(10, conv), quat.Scale(11, avoid)))
	assert.InDelta(t, want.Real, u.Target.Real, 1e-12)
	assert.InDelta(t, want.Kmag, u.Target.Kmag, 1e-12)

	next := applySteer(agents[0].Orientation, u, p)
	assert.InDelta(t, 1, quat.Abs(next), 1e-12)
}

func TestSteeringCoincidentAgentsStayFinite(t *testing.T) {
	w := newFlock(t, rand.New(rand.NewSource(9)),
		component.NewAgent(5, 5, 0, 1),
		component.NewAgent(5, 5, 0, 1),
		component.NewAgent(5, 5, 1, 0),
		component.NewAgent(5, 6, 0, -1),
	)
	for i := 0; i < 120; i++ {
		require.NoError(t, w.Step(1.0/60))
		requireInvariants(t, w)
	}
}
