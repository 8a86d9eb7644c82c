package common

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func assertVecNear(t *testing.T, want, got r3.Vec, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		name string
		u, v r3.Vec
		want float64
	}{
		{"same", Vec2(0, 1), Vec2(0, 3), 0},
		{"right_angle", Vec2(0, 1), Vec2(2, 0), math.Pi / 2},
		{"opposite", Vec2(0, 1), Vec2(0, -1), math.Pi},
		{"diagonal", Vec2(1, 0), Vec2(1, 1), math.Pi / 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AngleBetween(c.u, c.v)
			assert.InDelta(t, c.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, math.Pi)
		})
	}

	t.Run("zero_vector", func(t *testing.T) {
		assert.True(t, math.IsNaN(AngleBetween(r3.Vec{}, Vec2(1, 0))))
	})
}

func TestRotationFromTo(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	targets := []r3.Vec{Vec2(1, 0), Vec2(-1, 0.5), Vec2(0.3, -0.7), Vec2(-2, -2)}
	for _, v := range targets {
		q := RotationFromTo(BaseForward, v, rng)
		require.InDelta(t, 1, quat.Abs(q), 1e-12)
		assertVecNear(t, unit(v), Rotate(q, BaseForward), 1e-9)
	}
}

func TestRotationFromToDegenerate(t *testing.T) {
	half := RotationZ(math.Pi)
	cases := []struct {
		name string
		v    r3.Vec
	}{
		{"parallel", Vec2(0, 5)},
		{"anti_parallel", Vec2(0, -0.1)},
		{"zero", r3.Vec{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, Identity, RotationFromTo(BaseForward, c.v, fixedRand(0)))
			assert.Equal(t, half, RotationFromTo(BaseForward, c.v, fixedRand(0.9)))
		})
	}

	t.Run("coin_is_fair", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		heads := 0
		for i := 0; i < 2000; i++ {
			if RotationFromTo(BaseForward, Vec2(0, -1), rng) == Identity {
				heads++
			}
		}
		assert.InDelta(t, 1000, heads, 150)
	})
}

func TestFromHeading(t *testing.T) {
	for _, fwd := range []r3.Vec{Vec2(0, 1), Vec2(1, 0), Vec2(-1, 0), Vec2(0, -1), Vec2(3, 4)} {
		q := FromHeading(fwd)
		assertVecNear(t, unit(fwd), Forward(q), 1e-12)
	}
	assert.Equal(t, 1.0, FromHeading(Vec2(0, 1)).Real)
}

func TestRotationZHalfTurnReversesForward(t *testing.T) {
	q := quat.Mul(FromHeading(Vec2(1, 0)), RotationZ(math.Pi))
	assertVecNear(t, Vec2(-1, 0), Forward(q), 1e-12)
}

func TestNormalizeOr(t *testing.T) {
	q := NormalizeOr(quat.Number{Real: 3, Kmag: 4}, Identity)
	assert.InDelta(t, 0.6, q.Real, 1e-15)
	assert.InDelta(t, 0.8, q.Kmag, 1e-15)

	assert.Equal(t, Identity, NormalizeOr(quat.Number{}, Identity))
	assert.False(t, IsFinite(Normalize(quat.Number{})))
}

func TestIsNearIdentity(t *testing.T) {
	assert.True(t, IsNearIdentity(Identity))
	assert.True(t, IsNearIdentity(RotationZ(0.001)))
	assert.False(t, IsNearIdentity(RotationZ(0.01)))
	assert.False(t, IsNearIdentity(RotationZ(math.Pi)))
}
