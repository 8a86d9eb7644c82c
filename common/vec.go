package common

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BaseForward is the body-frame heading of every agent. An agent's forward
// vector in world space is its orientation applied to BaseForward.
var BaseForward = r3.Vec{X: 0, Y: 1, Z: 0}

// Vec2 returns a planar vector.
func Vec2(x, y float64) r3.Vec {
	return r3.Vec{X: x, Y: y}
}

// AngleBetween returns the angle between u and v in [0, π].
// The result is NaN when either vector has zero length.
func AngleBetween(u, v r3.Vec) float64 {
	n := math.Sqrt(r3.Norm2(u) * r3.Norm2(v))
	if n == 0 {
		return math.NaN()
	}
	c := r3.Dot(u, v) / n
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// unit scales v to length 1. A zero vector yields NaN components.
func unit(v r3.Vec) r3.Vec {
	return r3.Scale(1/r3.Norm(v), v)
}

// IsFiniteVec reports whether no component of v is NaN or infinite.
func IsFiniteVec(v r3.Vec) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
