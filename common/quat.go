package common

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// nearIdentityAngle is the rotation angle below which a quaternion is
// treated as no rotation at all.
const nearIdentityAngle = 0.0028471446

// Identity is the rotation that leaves every vector unchanged.
var Identity = quat.Number{Real: 1}

// Rand is the random source the simulation draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// FromAxisAngle returns the rotation of angle radians about a unit axis.
func FromAxisAngle(axis r3.Vec, angle float64) quat.Number {
	sin, cos := math.Sincos(angle / 2)
	return quat.Number{Real: cos, Imag: axis.X * sin, Jmag: axis.Y * sin, Kmag: axis.Z * sin}
}

// RotationZ returns the rotation of angle radians about the out-of-plane axis.
func RotationZ(angle float64) quat.Number {
	return FromAxisAngle(r3.Vec{Z: 1}, angle)
}

// FromHeading returns the z rotation taking BaseForward onto fwd.
// Unlike RotationFromTo it never draws from a random source, so it is used
// for explicit placements.
func FromHeading(fwd r3.Vec) quat.Number {
	return RotationZ(math.Atan2(-fwd.X, fwd.Y))
}

// Rotate applies the unit quaternion q to v.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Forward returns BaseForward rotated by q.
func Forward(q quat.Number) r3.Vec {
	return Rotate(q, BaseForward)
}

// Normalize scales q to unit length. A zero quaternion yields NaN components.
func Normalize(q quat.Number) quat.Number {
	return quat.Scale(1/quat.Abs(q), q)
}

// NormalizeOr is Normalize with a fallback for quaternions that cannot be
// normalized.
func NormalizeOr(q, fallback quat.Number) quat.Number {
	n := Normalize(q)
	if !IsFinite(n) {
		return fallback
	}
	return n
}

// IsFinite reports whether no component of q is NaN or infinite.
func IsFinite(q quat.Number) bool {
	return isFinite(q.Real) && isFinite(q.Imag) && isFinite(q.Jmag) && isFinite(q.Kmag)
}

// IsNearIdentity reports whether q rotates by less than nearIdentityAngle.
func IsNearIdentity(q quat.Number) bool {
	return 2*math.Acos(math.Min(1, math.Abs(q.Real))) < nearIdentityAngle
}

// RotationFromTo returns a unit quaternion taking u onto the direction of v.
//
// When u and v are parallel, anti-parallel or zero the rotation axis is
// undefined; the result is then either the identity or a half turn about z,
// picked by a fair coin from r.
func RotationFromTo(u, v r3.Vec, r Rand) quat.Number {
	axis := r3.Cross(u, v)
	q := Normalize(FromAxisAngle(unit(axis), AngleBetween(u, v)))
	if !IsFinite(q) || IsNearIdentity(q) {
		if r.Float64() < 0.5 {
			return Identity
		}
		return RotationZ(math.Pi)
	}
	return q
}
