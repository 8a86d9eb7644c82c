package ecs

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParams is returned when a world is built from unusable parameters.
	ErrInvalidParams = errors.New("ecs: invalid params")
	// ErrNegativeDt is returned by Step for a negative or non-finite time step.
	ErrNegativeDt = errors.New("ecs: negative time step")
)

// Params are the immutable parameters of a world.
type Params struct {
	HalfWidth  float64 // arena spans [-HalfWidth, HalfWidth]
	HalfHeight float64 // arena spans [-HalfHeight, HalfHeight]

	NeighborDistance float64 // D
	NeighborAngle    float64 // Θ, half-angle of the forward cone in radians

	Speed float64 // V, world units per second

	ConvergenceWeight float64
	AvoidanceWeight   float64
	TurnDivisor       float64 // shrinks the steering target before it is composed
	AlignBlend        float64 // weight of the neighbourhood mean orientation

	Damping float64 // applied to each out-of-bounds coordinate
}

// DefaultParams returns the reference flock parameters.
func DefaultParams() Params {
	return Params{
		HalfWidth:         500,
		HalfHeight:        250,
		NeighborDistance:  50,
		NeighborAngle:     2.79,
		Speed:             100,
		ConvergenceWeight: 10,
		AvoidanceWeight:   11,
		TurnDivisor:       100,
		AlignBlend:        0.05,
		Damping:           0.9,
	}
}

// AvoidDistance is the radius inside which neighbours are actively avoided.
func (p Params) AvoidDistance() float64 {
	return p.NeighborDistance / 2
}

// Validate reports the first unusable parameter.
func (p Params) Validate() error {
	switch {
	case !positive(p.HalfWidth) || !positive(p.HalfHeight):
		return fmt.Errorf("%w: arena extents %gx%g must be positive", ErrInvalidParams, p.HalfWidth, p.HalfHeight)
	case !positive(p.NeighborDistance):
		return fmt.Errorf("%w: neighbor distance %g must be positive", ErrInvalidParams, p.NeighborDistance)
	case !(p.NeighborAngle > 0 && p.NeighborAngle <= math.Pi):
		return fmt.Errorf("%w: neighbor angle %g must be in (0, π]", ErrInvalidParams, p.NeighborAngle)
	case !positive(p.Speed):
		return fmt.Errorf("%w: speed %g must be positive", ErrInvalidParams, p.Speed)
	case !finite(p.ConvergenceWeight) || !finite(p.AvoidanceWeight):
		return fmt.Errorf("%w: steering weights must be finite", ErrInvalidParams)
	case !positive(p.TurnDivisor):
		return fmt.Errorf("%w: turn divisor %g must be positive", ErrInvalidParams, p.TurnDivisor)
	case !(p.AlignBlend >= 0 && p.AlignBlend <= 1):
		return fmt.Errorf("%w: align blend %g must be in [0, 1]", ErrInvalidParams, p.AlignBlend)
	case !(p.Damping > 0 && p.Damping < 1):
		return fmt.Errorf("%w: damping %g must be in (0, 1)", ErrInvalidParams, p.Damping)
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
