package component

import "gonum.org/v1/gonum/num/quat"

// Steer is the rotational update computed for one agent during a steering
// pass. It is applied only after every agent's update has been computed.
type Steer struct {
	// Target blends convergence and avoidance into a single rotation.
	Target quat.Number
	// Align is the mean orientation of the neighbourhood.
	Align quat.Number
}
