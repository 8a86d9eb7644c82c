package component

import (
	"github.com/milk9111/boids/common"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Agent is a single boid: a planar position and a unit quaternion rotating
// about the out-of-plane axis.
type Agent struct {
	Position    r3.Vec
	Orientation quat.Number
}

// NewAgent places an agent at (x, y) heading along (fx, fy).
func NewAgent(x, y, fx, fy float64) Agent {
	return Agent{
		Position:    common.Vec2(x, y),
		Orientation: common.FromHeading(common.Vec2(fx, fy)),
	}
}

// Forward returns the agent's heading in world space.
func (a Agent) Forward() r3.Vec {
	return common.Forward(a.Orientation)
}
