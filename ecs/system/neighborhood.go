package system

import (
	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"gonum.org/v1/gonum/spatial/r3"
)

// IsNeighbor reports whether other is inside me's neighbourhood: closer than
// the neighbour distance and within the forward cone. The relation is not
// symmetric since each agent looks along its own heading.
func IsNeighbor(me, other component.Agent, p ecs.Params) bool {
	return isNeighbor(me.Position, me.Forward(), other.Position, p)
}

func isNeighbor(pos, fwd, other r3.Vec, p ecs.Params) bool {
	dir := r3.Sub(other, pos)
	d2 := r3.Norm2(dir)
	// a coincident agent has no direction to look at
	if d2 == 0 || d2 >= p.NeighborDistance*p.NeighborDistance {
		return false
	}
	return common.AngleBetween(fwd, dir) < p.NeighborAngle
}

// AppendNeighbors appends the indices of agents[i]'s neighbours to dst.
// Agent i itself is never included.
func AppendNeighbors(dst []int, agents []component.Agent, i int, p ecs.Params) []int {
	me := agents[i]
	fwd := me.Forward()
	for j := range agents {
		if j == i {
			continue
		}
		if isNeighbor(me.Position, fwd, agents[j].Position, p) {
			dst = append(dst, j)
		}
	}
	return dst
}
