package system

import (
	"math"

	"github.com/milk9111/boids/ecs/component"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarizes a flock snapshot.
type Stats struct {
	// Polarization is the length of the mean forward vector: 1 when every
	// agent heads the same way, near 0 for random headings.
	Polarization float64 `yaml:"polarization"`
	// NearestNeighbor is the mean distance from each agent to its closest
	// other agent. Zero with fewer than two agents.
	NearestNeighbor float64 `yaml:"nearest_neighbor"`
}

// ComputeStats summarizes agents with a brute-force pass.
func ComputeStats(agents []component.Agent) Stats {
	n := len(agents)
	if n == 0 {
		return Stats{}
	}

	var heading r3.Vec
	for _, a := range agents {
		heading = r3.Add(heading, a.Forward())
	}
	st := Stats{Polarization: r3.Norm(heading) / float64(n)}
	if n < 2 {
		return st
	}

	var sum float64
	for i, a := range agents {
		best := math.Inf(1)
		for j, b := range agents {
			if i == j {
				continue
			}
			if d := r3.Norm2(r3.Sub(a.Position, b.Position)); d < best {
				best = d
			}
		}
		sum += math.Sqrt(best)
	}
	st.NearestNeighbor = sum / float64(n)
	return st
}
