package ecs

import "github.com/milk9111/boids/ecs/component"

// Snapshot returns a copy of every agent in index order.
func (w *World) Snapshot() []component.Agent {
	return w.SnapshotInto(nil)
}

// SnapshotInto copies every agent into dst, reusing its capacity.
func (w *World) SnapshotInto(dst []component.Agent) []component.Agent {
	if w == nil {
		return dst[:0]
	}
	return append(dst[:0], w.agents...)
}
