package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs/component"
)

var (
	colorWhite = color.White
	arenaColor = color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xff}

	// agents are shaded from calm to hot by how far they point from +y
	calmColor = [3]float32{0.35, 0.75, 1.0}
	hotColor  = [3]float32{1.0, 0.55, 0.25}
)

// FlockRenderer draws agents as triangles inside the arena outline.
type FlockRenderer struct {
	View common.View

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewFlockRenderer(view common.View) *FlockRenderer {
	return &FlockRenderer{View: view}
}

// Draw renders a snapshot of the flock. Snapshots larger than one
// triangle batch are split across several draw calls.
func (r *FlockRenderer) Draw(screen *ebiten.Image, agents []component.Agent) {
	if r == nil || screen == nil {
		return
	}

	x, y, w, h := r.View.ArenaRect()
	vector.StrokeRect(screen, x, y, w, h, 1, arenaColor, false)

	const batch = (1<<16 - 1) / 3
	for start := 0; start < len(agents); start += batch {
		end := start + batch
		if end > len(agents) {
			end = len(agents)
		}
		r.drawBatch(screen, agents[start:end])
	}
}

func (r *FlockRenderer) drawBatch(screen *ebiten.Image, agents []component.Agent) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for i, a := range agents {
		tri := r.View.Triangle(a.Position, a.Orientation)
		t := common.HeadingShade(a.Forward())
		cr := common.Lerp(calmColor[0], hotColor[0], t)
		cg := common.Lerp(calmColor[1], hotColor[1], t)
		cb := common.Lerp(calmColor[2], hotColor[2], t)
		for _, p := range tri {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
			})
		}
		base := uint16(i * 3)
		r.indices = append(r.indices, base, base+1, base+2)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.vertices, r.indices, whiteImage(), op)
}
