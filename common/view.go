package common

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Body-frame triangle drawn for each agent: nose along BaseForward.
var triangle = [3]r3.Vec{
	{X: 0, Y: 5},
	{X: -4.33, Y: -2.5},
	{X: 4.33, Y: -2.5},
}

// View maps arena coordinates (origin at the centre, y up) onto a screen
// (origin at the top left, y down), fitting the arena with a margin.
type View struct {
	HalfWidth, HalfHeight float64
	ScreenW, ScreenH      float64
	Margin                float64 // fraction of the screen left around the arena
}

// Scale is the number of screen pixels per arena unit.
func (v View) Scale() float64 {
	if v.HalfWidth <= 0 || v.HalfHeight <= 0 {
		return 1
	}
	fill := 1 - v.Margin
	return math.Min(v.ScreenW/(2*v.HalfWidth), v.ScreenH/(2*v.HalfHeight)) * fill
}

// ToScreen converts an arena point to screen pixels.
func (v View) ToScreen(x, y float64) (float32, float32) {
	s := v.Scale()
	return float32(v.ScreenW/2 + x*s), float32(v.ScreenH/2 - y*s)
}

// ArenaRect returns the arena's screen rectangle as x, y, width, height.
func (v View) ArenaRect() (x, y, w, h float32) {
	x, y = v.ToScreen(-v.HalfWidth, v.HalfHeight)
	s := v.Scale()
	return x, y, float32(2 * v.HalfWidth * s), float32(2 * v.HalfHeight * s)
}

// Triangle returns the screen vertices of an agent at pos with orientation q.
// The triangle keeps its size in arena units.
func (v View) Triangle(pos r3.Vec, q quat.Number) [3][2]float32 {
	var out [3][2]float32
	for i, corner := range triangle {
		p := r3.Add(pos, Rotate(q, corner))
		out[i][0], out[i][1] = v.ToScreen(p.X, p.Y)
	}
	return out
}

// HeadingShade maps a heading to [0, 1] by its angle from BaseForward,
// 0 for agents flying along +y and 1 for agents flying along -y.
func HeadingShade(fwd r3.Vec) float32 {
	a := AngleBetween(BaseForward, fwd)
	if math.IsNaN(a) {
		return 0
	}
	return float32(a / math.Pi)
}
