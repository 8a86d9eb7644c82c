package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewMapping(t *testing.T) {
	v := View{HalfWidth: 500, HalfHeight: 250, ScreenW: 1280, ScreenH: 720}
	assert.InDelta(t, 1.28, v.Scale(), 1e-12)

	x, y := v.ToScreen(0, 0)
	assert.Equal(t, float32(640), x)
	assert.Equal(t, float32(360), y)

	// y up in the arena is y down on screen
	_, top := v.ToScreen(0, 250)
	assert.InDelta(t, 360-320, top, 1e-4)

	rx, ry, rw, rh := v.ArenaRect()
	assert.InDelta(t, 0, rx, 1e-4)
	assert.InDelta(t, 40, ry, 1e-4)
	assert.InDelta(t, 1280, rw, 1e-3)
	assert.InDelta(t, 640, rh, 1e-3)

	v.Margin = 0.5
	assert.InDelta(t, 0.64, v.Scale(), 1e-12)
}

func TestViewTriangle(t *testing.T) {
	v := View{HalfWidth: 100, HalfHeight: 100, ScreenW: 200, ScreenH: 200}

	up := v.Triangle(Vec2(0, 0), Identity)
	assert.InDelta(t, 100, up[0][0], 1e-4)
	assert.InDelta(t, 95, up[0][1], 1e-4)

	// heading +x puts the nose to the right of the centre
	right := v.Triangle(Vec2(0, 0), FromHeading(Vec2(1, 0)))
	assert.InDelta(t, 105, right[0][0], 1e-4)
	assert.InDelta(t, 100, right[0][1], 1e-4)
}

func TestHeadingShade(t *testing.T) {
	assert.Equal(t, float32(0), HeadingShade(Vec2(0, 1)))
	assert.InDelta(t, 1, HeadingShade(Vec2(0, -1)), 1e-6)
	assert.InDelta(t, 0.5, HeadingShade(Vec2(-1, 0)), 1e-6)
	assert.Equal(t, float32(0), HeadingShade(Vec2(0, 0)))
	assert.False(t, math.IsNaN(float64(HeadingShade(Vec2(1e-300, 0)))))
}
