// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/arborgen/treesupport/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 geom.Coord) geom.Polygon {
	return geom.Polygon{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func TestPolygonArea_CCWPositive(t *testing.T) {
	p := square(0, 0, 1000, 1000)
	assert.Equal(t, 1_000_000.0, p.Area())
}

func TestPolygonArea_CWNegative(t *testing.T) {
	p := geom.Polygon{{X: 0, Y: 0}, {X: 0, Y: 1000}, {X: 1000, Y: 1000}, {X: 1000, Y: 0}}
	assert.Equal(t, -1_000_000.0, p.Area())
}

func TestPolygons_Area_SumsHoleAndOuterUnsigned(t *testing.T) {
	outer := square(0, 0, 1000, 1000)
	hole := geom.Polygon{{X: 100, Y: 100}, {X: 100, Y: 200}, {X: 200, Y: 200}, {X: 200, Y: 100}}
	ps := geom.Polygons{outer, hole}
	assert.Equal(t, 1_000_000.0+10_000.0, ps.Area())
}

func TestPolygons_SignedArea_NetsOutHole(t *testing.T) {
	outer := square(0, 0, 1000, 1000)
	hole := geom.Polygon{{X: 100, Y: 100}, {X: 100, Y: 200}, {X: 200, Y: 200}, {X: 200, Y: 100}}
	ps := geom.Polygons{outer, hole}
	assert.InDelta(t, 1_000_000.0-10_000.0, ps.SignedArea(), 1.0)
}

func TestPolygons_Contains(t *testing.T) {
	ps := geom.Polygons{square(0, 0, 1000, 1000)}
	assert.True(t, ps.Contains(geom.Point{X: 500, Y: 500}))
	assert.False(t, ps.Contains(geom.Point{X: 2000, Y: 2000}))
}

func TestPolygons_Contains_HoleExcluded(t *testing.T) {
	outer := square(0, 0, 1000, 1000)
	hole := square(400, 400, 600, 600)
	// hole wound CW to subtract from the CCW outer region
	reversed := geom.Polygon{hole[0], hole[3], hole[2], hole[1]}
	ps := geom.Polygons{outer, reversed}
	assert.True(t, ps.Contains(geom.Point{X: 100, Y: 100}))
	assert.False(t, ps.Contains(geom.Point{X: 500, Y: 500}))
}

func TestPolygons_BoundingBox(t *testing.T) {
	ps := geom.Polygons{square(10, 20, 110, 220)}
	min, max, ok := ps.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, min)
	assert.Equal(t, geom.Point{X: 110, Y: 220}, max)
}

func TestPolygons_Centroid_Square(t *testing.T) {
	ps := geom.Polygons{square(0, 0, 1000, 1000)}
	c := ps.Centroid()
	assert.InDelta(t, 500, float64(c.X), 1)
	assert.InDelta(t, 500, float64(c.Y), 1)
}

func TestPolygons_Empty(t *testing.T) {
	assert.True(t, geom.Polygons{}.Empty())
	assert.True(t, geom.Polygons{{{X: 0, Y: 0}, {X: 1, Y: 0}}}.Empty())
	assert.False(t, geom.Polygons{square(0, 0, 10, 10)}.Empty())
}
