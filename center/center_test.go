// SPDX-License-Identifier: MIT
package center_test

import (
	"testing"

	"github.com/arborgen/treesupport/center"
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 geom.Coord) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func baseSettings() settings.TreeSupportSettings {
	return settings.TreeSupportSettings{
		MinRadius:           200,
		BranchRadius:        1000,
		TipLayers:           5,
		MaximumMoveDistance: 500,
	}
}

func noCollision() center.Volumes {
	return center.Volumes{Collision: func(geom.Coord, int, bool) (geom.Polygons, error) { return nil, nil }}
}

func TestRun_PicksCentroidWhenClear(t *testing.T) {
	e := &element.SupportElement{ID: 1, InfluenceArea: geom.Polygons{square(0, 0, 1000, 1000)}, TargetPosition: geom.Point{X: 5000, Y: 5000}}
	tree := center.Tree{0: {e}}

	err := center.Run(tree, baseSettings(), noCollision())
	require.NoError(t, err)
	assert.True(t, e.ResultOnLayerSet)
	assert.InDelta(t, 500, float64(e.ResultOnLayer.X), 1)
	assert.InDelta(t, 500, float64(e.ResultOnLayer.Y), 1)
}

func TestRun_RejectsWithoutVolumes(t *testing.T) {
	err := center.Run(center.Tree{}, baseSettings(), center.Volumes{})
	require.ErrorIs(t, err, center.ErrNoVolumes)
}

func TestRun_ConstrainsParentByChildReach(t *testing.T) {
	child := &element.SupportElement{ID: 1, Parents: []element.ID{2}, InfluenceArea: geom.Polygons{square(-100, -100, 100, 100)}, ResultOnLayer: geom.Point{X: 0, Y: 0}, ResultOnLayerSet: true}
	parent := &element.SupportElement{ID: 2, InfluenceArea: geom.Polygons{square(-5000, -5000, 5000, 5000)}, TargetPosition: geom.Point{X: 4000, Y: 4000}}

	tree := center.Tree{0: {child}, 1: {parent}}

	err := center.Run(tree, baseSettings(), noCollision())
	require.NoError(t, err)
	require.True(t, parent.ResultOnLayerSet)

	dist := dist2(parent.ResultOnLayer, child.ResultOnLayer)
	assert.LessOrEqual(t, dist, float64(baseSettings().MaximumMoveDistance)*float64(baseSettings().MaximumMoveDistance)*1.2)
}

func TestRun_RelaxesCollisionWhenInfluenceAreaFullyBlocked(t *testing.T) {
	e := &element.SupportElement{ID: 1, InfluenceArea: geom.Polygons{square(0, 0, 1000, 1000)}, TargetPosition: geom.Point{X: 500, Y: 500}}
	tree := center.Tree{0: {e}}

	blocked := center.Volumes{Collision: func(geom.Coord, int, bool) (geom.Polygons, error) {
		return geom.Polygons{square(-10000, -10000, 10000, 10000)}, nil
	}}

	err := center.Run(tree, baseSettings(), blocked)
	require.NoError(t, err)
	assert.True(t, e.ResultOnLayerSet)
}

func TestRun_ProcessesLayersInAscendingOrder(t *testing.T) {
	top := &element.SupportElement{ID: 2, InfluenceArea: geom.Polygons{square(0, 0, 1000, 1000)}}
	bottom := &element.SupportElement{ID: 1, Parents: []element.ID{2}, InfluenceArea: geom.Polygons{square(0, 0, 1000, 1000)}}

	tree := center.Tree{1: {top}, 0: {bottom}}

	err := center.Run(tree, baseSettings(), noCollision())
	require.NoError(t, err)
	assert.True(t, bottom.ResultOnLayerSet)
	assert.True(t, top.ResultOnLayerSet)
}

func TestRun_PrefersNextPositionOverTargetPosition(t *testing.T) {
	// Two disjoint squares: their combined centroid falls in the gap
	// between them, so choosePoint must fall back to the nearest vertex.
	// TargetPosition points at the left square; NextPosition (the move
	// tie-break point propagate.Step actually advanced) points at the
	// right one. The result must follow NextPosition.
	e := &element.SupportElement{
		ID:             1,
		InfluenceArea:  geom.Polygons{square(0, 0, 100, 100), square(10_000, 0, 10_100, 100)},
		TargetPosition: geom.Point{X: 50, Y: 50},
		NextPosition:   geom.Point{X: 10_050, Y: 50},
	}
	tree := center.Tree{0: {e}}

	err := center.Run(tree, baseSettings(), noCollision())
	require.NoError(t, err)
	assert.True(t, e.ResultOnLayerSet)
	assert.Greater(t, e.ResultOnLayer.X, geom.Coord(5_000))
}

func dist2(a, b geom.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}
