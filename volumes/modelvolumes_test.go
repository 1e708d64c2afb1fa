// SPDX-License-Identifier: MIT
package volumes_test

import (
	"sync"
	"testing"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"github.com/arborgen/treesupport/volumes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput is a minimal LayerInput backed by per-layer outline maps, used
// to exercise ModelVolumes without a real slicer.
type fakeInput struct {
	outlines map[int]geom.Polygons
	surfaces map[int]geom.Polygons
	blockers map[int]geom.Polygons
	min, max int
}

func (f *fakeInput) Outline(l int) geom.Polygons              { return f.outlines[l] }
func (f *fakeInput) PlaceableTopSurfaces(l int) geom.Polygons  { return f.surfaces[l] }
func (f *fakeInput) Blockers(l int) geom.Polygons              { return f.blockers[l] }
func (f *fakeInput) MinLayer() int                             { return f.min }
func (f *fakeInput) MaxLayer() int                              { return f.max }

func square(x0, y0, x1, y1 geom.Coord) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func baseSettings() settings.TreeSupportSettings {
	return settings.TreeSupportSettings{
		XYDistance:              500,
		XYMinDistance:           200,
		MaximumMoveDistance:     500,
		MaximumMoveDistanceSlow: 100,
		ZDistanceTopLayers:      1,
		ZDistanceBottomLayers:   1,
	}
}

func TestCollision_GrowsOutlineByRadiusPlusXYDistance(t *testing.T) {
	in := &fakeInput{
		outlines: map[int]geom.Polygons{5: {square(0, 0, 1000, 1000)}},
		min:      0, max: 10,
	}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	c, err := mv.Collision(0, 5, false)
	require.NoError(t, err)
	require.False(t, c.Empty())
	assert.Greater(t, c.Area(), geom.Polygons{square(0, 0, 1000, 1000)}.Area())
}

func TestCollision_OutOfRangeLayer_Empty(t *testing.T) {
	in := &fakeInput{outlines: map[int]geom.Polygons{}, min: 0, max: 0}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	c, err := mv.Collision(0, 50, false)
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestAvoidance_TopLayerEqualsCollision(t *testing.T) {
	in := &fakeInput{
		outlines: map[int]geom.Polygons{3: {square(0, 0, 1000, 1000)}},
		min:      0, max: 3,
	}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	av, err := mv.Avoidance(0, 3, element.Fast, false)
	require.NoError(t, err)
	col, err := mv.Collision(0, 3, false)
	require.NoError(t, err)
	assert.Equal(t, col.Area(), av.Area())
}

func TestAvoidance_InductsFromLayerAbove(t *testing.T) {
	in := &fakeInput{
		outlines: map[int]geom.Polygons{
			3: {square(0, 0, 2000, 2000)},
			2: {square(0, 0, 2000, 2000)},
		},
		min: 0, max: 3,
	}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	avAbove, err := mv.Avoidance(0, 3, element.Fast, false)
	require.NoError(t, err)
	avBelow, err := mv.Avoidance(0, 2, element.Fast, false)
	require.NoError(t, err)

	// Layer 2's avoidance must not be empty; it unions its own collision
	// even after the above-layer avoidance is eroded by the move cap.
	assert.False(t, avBelow.Empty())
	_ = avAbove
}

func TestPlaceableOnModel_ErodesByRadius(t *testing.T) {
	in := &fakeInput{
		surfaces: map[int]geom.Polygons{1: {square(0, 0, 1000, 1000)}},
		min:      0, max: 5,
	}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	small, err := mv.PlaceableOnModel(0, 1)
	require.NoError(t, err)
	large, err := mv.PlaceableOnModel(200, 1)
	require.NoError(t, err)

	assert.Greater(t, small.Area(), large.Area())
}

func TestGet_ConcurrentSameKey_Coalesces(t *testing.T) {
	in := &fakeInput{
		outlines: map[int]geom.Polygons{1: {square(0, 0, 1000, 1000)}},
		min:      0, max: 5,
	}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]geom.Polygons, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := mv.Collision(0, 1, false)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0].Area(), r.Area())
	}
}

func TestNew_RejectsNilInput(t *testing.T) {
	_, err := volumes.New(nil, baseSettings())
	require.ErrorIs(t, err, volumes.ErrNoInput)
}

func TestCollision_RejectsNegativeRadius(t *testing.T) {
	in := &fakeInput{min: 0, max: 0}
	mv, err := volumes.New(in, baseSettings())
	require.NoError(t, err)

	_, err = mv.Collision(-1, 0, false)
	require.ErrorIs(t, err, volumes.ErrNegativeRadius)
}
