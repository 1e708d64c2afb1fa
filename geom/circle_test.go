// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/arborgen/treesupport/geom"
	"github.com/stretchr/testify/assert"
)

func TestCircle_HasRequestedVertexCount(t *testing.T) {
	c := geom.Circle(geom.Point{X: 0, Y: 0}, 1000, 25)
	assert.Len(t, c, 25)
}

func TestCircle_IsApproximatelyCentered(t *testing.T) {
	c := geom.Circle(geom.Point{X: 500, Y: 500}, 1000, 25)
	poly := geom.Polygons{c}
	centroid := poly.Centroid()
	assert.InDelta(t, 500, float64(centroid.X), 5)
	assert.InDelta(t, 500, float64(centroid.Y), 5)
}

func TestCircle_ZeroRadius_Empty(t *testing.T) {
	assert.Nil(t, geom.Circle(geom.Point{}, 0, 25))
}
