// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/arborgen/treesupport/geom"
	"github.com/stretchr/testify/assert"
)

func TestOffset_Grow_ExpandsSquare(t *testing.T) {
	ps := geom.Polygons{square(0, 0, 1000, 1000)}
	grown := geom.Offset(ps, 100)

	assert.True(t, grown.Contains(geom.Point{X: -50, Y: 500}))
	assert.True(t, grown.Contains(geom.Point{X: 500, Y: 500}))
}

func TestOffset_Shrink_ContractsSquare(t *testing.T) {
	ps := geom.Polygons{square(0, 0, 1000, 1000)}
	shrunk := geom.Offset(ps, -100)

	assert.True(t, shrunk.Contains(geom.Point{X: 500, Y: 500}))
	assert.False(t, shrunk.Contains(geom.Point{X: 50, Y: 50}))
}

func TestOffset_Zero_ReturnsClone(t *testing.T) {
	ps := geom.Polygons{square(0, 0, 1000, 1000)}
	same := geom.Offset(ps, 0)
	assert.Equal(t, ps, same)
}
