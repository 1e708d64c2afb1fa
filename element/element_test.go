// SPDX-License-Identifier: MIT
package element_test

import (
	"testing"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constantRadius geom.Coord

func (r constantRadius) Radius(int, float64) geom.Coord { return geom.Coord(r) }

func TestAvoidanceType_Safe(t *testing.T) {
	assert.False(t, element.Fast.Safe())
	assert.False(t, element.Slow.Safe())
	assert.True(t, element.FastSafe.Safe())
	assert.True(t, element.SlowSafe.Safe())
}

func TestSupportElement_Radius_DelegatesToRadiuser(t *testing.T) {
	e := &element.SupportElement{EffectiveRadiusHeight: 3}
	assert.Equal(t, geom.Coord(1234), e.Radius(constantRadius(1234)))
}

func TestSupportElement_Clone_DoesNotAliasSlices(t *testing.T) {
	orig := &element.SupportElement{
		ID:            1,
		Parents:       []element.ID{7, 8},
		InfluenceArea: geom.Polygons{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
	}
	clone := orig.Clone()
	clone.Parents[0] = 99
	clone.InfluenceArea[0][0].X = 500

	assert.Equal(t, element.ID(7), orig.Parents[0])
	assert.Equal(t, geom.Coord(0), orig.InfluenceArea[0][0].X)
}

func TestArena_AddAndGet(t *testing.T) {
	a := element.NewArena()
	gen := &element.IDGenerator{}

	e1 := &element.SupportElement{ID: gen.Next()}
	e2 := &element.SupportElement{ID: gen.Next()}
	a.Add(e1)
	a.Add(e2)

	require.NotNil(t, a.Get(e1.ID))
	require.NotNil(t, a.Get(e2.ID))
	assert.Nil(t, a.Get(element.ID(9999)))
	assert.Equal(t, 2, a.Len())
}

func TestArena_All_ExcludesDeletedAndSortsByID(t *testing.T) {
	a := element.NewArena()
	gen := &element.IDGenerator{}

	first := &element.SupportElement{ID: gen.Next()}
	second := &element.SupportElement{ID: gen.Next()}
	third := &element.SupportElement{ID: gen.Next(), Flags: element.Flags{Deleted: true}}

	// Insert out of order to exercise the sort.
	a.Add(second)
	a.Add(third)
	a.Add(first)

	live := a.All()
	require.Len(t, live, 2)
	assert.Equal(t, first.ID, live[0].ID)
	assert.Equal(t, second.ID, live[1].ID)
}

func TestIDGenerator_NeverRepeats(t *testing.T) {
	gen := &element.IDGenerator{}
	seen := map[element.ID]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next()
		require.False(t, seen[id])
		seen[id] = true
	}
}
