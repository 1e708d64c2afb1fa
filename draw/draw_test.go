// SPDX-License-Identifier: MIT
package draw_test

import (
	"testing"

	"github.com/arborgen/treesupport/draw"
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSettings() settings.TreeSupportSettings {
	return settings.TreeSupportSettings{
		MinRadius:         200,
		BranchRadius:      1000,
		TipLayers:         5,
		SupportRoofLayers: 2,
		SupportBottomLayers: 2,
		Resolution:        50,
		InterfacePreference: settings.InterfaceAreaOverwritesSupport,
	}
}

func tipAt(id element.ID, pos geom.Point, parents ...element.ID) *element.SupportElement {
	return &element.SupportElement{
		ID:               id,
		ResultOnLayer:    pos,
		ResultOnLayerSet: true,
		Parents:          parents,
		Flags:            element.Flags{ToBuildplate: true},
	}
}

func TestGenerate_RejectsEmptyTree(t *testing.T) {
	_, err := draw.Generate(draw.Tree{}, baseSettings())
	require.ErrorIs(t, err, draw.ErrNoTree)
}

func TestGenerate_SingleElementProducesBase(t *testing.T) {
	e := tipAt(1, geom.Point{X: 0, Y: 0})
	tree := draw.Tree{0: {e}}

	out, err := draw.Generate(tree, baseSettings())
	require.NoError(t, err)

	layer := out[0]
	assert.False(t, layer.Base.Empty())
	assert.True(t, layer.Roof.Empty())
	assert.True(t, layer.Floor.Empty())
}

func TestGenerate_RoofAppliesNearTip(t *testing.T) {
	e := tipAt(1, geom.Point{X: 0, Y: 0})
	e.Flags.SupportsRoof = true
	e.DistanceToTop = 0
	tree := draw.Tree{0: {e}}

	sett := baseSettings()
	out, err := draw.Generate(tree, sett)
	require.NoError(t, err)

	assert.False(t, out[0].Roof.Empty())
}

func TestGenerate_FloorAppliesAboveModelLanding(t *testing.T) {
	landing := tipAt(1, geom.Point{X: 0, Y: 0}, 2)
	landing.Flags.ToBuildplate = false

	above := tipAt(2, geom.Point{X: 0, Y: 0})
	above.Flags.ToBuildplate = false

	tree := draw.Tree{0: {landing}, 1: {above}}

	out, err := draw.Generate(tree, baseSettings())
	require.NoError(t, err)

	assert.True(t, out[0].Floor.Empty(), "the landing layer itself is not floor")
	assert.False(t, out[1].Floor.Empty(), "the layer immediately above a landing is floor")
}

func TestGenerate_OvalisationConnectsParentAndChild(t *testing.T) {
	parent := tipAt(2, geom.Point{X: 0, Y: 3000})
	parent.InfluenceArea = geom.Polygons{{{X: -5000, Y: -5000}, {X: 5000, Y: -5000}, {X: 5000, Y: 5000}, {X: -5000, Y: 5000}}}

	child := tipAt(1, geom.Point{X: 0, Y: 0}, 2)
	child.InfluenceArea = parent.InfluenceArea

	tree := draw.Tree{0: {child}, 1: {parent}}

	out, err := draw.Generate(tree, baseSettings())
	require.NoError(t, err)

	withoutOval := geom.Circle(child.ResultOnLayer, baseSettings().Radius(0, 0), settings.SupportTreeCircleResolution)
	assert.Greater(t, out[0].Base.Area()+out[0].Roof.Area()+out[0].Floor.Area(), geom.Polygons{withoutOval}.Area()*0.9)
}

func TestGenerate_SkipOvalisationOmitsHull(t *testing.T) {
	parent := tipAt(2, geom.Point{X: 0, Y: 3000})
	child := tipAt(1, geom.Point{X: 0, Y: 0}, 2)
	child.Flags.SkipOvalisation = true
	child.InfluenceArea = geom.Polygons{{{X: -5000, Y: -5000}, {X: 5000, Y: -5000}, {X: 5000, Y: 5000}, {X: -5000, Y: 5000}}}

	tree := draw.Tree{0: {child}, 1: {parent}}

	out, err := draw.Generate(tree, baseSettings())
	require.NoError(t, err)
	assert.False(t, out[0].Base.Empty())

	// With the hull towards the parent 3mm away, the area would be several
	// times the child's own circle.
	withoutOval := geom.Circle(child.ResultOnLayer, baseSettings().Radius(0, 0), settings.SupportTreeCircleResolution)
	assert.Less(t, out[0].Base.Area(), geom.Polygons{withoutOval}.Area()*1.5)
}
