// SPDX-License-Identifier: MIT
package settings_test

import (
	"errors"
	"testing"

	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() settings.TreeSupportSettings {
	return settings.TreeSupportSettings{
		BranchRadius:                2000,
		MinRadius:                   500,
		TipLayers:                   5,
		BranchRadiusIncreasePerLayer: 10,
		MaximumMoveDistance:         500,
		MaximumMoveDistanceSlow:     100,
		XYDistance:                  500,
		XYMinDistance:               200,
		Resolution:                  50,
		LayerHeight:                 200,
	}
}

func TestValidate_AcceptsBaseline(t *testing.T) {
	require.NoError(t, validSettings().Validate())
}

func TestValidate_RejectsNegativeRadii(t *testing.T) {
	s := validSettings()
	s.BranchRadius = -1
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, settings.ErrConfigInvalid))
}

func TestValidate_RejectsZeroTipLayers(t *testing.T) {
	s := validSettings()
	s.TipLayers = 0
	require.ErrorIs(t, s.Validate(), settings.ErrConfigInvalid)
}

func TestValidate_RejectsMinRadiusAboveBranchRadius(t *testing.T) {
	s := validSettings()
	s.MinRadius = s.BranchRadius + 1
	require.ErrorIs(t, s.Validate(), settings.ErrConfigInvalid)
}

func TestRadius_TipLayersOne_ReachesBranchRadiusDirectlyBelowTip(t *testing.T) {
	s := validSettings()
	s.TipLayers = 1
	assert.Equal(t, s.MinRadius, s.Radius(0, 0))
	assert.Equal(t, s.BranchRadius, s.Radius(1, 0))
}

func TestRadius_RampsLinearlyWithinTipLayers(t *testing.T) {
	s := validSettings()
	r0 := s.Radius(0, 0)
	rMid := s.Radius(s.TipLayers/2, 0)
	rTip := s.Radius(s.TipLayers, 0)
	assert.Equal(t, s.MinRadius, r0)
	assert.Equal(t, s.BranchRadius, rTip)
	assert.Greater(t, rMid, r0)
	assert.Less(t, rMid, rTip)
}

func TestRadius_GrowsPastTipLayers(t *testing.T) {
	s := validSettings()
	beyond := s.Radius(s.TipLayers+3, 0)
	assert.Greater(t, beyond, s.BranchRadius)
}

func TestRadius_ElephantFootWidensNearBuildplate(t *testing.T) {
	s := validSettings()
	s.BPRadiusIncreasePerLayer = s.BranchRadiusIncreasePerLayer + 50
	withFoot := s.Radius(s.TipLayers, 2)
	withoutFoot := s.Radius(s.TipLayers, 0)
	assert.Greater(t, withFoot, withoutFoot)
}

func TestActualZ_ClampsPastKnownRange(t *testing.T) {
	s := validSettings()
	s.KnownZ = []geom.Coord{0, 200, 400}
	assert.Equal(t, geom.Coord(400), s.ActualZ(5))
	assert.Equal(t, geom.Coord(200), s.ActualZ(1))
	assert.Equal(t, geom.Coord(0), s.ActualZ(-1))
}

func TestActualZ_FallsBackToLayerHeightWithoutKnownZ(t *testing.T) {
	s := validSettings()
	assert.Equal(t, geom.Coord(3)*s.LayerHeight, s.ActualZ(3))
}
