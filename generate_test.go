// SPDX-License-Identifier: MIT
package treesupport_test

import (
	"context"
	"testing"

	"github.com/arborgen/treesupport"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	overhangLayer int
	overhang      geom.Polygons
	min, max      int
	blockedBelow  int
}

func (f *fakeInput) Outline(int) geom.Polygons              { return nil }
func (f *fakeInput) PlaceableTopSurfaces(int) geom.Polygons { return nil }
func (f *fakeInput) Blockers(layer int) geom.Polygons {
	if f.blockedBelow != 0 && layer <= f.blockedBelow {
		return geom.Polygons{square(-1_000_000, -1_000_000, 1_000_000, 1_000_000)}
	}
	return nil
}
func (f *fakeInput) RoofRegion(layer int) geom.Polygons {
	if layer == f.overhangLayer {
		return f.overhang
	}
	return nil
}
func (f *fakeInput) Overhang(layer int) geom.Polygons {
	if layer == f.overhangLayer {
		return f.overhang
	}
	return nil
}
func (f *fakeInput) MinLayer() int { return f.min }
func (f *fakeInput) MaxLayer() int { return f.max }

func square(x0, y0, x1, y1 geom.Coord) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func baseSettings() settings.TreeSupportSettings {
	return settings.TreeSupportSettings{
		BranchRadius:            1000,
		MinRadius:               200,
		TipLayers:               2,
		MaximumMoveDistance:     500,
		MaximumMoveDistanceSlow: 100,
		SupportRoofLayers:       1,
		SupportBottomLayers:     1,
		Resolution:              50,
		LayerHeight:             200,
	}
}

func TestGenerate_RejectsNilInput(t *testing.T) {
	_, _, err := treesupport.Generate(context.Background(), nil, baseSettings(), treesupport.Options{})
	require.Error(t, err)

	var tsErr *treesupport.Error
	require.ErrorAs(t, err, &tsErr)
	assert.Equal(t, treesupport.KindConfigInvalid, tsErr.Kind)
}

func TestGenerate_RejectsInvalidSettings(t *testing.T) {
	input := &fakeInput{overhangLayer: 2, overhang: geom.Polygons{square(0, 0, 2000, 2000)}, min: 0, max: 2}

	bad := baseSettings()
	bad.BranchRadius = 0

	_, _, err := treesupport.Generate(context.Background(), input, bad, treesupport.Options{})
	require.Error(t, err)

	var tsErr *treesupport.Error
	require.ErrorAs(t, err, &tsErr)
	assert.Equal(t, treesupport.KindConfigInvalid, tsErr.Kind)
}

func TestGenerate_GrowsTipDownToBuildplate(t *testing.T) {
	input := &fakeInput{overhangLayer: 2, overhang: geom.Polygons{square(0, 0, 2000, 2000)}, min: 0, max: 2}

	out, diag, err := treesupport.Generate(context.Background(), input, baseSettings(), treesupport.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.GreaterOrEqual(t, diag.TotalBranches, 1)

	base, ok := out[0]
	require.True(t, ok, "the build plate layer should have support output")
	assert.False(t, base.Base.Empty())
}

func TestGenerate_PrunesBranchThatNeverReachesBuildplate(t *testing.T) {
	// The overhang seeds a branch at layer 4, but everything at layer 1
	// and below is blocked solid, and resting on the model is not
	// enabled: the branch's descent chain dead-ends above the build
	// plate and must not survive pruning as a disconnected island.
	input := &fakeInput{overhangLayer: 4, overhang: geom.Polygons{square(0, 0, 2000, 2000)}, min: 0, max: 4, blockedBelow: 1}

	out, diag, err := treesupport.Generate(context.Background(), input, baseSettings(), treesupport.Options{})
	require.NoError(t, err)

	_, hasBuildplateLayer := out[0]
	assert.False(t, hasBuildplateLayer, "no support geometry should reach the build plate")
	assert.Greater(t, diag.LostBranches, 0)
}

func TestGenerate_RespectsCancellation(t *testing.T) {
	input := &fakeInput{overhangLayer: 2, overhang: geom.Polygons{square(0, 0, 2000, 2000)}, min: 0, max: 2}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := treesupport.Generate(ctx, input, baseSettings(), treesupport.Options{})
	require.Error(t, err)

	var tsErr *treesupport.Error
	require.ErrorAs(t, err, &tsErr)
	assert.Equal(t, treesupport.KindCancelled, tsErr.Kind)
}

type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warns = append(l.warns, msg)
}

func TestGenerate_AcceptsLoggerWithoutPanicking(t *testing.T) {
	input := &fakeInput{overhangLayer: 2, overhang: geom.Polygons{square(0, 0, 2000, 2000)}, min: 0, max: 2}
	logger := &recordingLogger{}

	_, _, err := treesupport.Generate(context.Background(), input, baseSettings(), treesupport.Options{Logger: logger})
	require.NoError(t, err)
}
