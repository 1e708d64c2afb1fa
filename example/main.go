// SPDX-License-Identifier: MIT

// Command example runs treesupport.Generate over a single square overhang
// and prints the resulting layer count and branch diagnostics. It exists
// to demonstrate the public API end to end, not as a slicer integration.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/arborgen/treesupport"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// flatInput is the simplest possible treesupport.Input: a single square
// overhang sitting five layers above the build plate, with everything
// below it clear.
type flatInput struct {
	overhangLayer int
	overhang      geom.Polygons
	minLayer      int
	maxLayer      int
}

func (f *flatInput) Outline(int) geom.Polygons              { return nil }
func (f *flatInput) PlaceableTopSurfaces(int) geom.Polygons { return nil }
func (f *flatInput) Blockers(int) geom.Polygons             { return nil }

func (f *flatInput) Overhang(layer int) geom.Polygons {
	if layer == f.overhangLayer {
		return f.overhang
	}
	return nil
}

func (f *flatInput) RoofRegion(layer int) geom.Polygons {
	return f.Overhang(layer)
}

func (f *flatInput) MinLayer() int { return f.minLayer }
func (f *flatInput) MaxLayer() int { return f.maxLayer }

func square(x0, y0, x1, y1 geom.Coord) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

type stdLogger struct{}

func (stdLogger) Debug(msg string, args ...interface{}) {}
func (stdLogger) Info(msg string, args ...interface{})  { log.Printf("info: "+msg, args...) }
func (stdLogger) Warn(msg string, args ...interface{})  { log.Printf("warn: "+msg, args...) }

func main() {
	input := &flatInput{
		overhangLayer: 5,
		overhang:      geom.Polygons{square(0, 0, 4000, 4000)},
		minLayer:      0,
		maxLayer:      5,
	}

	sett := settings.TreeSupportSettings{
		BranchRadius:            1000,
		MinRadius:               300,
		TipLayers:               3,
		MaximumMoveDistance:     600,
		MaximumMoveDistanceSlow: 150,
		SupportRoofLayers:       2,
		SupportBottomLayers:     1,
		Resolution:              50,
		LayerHeight:             200,
	}

	out, diag, err := treesupport.Generate(context.Background(), input, sett, treesupport.Options{
		Logger: stdLogger{},
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("generated %d layer(s), %d branch(es), %d lost\n", len(out), diag.TotalBranches, diag.LostBranches)
	for layer := 0; layer <= input.maxLayer; layer++ {
		lo, ok := out[layer]
		if !ok {
			continue
		}
		fmt.Printf("layer %d: base=%d contour(s) roof=%d floor=%d\n", layer, len(lo.Base), len(lo.Roof), len(lo.Floor))
	}
}
