// SPDX-License-Identifier: MIT
package tipgen

import (
	"math"

	"github.com/arborgen/treesupport/geom"
)

// hexPackingFactor is the triangular-lattice spacing (in radii) at which
// circles of that radius cover the plane with no gaps.
const hexPackingFactor = 1.7320508075688772 // sqrt(3)

// seedPoints decomposes shrunk into a hexagonal lattice of points spaced
// so that circles of branchRadius, once the tree has fully grown, cover
// the original overhang without gaps (spec.md §4.B: "spacing is chosen so
// the fully grown tree... covers the overhang without gaps").
func seedPoints(shrunk geom.Polygons, branchRadius geom.Coord) []geom.Point {
	if shrunk.Empty() || branchRadius <= 0 {
		return nil
	}

	spacing := float64(branchRadius) * hexPackingFactor
	rowHeight := spacing * math.Sqrt(3) / 2

	min, max, ok := shrunk.BoundingBox()
	if !ok {
		return nil
	}

	var seeds []geom.Point
	row := 0
	for y := float64(min.Y); y <= float64(max.Y); y += rowHeight {
		offset := 0.0
		if row%2 == 1 {
			offset = spacing / 2
		}
		for x := float64(min.X) + offset; x <= float64(max.X); x += spacing {
			p := geom.Point{X: geom.Coord(math.Round(x)), Y: geom.Coord(math.Round(y))}
			if shrunk.Contains(p) {
				seeds = append(seeds, p)
			}
		}
		row++
	}

	if len(seeds) == 0 {
		// Degenerate overhang too small for even one lattice point: seed
		// its centroid so a sliver of overhang still gets one tip.
		seeds = append(seeds, shrunk.Centroid())
	}

	return seeds
}
