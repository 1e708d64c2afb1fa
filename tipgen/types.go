// SPDX-License-Identifier: MIT
package tipgen

import "github.com/arborgen/treesupport/geom"

// OverhangInput is the per-layer geometry the generator seeds tips from.
type OverhangInput interface {
	// Overhang returns the regions on layer requiring support.
	Overhang(layer int) geom.Polygons
	// RoofRegion returns the subset of Overhang(layer) that additionally
	// requires a roof interface. A seed falling inside this region gets
	// SupportsRoof set. May return nil if the layer needs no roof.
	RoofRegion(layer int) geom.Polygons
	MinLayer() int
	MaxLayer() int
}

// Collider is the subset of volumes.ModelVolumes this package needs: the
// initial disk for a tip must be clipped against collision at min_radius,
// spec.md §4.B.
type Collider interface {
	Collision(r geom.Coord, layer int, useMin bool) (geom.Polygons, error)
}
