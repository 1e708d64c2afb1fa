// SPDX-License-Identifier: MIT
package settings

import "github.com/arborgen/treesupport/geom"

// Radius implements the radius schedule R(dtt) of spec.md §3:
//
//	R(dtt) = min_radius + (branch_radius-min_radius)*dtt/tip_layers   for dtt <= tip_layers
//	R(dtt) = branch_radius + (dtt-tip_layers)*branch_radius_increase_per_layer, otherwise
//
// plus the elephant-foot widening term
// elephant_foot_increases * max(0, bp_radius_increase_per_layer -
// branch_radius_increase_per_layer), added unconditionally on top so a
// branch near the build plate gets wider without disturbing the ramp
// above it.
func (s TreeSupportSettings) Radius(effectiveRadiusHeight int, elephantFootIncreases float64) geom.Coord {
	var base float64
	dtt := float64(effectiveRadiusHeight)
	tip := float64(s.TipLayers)

	if effectiveRadiusHeight <= s.TipLayers {
		base = float64(s.MinRadius) + float64(s.BranchRadius-s.MinRadius)*dtt/tip
	} else {
		base = float64(s.BranchRadius) + (dtt-tip)*s.BranchRadiusIncreasePerLayer
	}

	footStep := s.BPRadiusIncreasePerLayer - s.BranchRadiusIncreasePerLayer
	if footStep < 0 {
		footStep = 0
	}
	base += elephantFootIncreases * footStep

	return geom.Coord(base)
}
