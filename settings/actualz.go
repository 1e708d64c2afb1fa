// SPDX-License-Identifier: MIT
package settings

import "github.com/arborgen/treesupport/geom"

// ActualZ returns the real-world Z height (microns) of layer idx.
//
// Resolves the §9 Open Question on getActualZ: for an index beyond the
// known range (idx >= len(KnownZ)), the original expression's operator
// precedence was ambiguous; we clamp to the last known Z rather than
// extrapolate, which keeps Z monotonically non-decreasing and matches
// the conservative reading called for when freezing semantics without
// test data to disambiguate against.
func (s TreeSupportSettings) ActualZ(idx int) geom.Coord {
	if len(s.KnownZ) == 0 {
		return geom.Coord(idx) * s.LayerHeight
	}
	if idx < 0 {
		return s.KnownZ[0]
	}
	if idx >= len(s.KnownZ) {
		return s.KnownZ[len(s.KnownZ)-1]
	}

	return s.KnownZ[idx]
}
