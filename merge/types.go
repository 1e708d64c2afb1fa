// SPDX-License-Identifier: MIT
package merge

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
)

// Volumes is the subset of volumes.ModelVolumes Layer needs: the
// avoidance field for the merged radius, checked before a pair is allowed
// to fuse (spec.md §4.D).
type Volumes struct {
	Avoidance func(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error)
}

// candidate is one eligible overlapping pair, scored for the deterministic
// processing order spec.md §4.D requires: "decreasing intersection area,
// ties broken by element id".
type candidate struct {
	i, j   int
	area   float64
	merged geom.Polygons // the overlap already clipped against the merged avoidance
}

func less(a, b candidate, ids []element.ID) bool {
	if a.area != b.area {
		return a.area > b.area
	}
	if ids[a.i] != ids[b.i] {
		return ids[a.i] < ids[b.i]
	}
	return ids[a.j] < ids[b.j]
}
