// SPDX-License-Identifier: MIT
package center

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
)

// Volumes is the subset of volumes.ModelVolumes Run needs: the collision
// field for an element's final radius, queried to keep its centerline
// outside the model (spec.md §4.E, constraint 2).
type Volumes struct {
	Collision func(r geom.Coord, layer int, useMin bool) (geom.Polygons, error)
}

// Tree is every element of a generation run, indexed by layer. Run
// processes layers in ascending order (bottom first) and mutates each
// element's ResultOnLayer/ResultOnLayerSet fields in place.
type Tree map[int][]*element.SupportElement
