// SPDX-License-Identifier: MIT
package draw

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
)

// Tree is every centered element of a generation run, indexed by layer.
// Generate only looks at elements with ResultOnLayerSet; everything else
// is ignored (it never reached a valid centerline).
type Tree map[int][]*element.SupportElement

// LayerOutput is the three polygon collections §6 requires per layer.
type LayerOutput struct {
	Base  geom.Polygons
	Roof  geom.Polygons
	Floor geom.Polygons
}

// Output is the full per-layer result of a drawing pass.
type Output map[int]LayerOutput
