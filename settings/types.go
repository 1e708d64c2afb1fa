// SPDX-License-Identifier: MIT
package settings

import "github.com/arborgen/treesupport/geom"

// InterfacePreference selects how overlapping interface and support
// geometry is resolved by the Drawer (component F, spec.md §4.F).
type InterfacePreference int

const (
	// InterfaceAreaOverwritesSupport subtracts interface area from support.
	InterfaceAreaOverwritesSupport InterfacePreference = iota
	// SupportAreaOverwritesInterface subtracts support area from interface.
	SupportAreaOverwritesInterface
	// InterfaceLinesOverwriteSupport draws interfaces last, cutting
	// support lines under them. Since this module specifies regions
	// rather than infill lines (§1 Non-goals), it behaves as
	// InterfaceAreaOverwritesSupport.
	InterfaceLinesOverwriteSupport
	// SupportLinesOverwriteInterface is the line-level opposite of
	// InterfaceLinesOverwriteSupport; behaves as
	// SupportAreaOverwritesInterface at the region level this module
	// operates on.
	SupportLinesOverwriteInterface
	// Nothing keeps both regions, accepting overlap.
	Nothing
)

// SUPPORT_TREE_COLLISION_RESOLUTION is the coarse radius quantization step
// used by volumes.ModelVolumes below the exponential ladder threshold.
const SupportTreeCollisionResolution geom.Coord = 500

// SUPPORT_TREE_CIRCLE_RESOLUTION is the vertex count of a drawn branch
// circle at radius R (spec.md §4.F).
const SupportTreeCircleResolution = 25

// AvoidSupportBlocker mirrors SUPPORT_TREE_AVOID_SUPPORT_BLOCKER: when
// true, user-painted blocker polygons are unioned into every collision
// field (spec.md §6).
const AvoidSupportBlocker = true

// TreeSupportSettings is the full, immutable configuration for one
// generation run. Every component takes this by value.
type TreeSupportSettings struct {
	// Radius schedule.
	BranchRadius                geom.Coord
	MinRadius                   geom.Coord
	TipLayers                   int
	BranchRadiusIncreasePerLayer float64

	// Build-plate widening ("elephant foot").
	BPRadius                geom.Coord
	BPRadiusIncreasePerLayer float64
	LayerStartBPRadius       int

	// Movement caps.
	MaximumMoveDistance     geom.Coord
	MaximumMoveDistanceSlow geom.Coord

	// Clearances.
	XYDistance          geom.Coord
	XYMinDistance       geom.Coord
	ZDistanceTopLayers  int
	ZDistanceBottomLayers int
	// UseMinXYDistDefault is the global policy TipGenerator stamps onto
	// freshly seeded tips' UseMinXYDist flag (spec.md §4.B: "use_min_xy_dist
	// per global policy"); propagation may still override it per element.
	UseMinXYDistDefault bool

	// Model landing.
	SupportRestsOnModel bool
	MinDTTToModel       int
	MaxToModelRadiusIncrease geom.Coord

	// Interfaces and pattern (pattern/line fields are carried through to
	// the external interface-infill collaborator per §1 Non-goals; this
	// module only decides where interfaces must exist).
	SupportBottomLayers   int
	SupportRoofLayers     int
	SupportRoofAngles     []float64
	RoofPattern           string
	SupportPattern        string
	SupportLineWidth      geom.Coord
	SupportRoofLineWidth  geom.Coord
	SupportLineSpacing    geom.Coord
	SupportRoofLineDistance geom.Coord
	SupportBottomOffset   geom.Coord
	SupportWallCount      int
	Resolution            geom.Coord
	InterfacePreference    InterfacePreference

	MinFeatureSize geom.Coord
	RaftLayers     int

	LayerHeight geom.Coord

	// KnownZ is the per-layer actual Z (microns), indexed by layer. See
	// ActualZ for the behavior past the end of this slice (§9 Open
	// Question).
	KnownZ []geom.Coord
}
