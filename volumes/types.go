// SPDX-License-Identifier: MIT
package volumes

import (
	"fmt"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
)

// FieldKind selects which of the four cached field families a key belongs
// to (spec.md §4.A).
type FieldKind int

const (
	FieldCollision FieldKind = iota
	FieldAvoidance
	FieldPlaceableOnModel
	FieldAvoidanceToModel
)

func (k FieldKind) String() string {
	switch k {
	case FieldCollision:
		return "collision"
	case FieldAvoidance:
		return "avoidance"
	case FieldPlaceableOnModel:
		return "placeable_on_model"
	case FieldAvoidanceToModel:
		return "avoidance_to_model"
	default:
		return "unknown"
	}
}

// key identifies one cached polygon field. Avoidance is meaningless for
// FieldCollision/FieldPlaceableOnModel and is left at its zero value there;
// it is still part of the key so the two fields never collide in the map.
type key struct {
	field     FieldKind
	radius    geom.Coord
	layer     int
	avoidance element.AvoidanceType
	minDist   bool
}

func (k key) String() string {
	return fmt.Sprintf("%s/r=%d/L=%d/a=%d/min=%t", k.field, k.radius, k.layer, k.avoidance, k.minDist)
}

// LayerInput is the per-layer geometry this package consumes from the
// surrounding slicer (spec.md §6's "input to the core"). Layers outside
// the caller's known range must return empty Polygons, never an error:
// "out-of-range layer queries return empty polygons (no obstacle)".
type LayerInput interface {
	// Outline returns the model's solid cross-section on layer L.
	Outline(layer int) geom.Polygons
	// PlaceableTopSurfaces returns the upward-facing flat regions of the
	// model on layer L where a branch tip may rest.
	PlaceableTopSurfaces(layer int) geom.Polygons
	// Blockers returns user-painted no-support regions on layer L, unioned
	// into collision when AvoidSupportBlocker is set. May return nil.
	Blockers(layer int) geom.Polygons
	// MinLayer and MaxLayer bound the range Outline/PlaceableTopSurfaces/
	// Blockers hold real data for; queries outside this range are treated
	// as empty without calling back into the input.
	MinLayer() int
	MaxLayer() int
}
