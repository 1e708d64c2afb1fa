// SPDX-License-Identifier: MIT
package volumes

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// computeCollision grows the model outline across the vertical clearance
// window [layer-ZDistanceBottomLayers, layer+ZDistanceTopLayers] by
// r+xy_distance (or xy_min_distance), then unions in painted blockers when
// configured. The vertical window is what makes collision forbid branches
// from tunneling through the clearance gap above/below an overhang, not
// just the model cross-section exactly at layer.
func (mv *ModelVolumes) computeCollision(r geom.Coord, layer int, useMin bool) geom.Polygons {
	xy := mv.sett.XYDistance
	if useMin {
		xy = mv.sett.XYMinDistance
	}

	var out geom.Polygons
	for dz := -mv.sett.ZDistanceBottomLayers; dz <= mv.sett.ZDistanceTopLayers; dz++ {
		outline := mv.clampedOutline(layer + dz)
		if outline.Empty() {
			continue
		}
		grown := geom.Offset(outline, r+xy)
		out = geom.Union(out, grown)
	}

	if settings.AvoidSupportBlocker {
		if blockers := mv.input.Blockers(layer); !blockers.Empty() {
			out = geom.Union(out, blockers)
		}
	}

	return out
}

// computeAvoidance implements the top-down induction of spec.md §4.A: the
// topmost layer has nothing above it to inherit from, so avoidance there is
// collision (plus the holefree closing for the Safe types); every layer
// below erodes the layer-above's avoidance
// by the per-candidate-speed move distance (a branch could have moved that
// far within one layer, so the forbidden region shrinks by that much) and
// unions back in this layer's own collision.
func (mv *ModelVolumes) computeAvoidance(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error) {
	collision, err := mv.Collision(r, layer, useMin)
	if err != nil {
		return nil, err
	}

	if layer >= mv.input.MaxLayer() {
		return mv.maybeHolefree(collision, r, t), nil
	}

	mv.ReferenceAvoidance(r, layer+1, t, useMin)
	defer mv.ReleaseAvoidance(r, layer+1, t, useMin)

	above, err := mv.Avoidance(r, layer+1, t, useMin)
	if err != nil {
		return nil, err
	}

	move := mv.moveDistance(t)
	eroded := geom.Offset(above, -move)
	combined := geom.Union(eroded, collision)

	return mv.maybeHolefree(combined, r, t), nil
}

// computePlaceableOnModel erodes the model's upward-facing flat surfaces by
// r (so the branch's full circle fits on the surface, not just its center)
// then removes whatever collision already forbids.
func (mv *ModelVolumes) computePlaceableOnModel(r geom.Coord, layer int) geom.Polygons {
	surfaces := mv.input.PlaceableTopSurfaces(layer)
	if surfaces.Empty() {
		return nil
	}

	eroded := geom.Offset(surfaces, -r)
	collision, err := mv.Collision(r, layer, false)
	if err != nil || collision.Empty() {
		return eroded
	}

	return geom.Difference(eroded, collision)
}

// computeAvoidanceToModel permits landings on PlaceableOnModel by carving
// them back out of the plain avoidance field.
func (mv *ModelVolumes) computeAvoidanceToModel(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error) {
	av, err := mv.Avoidance(r, layer, t, useMin)
	if err != nil {
		return nil, err
	}

	placeable, err := mv.PlaceableOnModel(r, layer)
	if err != nil {
		return nil, err
	}
	if placeable.Empty() {
		return av, nil
	}

	return geom.Difference(av, placeable), nil
}

// maybeHolefree unions a closing operation (dilate then erode by r) into
// field for the two Safe avoidance types, so small model holes smaller
// than the branch's own diameter never register as a place to hover a
// branch over (spec.md §4.A: "the Safe variants additionally union a
// holefree dilation").
func (mv *ModelVolumes) maybeHolefree(field geom.Polygons, r geom.Coord, t element.AvoidanceType) geom.Polygons {
	if !t.Safe() || field.Empty() {
		return field
	}

	closed := geom.Offset(geom.Offset(field, r), -r)

	return geom.Union(field, closed)
}

// moveDistance selects the per-layer translation cap for the candidate
// speed backing an avoidance type: Fast/FastSafe use the fast move
// distance (MaximumMoveDistance), Slow/SlowSafe the careful one
// (MaximumMoveDistanceSlow).
func (mv *ModelVolumes) moveDistance(t element.AvoidanceType) geom.Coord {
	switch t {
	case element.Fast, element.FastSafe:
		return mv.sett.MaximumMoveDistance
	default:
		return mv.sett.MaximumMoveDistanceSlow
	}
}

// clampedOutline returns the model outline at layer, or empty if layer
// falls outside the input's known range (spec.md §4.A failure mode: "no
// cacheable input may fail... out-of-range layer queries return empty
// polygons").
func (mv *ModelVolumes) clampedOutline(layer int) geom.Polygons {
	if layer < mv.input.MinLayer() || layer > mv.input.MaxLayer() {
		return nil
	}

	return mv.input.Outline(layer)
}
