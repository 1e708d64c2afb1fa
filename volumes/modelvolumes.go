// SPDX-License-Identifier: MIT
package volumes

import (
	"fmt"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

const defaultCacheEntriesPerField = 4096

// Option configures a ModelVolumes at construction time.
type Option func(*ModelVolumes)

// WithMaxDistinctRadii bounds the radius ladder's cardinality.
func WithMaxDistinctRadii(n int) Option {
	return func(mv *ModelVolumes) { mv.ladder = NewRadiusLadder(n) }
}

// WithCacheEntriesPerField bounds each field's LRU size independently of the
// radius ladder, for callers precomputing many layers at once.
func WithCacheEntriesPerField(n int) Option {
	return func(mv *ModelVolumes) { mv.cacheEntries = n }
}

// ModelVolumes is the radius- and layer-indexed polygon cache of component
// A. All exported methods are safe for concurrent use by per-layer
// propagation workers.
type ModelVolumes struct {
	input  LayerInput
	sett   settings.TreeSupportSettings
	ladder RadiusLadder

	cacheEntries     int
	collision        *fieldCache
	avoidance        *fieldCache
	placeableOnModel *fieldCache
	avoidanceToModel *fieldCache
}

// New constructs a ModelVolumes over input using sett for the distance
// schedule. Resolves the §9 Open Question on operator== by folding sett's
// cache-relevant fields (xy distances, z clearances, blocker policy) into
// the lifetime of this instance rather than a key: a ModelVolumes is built
// fresh per Generate call, so its cached fields never need to distinguish
// between settings revisions.
func New(input LayerInput, sett settings.TreeSupportSettings, opts ...Option) (*ModelVolumes, error) {
	if input == nil {
		return nil, ErrNoInput
	}

	mv := &ModelVolumes{
		input:        input,
		sett:         sett,
		ladder:       NewRadiusLadder(0),
		cacheEntries: defaultCacheEntriesPerField,
	}
	for _, opt := range opts {
		opt(mv)
	}

	mv.collision = newFieldCache(mv.cacheEntries)
	mv.avoidance = newFieldCache(mv.cacheEntries)
	mv.placeableOnModel = newFieldCache(mv.cacheEntries)
	mv.avoidanceToModel = newFieldCache(mv.cacheEntries)

	return mv, nil
}

// Collision returns the region a branch of radius r may not enter on
// layer, honoring xy_min_distance instead of xy_distance when useMin is
// set.
func (mv *ModelVolumes) Collision(r geom.Coord, layer int, useMin bool) (geom.Polygons, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	r = mv.ladder.Quantize(r)
	k := key{field: FieldCollision, radius: r, layer: layer, minDist: useMin}

	v, err := mv.collision.get(k, func() (geom.Polygons, error) {
		return mv.computeCollision(r, layer, useMin), nil
	})
	if err != nil {
		return nil, fmt.Errorf("volumes: collision(r=%d, L=%d): %w", r, layer, err)
	}

	return v, nil
}

// Avoidance returns the region a branch of radius r must stay outside of
// while propagating downward through layer, for the given AvoidanceType.
func (mv *ModelVolumes) Avoidance(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	r = mv.ladder.Quantize(r)
	k := key{field: FieldAvoidance, radius: r, layer: layer, avoidance: t, minDist: useMin}

	v, err := mv.avoidance.get(k, func() (geom.Polygons, error) {
		return mv.computeAvoidance(r, layer, t, useMin)
	})
	if err != nil {
		return nil, fmt.Errorf("volumes: avoidance(r=%d, L=%d, type=%d): %w", r, layer, t, err)
	}

	return v, nil
}

// PlaceableOnModel returns the flat-enough upward-facing model regions on
// layer where a branch of radius r may land.
func (mv *ModelVolumes) PlaceableOnModel(r geom.Coord, layer int) (geom.Polygons, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	r = mv.ladder.Quantize(r)
	k := key{field: FieldPlaceableOnModel, radius: r, layer: layer}

	v, err := mv.placeableOnModel.get(k, func() (geom.Polygons, error) {
		return mv.computePlaceableOnModel(r, layer), nil
	})
	if err != nil {
		return nil, fmt.Errorf("volumes: placeable_on_model(r=%d, L=%d): %w", r, layer, err)
	}

	return v, nil
}

// AvoidanceToModel is Avoidance with landings on PlaceableOnModel carved
// back out, for branches permitted to rest on the model.
func (mv *ModelVolumes) AvoidanceToModel(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	r = mv.ladder.Quantize(r)
	k := key{field: FieldAvoidanceToModel, radius: r, layer: layer, avoidance: t, minDist: useMin}

	v, err := mv.avoidanceToModel.get(k, func() (geom.Polygons, error) {
		return mv.computeAvoidanceToModel(r, layer, t, useMin)
	})
	if err != nil {
		return nil, fmt.Errorf("volumes: avoidance_to_model(r=%d, L=%d, type=%d): %w", r, layer, t, err)
	}

	return v, nil
}

// ReferenceAvoidance pins (r, layer, t) against eviction. Callers should
// release a matching count via ReleaseAvoidance once no live element's
// influence area still derives from it (spec.md §5: reference tracking by
// layer-range).
func (mv *ModelVolumes) ReferenceAvoidance(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) {
	mv.avoidance.reference(key{field: FieldAvoidance, radius: mv.ladder.Quantize(r), layer: layer, avoidance: t, minDist: useMin})
}

// ReleaseAvoidance undoes one ReferenceAvoidance pin.
func (mv *ModelVolumes) ReleaseAvoidance(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) {
	mv.avoidance.release(key{field: FieldAvoidance, radius: mv.ladder.Quantize(r), layer: layer, avoidance: t, minDist: useMin})
}
