// SPDX-License-Identifier: MIT
package propagate

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
)

// Volumes is the subset of volumes.ModelVolumes the propagator queries.
// A narrow interface rather than the concrete type, so tests can supply a
// fake without constructing a full cache.
type Volumes struct {
	Avoidance        func(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error)
	AvoidanceToModel func(r geom.Coord, layer int, t element.AvoidanceType, useMin bool) (geom.Polygons, error)
	PlaceableOnModel func(r geom.Coord, layer int) (geom.Polygons, error)
}

// OutcomeKind tags what happened to an element on one propagation step.
type OutcomeKind int

const (
	// Accepted means the element has a valid child on layer-1.
	Accepted OutcomeKind = iota
	// Landed means the element terminated by resting on the model;
	// no descendant is produced below this layer.
	Landed
	// Rejected means every candidate failed; the caller must decide
	// between deleting the element and falling back per settings.
	Rejected
)

// Outcome is the result of stepping one element down one layer.
type Outcome struct {
	Kind  OutcomeKind
	Child *element.SupportElement
}
