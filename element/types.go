// SPDX-License-Identifier: MIT
package element

import "github.com/arborgen/treesupport/geom"

// ID is a stable, monotonically increasing identifier assigned at arena
// allocation time. IDs are never reused within a generation run, so
// sorting by ID (spec.md §5) gives a deterministic order independent of
// goroutine interleaving.
type ID uint64

// AreaIncreaseSettings records the candidate that most recently succeeded
// for an element, per spec.md §4.C. It both documents how the element got
// its current influence area and biases the next layer's candidate
// ordering (last_area_increase).
type AreaIncreaseSettings struct {
	AvoidanceType   AvoidanceType
	IncreaseSpeed   geom.Coord
	IncreaseRadius  bool
	NoError         bool
	UseMinDistance  bool
	Move            bool
}

// AvoidanceType selects one of the four avoidance fields ModelVolumes
// caches (spec.md §4.A). Modeled as a small tagged enum rather than an
// interface hierarchy, per spec.md §9 ("Dynamic dispatch over avoidance
// types... do not use inheritance").
type AvoidanceType int

const (
	Fast AvoidanceType = iota
	Slow
	FastSafe
	SlowSafe
)

func (t AvoidanceType) Safe() bool { return t == FastSafe || t == SlowSafe }

// Flags packs the tri-state decisions attached to a SupportElement. A
// struct of bools rather than a literal bitfield: spec.md §9 is explicit
// that the compact representation is an optimization, not a contract.
type Flags struct {
	ToBuildplate     bool
	ToModelGracious  bool
	UseMinXYDist     bool
	SupportsRoof     bool
	CanUseSafeRadius bool
	SkipOvalisation  bool
	Deleted          bool
	Marked           bool
}

// SupportElement is one node of the branch tree (spec.md §3).
type SupportElement struct {
	ID ID

	// Immutable per branch.
	TargetHeight   int
	TargetPosition geom.Point

	// Mutated per layer.
	LayerIdx               int
	NextPosition           geom.Point
	EffectiveRadiusHeight  int
	DistanceToTop          int
	DontMoveUntil          int
	ElephantFootIncreases  float64
	IncreasedToModelRadius geom.Coord
	MissingRoofLayers      int
	LastAreaIncrease       AreaIncreaseSettings

	// ResultOnLayer is unset until the Centerer (component E) runs; Set
	// reports whether it has been assigned yet.
	ResultOnLayer    geom.Point
	ResultOnLayerSet bool

	Flags Flags

	// Parents are the ids, on LayerIdx+1, whose downward propagation
	// produced this element. Empty for a fresh tip; >=2 for a merge
	// result; exactly one for a plain propagation step.
	Parents []ID

	// InfluenceArea is the polygonal region the element's centerline
	// must still lie within. Replaced wholesale on every propagation
	// step (never mutated in place), matching spec.md §5's "owns its
	// influence-area polygon by value".
	InfluenceArea geom.Polygons
}

// Clone returns a deep copy suitable for mutating into a child element,
// since InfluenceArea and Parents must not alias the original.
func (e *SupportElement) Clone() *SupportElement {
	clone := *e
	clone.InfluenceArea = e.InfluenceArea.Clone()
	clone.Parents = append([]ID(nil), e.Parents...)

	return &clone
}

// Radius is the physical radius to use for e at its current
// EffectiveRadiusHeight, per the schedule in package settings. Kept as a
// thin helper here (rather than duplicated at every call site) since
// nearly every component needs it.
type Radiuser interface {
	Radius(effectiveRadiusHeight int, elephantFootIncreases float64) geom.Coord
}

func (e *SupportElement) Radius(r Radiuser) geom.Coord {
	return r.Radius(e.EffectiveRadiusHeight, e.ElephantFootIncreases)
}
