// SPDX-License-Identifier: MIT
package volumes

import (
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

const (
	// ladderThresholdMicrons is where the schedule switches from linear
	// steps to doubling steps (spec.md SUPPLEMENTED FEATURES, ~1.5mm).
	ladderThresholdMicrons geom.Coord = 1500
	// defaultMaxDistinctRadii bounds cache cardinality; see RadiusLadder.
	defaultMaxDistinctRadii = 64
)

// RadiusLadder quantizes arbitrary requested radii onto a bounded set of
// sampled values: linear steps of settings.SupportTreeCollisionResolution
// up to ladderThresholdMicrons, then doubling steps beyond it, capped at
// MaxDistinct distinct rungs. A query for an arbitrary radius rounds up to
// the next sampled value (spec.md §4.A: "A query for an arbitrary radius
// rounds up to the next sampled value"); a radius above the largest rung
// is clamped down to that rung.
type RadiusLadder struct {
	MaxDistinct int
}

// NewRadiusLadder returns a ladder with the default distinct-radius cap.
// maxDistinct <= 0 selects defaultMaxDistinctRadii.
func NewRadiusLadder(maxDistinct int) RadiusLadder {
	if maxDistinct <= 0 {
		maxDistinct = defaultMaxDistinctRadii
	}
	return RadiusLadder{MaxDistinct: maxDistinct}
}

// Quantize rounds r up to the next rung of the ladder.
func (l RadiusLadder) Quantize(r geom.Coord) geom.Coord {
	if r <= 0 {
		return 0
	}

	rungs := l.rungs()
	for _, rung := range rungs {
		if rung >= r {
			return rung
		}
	}

	return rungs[len(rungs)-1]
}

// rungs lists the sampled radii in increasing order, capped at MaxDistinct
// entries. Recomputed per call rather than cached on the struct: the ladder
// itself is a tiny value type, and callers query it rarely compared to the
// polygon fields it indexes.
func (l RadiusLadder) rungs() []geom.Coord {
	max := l.MaxDistinct
	if max <= 0 {
		max = defaultMaxDistinctRadii
	}

	out := make([]geom.Coord, 0, max)
	for r := settings.SupportTreeCollisionResolution; r <= ladderThresholdMicrons && len(out) < max; r += settings.SupportTreeCollisionResolution {
		out = append(out, r)
	}
	for r := ladderThresholdMicrons * 2; len(out) < max; r *= 2 {
		out = append(out, r)
	}

	return out
}
