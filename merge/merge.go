// SPDX-License-Identifier: MIT
package merge

import (
	"fmt"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// Layer repeatedly fuses the single best eligible overlapping pair among
// live until no pair qualifies, returning the resulting element set
// (spec.md §4.D). live is not mutated; the returned slice is a fresh copy
// reflecting all fusions.
func Layer(live []*element.SupportElement, layer int, sett settings.TreeSupportSettings, vol Volumes) ([]*element.SupportElement, error) {
	if vol.Avoidance == nil {
		return nil, ErrNoVolumes
	}

	working := append([]*element.SupportElement(nil), live...)

	for {
		cands := eligiblePairs(working, layer, sett, vol)
		if len(cands) == 0 {
			break
		}

		ids := idsOf(working)
		best := cands[0]
		for _, c := range cands[1:] {
			if less(c, best, ids) {
				best = c
			}
		}

		fused, err := fuse(working[best.i], working[best.j], best.merged, sett)
		if err != nil {
			return nil, err
		}

		next := make([]*element.SupportElement, 0, len(working)-1)
		for k, e := range working {
			if k == best.i || k == best.j {
				continue
			}
			next = append(next, e)
		}
		next = append(next, fused)
		working = next
	}

	return working, nil
}

func idsOf(elems []*element.SupportElement) []element.ID {
	ids := make([]element.ID, len(elems))
	for i, e := range elems {
		ids[i] = e.ID
	}
	return ids
}

// eligiblePairs finds every (i, j) whose influence areas overlap, who
// share no recent ancestor, and whose merged radius still fits its own
// avoidance field.
func eligiblePairs(working []*element.SupportElement, layer int, sett settings.TreeSupportSettings, vol Volumes) []candidate {
	var out []candidate
	for i := 0; i < len(working); i++ {
		for j := i + 1; j < len(working); j++ {
			a, b := working[i], working[j]
			if shareAncestor(a, b) {
				continue
			}

			overlap := geom.Intersect(a.InfluenceArea, b.InfluenceArea)
			if overlap.Empty() {
				continue
			}

			clipped, ok := mergeFits(overlap, a, b, layer, sett, vol)
			if !ok {
				continue
			}

			out = append(out, candidate{i: i, j: j, area: overlap.Area(), merged: clipped})
		}
	}

	return out
}

// shareAncestor reports whether a and b have any parent id in common,
// spec.md §4.D's "sharing a recent ancestor on the layer above" guard
// against a branch merging with itself.
func shareAncestor(a, b *element.SupportElement) bool {
	if a.ID == b.ID {
		return true
	}
	seen := make(map[element.ID]struct{}, len(a.Parents))
	for _, p := range a.Parents {
		seen[p] = struct{}{}
	}
	for _, p := range b.Parents {
		if _, ok := seen[p]; ok {
			return true
		}
	}
	return false
}

// mergeFits checks that the overlap region contains a point outside the
// avoidance computed for the merged radius, per spec.md §4.D, returning
// the clipped area for reuse if the pair qualifies.
func mergeFits(overlap geom.Polygons, a, b *element.SupportElement, layer int, sett settings.TreeSupportSettings, vol Volumes) (geom.Polygons, bool) {
	rm := mergedRadius(a, b, sett)
	avoidType := a.LastAreaIncrease.AvoidanceType
	useMin := a.Flags.UseMinXYDist || b.Flags.UseMinXYDist

	avoidance, err := vol.Avoidance(rm, layer, avoidType, useMin)
	if err != nil {
		return nil, false
	}

	remaining := geom.Difference(overlap, avoidance)
	if remaining.Empty() {
		return nil, false
	}

	return remaining, true
}

func mergedRadius(a, b *element.SupportElement, sett settings.TreeSupportSettings) geom.Coord {
	dtt := a.DistanceToTop
	if b.DistanceToTop > dtt {
		dtt = b.DistanceToTop
	}

	return sett.Radius(dtt, a.ElephantFootIncreases+b.ElephantFootIncreases)
}

// fuse builds the merged successor element per spec.md §4.D's field-by-
// field bookkeeping rules. clippedArea is the overlap already clipped
// against the merged avoidance, computed once by mergeFits.
func fuse(a, b *element.SupportElement, clippedArea geom.Polygons, sett settings.TreeSupportSettings) (*element.SupportElement, error) {
	if clippedArea.Empty() {
		return nil, fmt.Errorf("merge: elements %d and %d have no valid merged area", a.ID, b.ID)
	}

	merged := a.Clone()
	merged.ID = 0 // caller (the orchestrator) assigns a fresh id via its IDGenerator
	merged.DistanceToTop = maxInt(a.DistanceToTop, b.DistanceToTop)
	merged.EffectiveRadiusHeight = maxInt(a.EffectiveRadiusHeight, b.EffectiveRadiusHeight)
	merged.ElephantFootIncreases = a.ElephantFootIncreases + b.ElephantFootIncreases
	merged.IncreasedToModelRadius = clampRadiusIncrease(a, b, sett)
	merged.MissingRoofLayers = maxInt(a.MissingRoofLayers, b.MissingRoofLayers)
	merged.DontMoveUntil = 0
	merged.InfluenceArea = clippedArea
	// Parents point to LayerIdx+1, never to siblings on the same layer: if
	// both a and b are fresh tips (no parents of their own), the union
	// stays empty rather than synthesizing a and b as each other's
	// parents.
	merged.Parents = append(append([]element.ID(nil), a.Parents...), b.Parents...)
	merged.ResultOnLayerSet = false

	merged.Flags.ToBuildplate = a.Flags.ToBuildplate || b.Flags.ToBuildplate
	merged.Flags.ToModelGracious = a.Flags.ToModelGracious && b.Flags.ToModelGracious
	merged.Flags.SupportsRoof = a.Flags.SupportsRoof || b.Flags.SupportsRoof
	merged.Flags.CanUseSafeRadius = a.Flags.CanUseSafeRadius || b.Flags.CanUseSafeRadius
	merged.Flags.UseMinXYDist = a.Flags.UseMinXYDist || b.Flags.UseMinXYDist

	return merged, nil
}

// clampRadiusIncrease bounds the extra radius a to-model branch absorbs
// from a to-buildplate peer at max_to_model_radius_increase (spec.md
// §4.D).
func clampRadiusIncrease(a, b *element.SupportElement, sett settings.TreeSupportSettings) geom.Coord {
	increase := a.IncreasedToModelRadius + b.IncreasedToModelRadius
	mixed := a.Flags.ToBuildplate != b.Flags.ToBuildplate
	if mixed && increase > sett.MaxToModelRadiusIncrease {
		increase = sett.MaxToModelRadiusIncrease
	}
	return increase
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
