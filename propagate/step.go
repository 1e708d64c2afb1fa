// SPDX-License-Identifier: MIT
package propagate

import (
	"fmt"
	"math"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
	"gonum.org/v1/gonum/spatial/r2"
)

// Step attempts to propagate e from its current layer to layer-1,
// trying candidateOrder(e, sett) in turn, then landing on the model, then
// the no_error degenerate fallback, and returning the first successful
// Outcome (spec.md §4.C).
func Step(e *element.SupportElement, sett settings.TreeSupportSettings, vol Volumes) (Outcome, error) {
	if vol.Avoidance == nil {
		return Outcome{}, ErrNoVolumes
	}

	nextLayer := e.LayerIdx - 1
	order := candidateOrder(e, sett)

	for _, cand := range order {
		if cand.NoError {
			// Tried only as the very last resort, after landing: see
			// below.
			continue
		}

		area, effRadiusHeight, err := candidateArea(e, nextLayer, cand, sett, vol)
		if err != nil {
			return Outcome{}, fmt.Errorf("propagate: element %d layer %d: %w", e.ID, nextLayer, err)
		}
		if area.Empty() {
			continue
		}

		child := childFrom(e, nextLayer, effRadiusHeight, cand, area)
		return Outcome{Kind: Accepted, Child: child}, nil
	}

	if landed, ok, err := tryLanding(e, nextLayer, sett, vol); err != nil {
		return Outcome{}, err
	} else if ok {
		return Outcome{Kind: Landed, Child: landed}, nil
	}

	if cand, ok := noErrorCandidate(order); ok {
		area, effRadiusHeight, err := candidateArea(e, nextLayer, cand, sett, vol)
		if err != nil {
			return Outcome{}, fmt.Errorf("propagate: element %d layer %d: %w", e.ID, nextLayer, err)
		}

		// no_error means accept this candidate even if its area came out
		// empty: spec.md §4.C's final fallback is identical to the
		// candidate before it except for this flag, so its only effect
		// is to stop treating an empty result as a rejection. A child
		// with an empty influence area is a genuine dead end and is
		// pruned (or downgraded) once the whole tree has finished
		// growing, by pruneDeadBranches.
		child := childFrom(e, nextLayer, effRadiusHeight, cand, area)
		return Outcome{Kind: Accepted, Child: child}, nil
	}

	return Outcome{Kind: Rejected}, nil
}

// noErrorCandidate returns the no_error candidate from order, if any.
func noErrorCandidate(order []element.AreaIncreaseSettings) (element.AreaIncreaseSettings, bool) {
	for _, cand := range order {
		if cand.NoError {
			return cand, true
		}
	}
	return element.AreaIncreaseSettings{}, false
}

// candidateArea computes the next-layer influence area for one candidate,
// per spec.md §4.C steps 1-5.
func candidateArea(e *element.SupportElement, nextLayer int, cand element.AreaIncreaseSettings, sett settings.TreeSupportSettings, vol Volumes) (geom.Polygons, int, error) {
	effRadiusHeight := e.EffectiveRadiusHeight
	if cand.IncreaseRadius && e.DistanceToTop >= e.DontMoveUntil {
		effRadiusHeight++
	}

	r := sett.Radius(effRadiusHeight, e.ElephantFootIncreases)

	avoidFn := vol.Avoidance
	if !e.Flags.ToBuildplate && vol.AvoidanceToModel != nil {
		avoidFn = vol.AvoidanceToModel
	}

	avoidance, err := avoidFn(r, nextLayer, cand.AvoidanceType, cand.UseMinDistance)
	if err != nil {
		return nil, effRadiusHeight, err
	}

	grown := geom.Offset(e.InfluenceArea, cand.IncreaseSpeed)
	candidate := geom.Difference(grown, avoidance)

	if !cand.Move {
		candidate = geom.Intersect(candidate, e.InfluenceArea)
	}

	return candidate, effRadiusHeight, nil
}

// childFrom builds the successor element for a winning candidate.
func childFrom(e *element.SupportElement, nextLayer, effRadiusHeight int, cand element.AreaIncreaseSettings, area geom.Polygons) *element.SupportElement {
	child := e.Clone()
	child.LayerIdx = nextLayer
	child.DistanceToTop = e.DistanceToTop + 1
	child.EffectiveRadiusHeight = effRadiusHeight
	child.InfluenceArea = area
	child.LastAreaIncrease = cand
	child.ResultOnLayerSet = false
	child.Parents = []element.ID{e.ID}

	if cand.AvoidanceType.Safe() {
		child.Flags.CanUseSafeRadius = true
	}
	if cand.Move {
		child.DontMoveUntil = 0
		child.NextPosition = nextPosition(e, area, cand.IncreaseSpeed)
	}

	return child
}

// nextPosition recomputes the move tie-break point for a Move candidate
// (spec.md §4.C): the parent's next_position projected toward
// target_position by at most maxMove, then snapped into area if the
// projection falls outside it. A non-Move candidate never calls this;
// child.NextPosition stays whatever Clone() copied from the parent.
func nextPosition(e *element.SupportElement, area geom.Polygons, maxMove geom.Coord) geom.Point {
	from := r2.Vec{X: float64(e.NextPosition.X), Y: float64(e.NextPosition.Y)}
	to := r2.Vec{X: float64(e.TargetPosition.X), Y: float64(e.TargetPosition.Y)}

	delta := r2.Sub(to, from)
	if dist := r2.Norm(delta); dist > float64(maxMove) && dist > 0 {
		delta = r2.Scale(float64(maxMove)/dist, delta)
	}
	projected := r2.Add(from, delta)

	point := geom.Point{X: int64(math.Round(projected.X)), Y: int64(math.Round(projected.Y))}
	return snapIntoArea(point, area)
}

// snapIntoArea returns p unchanged if it already lies within area,
// otherwise the area vertex closest to p by Euclidean distance, falling
// back to area's centroid when it has no vertices at all (a degenerate
// candidate accepted via the no_error fallback).
func snapIntoArea(p geom.Point, area geom.Polygons) geom.Point {
	if area.Contains(p) {
		return p
	}

	best, bestDist := area.Centroid(), math.MaxFloat64
	found := false
	for _, poly := range area {
		for _, v := range poly {
			dx, dy := float64(v.X-p.X), float64(v.Y-p.Y)
			if d := dx*dx + dy*dy; !found || d < bestDist {
				best, bestDist, found = v, d, true
			}
		}
	}

	return best
}

// tryLanding accepts the intersection of e's current influence area with
// PlaceableOnModel as a terminal resting area, when the branch is allowed
// to rest on the model (spec.md §4.C). No candidate area is grown or moved
// for the landing.
func tryLanding(e *element.SupportElement, nextLayer int, sett settings.TreeSupportSettings, vol Volumes) (*element.SupportElement, bool, error) {
	if !sett.SupportRestsOnModel || vol.PlaceableOnModel == nil {
		return nil, false, nil
	}
	if e.DistanceToTop < sett.MinDTTToModel {
		return nil, false, nil
	}

	r := sett.Radius(e.EffectiveRadiusHeight, e.ElephantFootIncreases)
	placeable, err := vol.PlaceableOnModel(r, nextLayer)
	if err != nil {
		return nil, false, fmt.Errorf("propagate: landing element %d layer %d: %w", e.ID, nextLayer, err)
	}
	if placeable.Empty() {
		return nil, false, nil
	}

	landing := geom.Intersect(e.InfluenceArea, placeable)
	if landing.Empty() {
		return nil, false, nil
	}

	child := e.Clone()
	child.LayerIdx = nextLayer
	child.DistanceToTop = e.DistanceToTop + 1
	child.InfluenceArea = landing
	child.ResultOnLayerSet = false
	child.Parents = []element.ID{e.ID}
	child.Flags.ToBuildplate = false
	child.Flags.ToModelGracious = true

	return child, true, nil
}
