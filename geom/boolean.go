// SPDX-License-Identifier: MIT
package geom

import "sort"

// setOp identifies a boolean combination of two regions.
type setOp int

const (
	opUnion setOp = iota
	opIntersect
	opDifference
)

// Union returns the region covered by a or b (or both).
func Union(a, b Polygons) Polygons { return combine(a, b, opUnion) }

// Intersect returns the region covered by both a and b.
func Intersect(a, b Polygons) Polygons { return combine(a, b, opIntersect) }

// Difference returns the region covered by a but not by b.
func Difference(a, b Polygons) Polygons { return combine(a, b, opDifference) }

// combine implements the three boolean set operations with a vertical
// trapezoidal decomposition: the X axis is cut at every vertex of a and b
// plus every pairwise edge-intersection X, so that within each resulting
// slab neither edge set reorders its crossings. Each maximal Y-run where
// the combined membership test is true becomes one quadrilateral contour
// in the result; see geom's doc.go for why this is hand-rolled rather than
// imported.
func combine(a, b Polygons, op setOp) Polygons {
	edgesA := collectEdges(a)
	edgesB := collectEdges(b)
	if len(edgesA) == 0 && len(edgesB) == 0 {
		return nil
	}

	xs := breakpointXs(edgesA, edgesB)
	if len(xs) < 2 {
		return nil
	}

	var out Polygons
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		if x1 <= x0 {
			continue
		}
		out = append(out, slabTrapezoids(edgesA, edgesB, x0, x1, op)...)
	}

	return out
}

// breakpointXs collects every vertex X of both edge sets plus every X
// where an edge of a crosses an edge of b, sorted and de-duplicated.
func breakpointXs(edgesA, edgesB []edge) []Coord {
	seen := make(map[Coord]struct{})
	add := func(x Coord) { seen[x] = struct{}{} }

	for _, e := range edgesA {
		add(e.p1.X)
		add(e.p2.X)
	}
	for _, e := range edgesB {
		add(e.p1.X)
		add(e.p2.X)
	}
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			if x, ok := edgeCrossX(ea, eb); ok {
				add(x)
			}
		}
	}

	xs := make([]Coord, 0, len(seen))
	for x := range seen {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	return xs
}

// edgeCrossX returns the X coordinate at which segments ea and eb cross,
// if they do so strictly within both segments' spans. Computed in
// floating point and rounded; this module does not need exact rational
// arithmetic robustness since layer polygons are themselves an
// approximation of a sliced mesh.
func edgeCrossX(ea, eb edge) (Coord, bool) {
	x1, y1 := float64(ea.p1.X), float64(ea.p1.Y)
	x2, y2 := float64(ea.p2.X), float64(ea.p2.Y)
	x3, y3 := float64(eb.p1.X), float64(eb.p1.Y)
	x4, y4 := float64(eb.p2.X), float64(eb.p2.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return 0, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / denom
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, false
	}

	x := x1 + t*(x2-x1)

	return Coord(x), true
}

// activeEdge is one edge of a or b whose X-span covers the slab currently
// being processed, tagged with its winding-contribution sign and source.
type activeEdge struct {
	e     edge
	sign  int
	fromB bool
}

// slabTrapezoids computes, within the open interval (x0, x1), the
// boolean-combined inside regions and emits one quadrilateral per
// maximal run, evaluated exactly at x0 and x1 along each bounding edge.
func slabTrapezoids(edgesA, edgesB []edge, x0, x1 Coord, op setOp) Polygons {
	xm := x0 + (x1-x0)/2
	if xm == x0 {
		xm = x1
	}

	var actives []activeEdge
	for _, e := range edgesA {
		if spans(e, xm) {
			actives = append(actives, activeEdge{e: e, sign: dirSign(e), fromB: false})
		}
	}
	for _, e := range edgesB {
		if spans(e, xm) {
			actives = append(actives, activeEdge{e: e, sign: dirSign(e), fromB: true})
		}
	}
	if len(actives) == 0 {
		return nil
	}

	order := make([]int, len(actives))
	for i := range actives {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return lerpY(actives[order[i]].e, xm) < lerpY(actives[order[j]].e, xm)
	})

	evalBounds := func(idx int) (Coord, Coord) {
		a := actives[idx]
		return lerpY(a.e, x0), lerpY(a.e, x1)
	}
	satisfies := func(insideA, insideB bool) bool {
		switch op {
		case opUnion:
			return insideA || insideB
		case opIntersect:
			return insideA && insideB
		default: // opDifference
			return insideA && !insideB
		}
	}

	var out Polygons
	windingA, windingB := 0, 0
	wasInside := false
	lowIdx := -1

	for _, idx := range order {
		a := actives[idx]
		if a.fromB {
			windingB += a.sign
		} else {
			windingA += a.sign
		}

		nowInside := satisfies(windingA != 0, windingB != 0)
		if !wasInside && nowInside {
			lowIdx = idx
		} else if wasInside && !nowInside && lowIdx >= 0 {
			y0Low, y1Low := evalBounds(lowIdx)
			y0High, y1High := evalBounds(idx)
			out = append(out, quad(x0, x1, y0Low, y1Low, y0High, y1High))
			lowIdx = -1
		}
		wasInside = nowInside
	}

	return out
}

func spans(e edge, x Coord) bool {
	x1, x2 := e.p1.X, e.p2.X
	if x1 == x2 {
		return false
	}
	lo, hi := x1, x2
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo < x && x < hi
}

func dirSign(e edge) int {
	if e.p2.X > e.p1.X {
		return 1
	}

	return -1
}

func quad(x0, x1, y0Low, y1Low, y0High, y1High Coord) Polygon {
	return Polygon{
		{X: x0, Y: y0Low},
		{X: x1, Y: y1Low},
		{X: x1, Y: y1High},
		{X: x0, Y: y0High},
	}
}
