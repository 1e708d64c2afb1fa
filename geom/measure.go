// SPDX-License-Identifier: MIT
package geom

// Area returns the signed area of a single contour via the shoelace
// formula. Positive for counter-clockwise winding, negative for clockwise.
// Complexity: O(n).
func (p Polygon) Area() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}

	var sum int64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}

	return float64(sum) / 2
}

// Area returns the total unsigned area of the region: the sum of the
// absolute areas of every contour. Because outer contours are wound CCW
// (positive) and holes CW (negative) by convention, a correctly nested
// Polygons value's *signed* total already nets out hole area; Area()
// reports the unsigned magnitude callers usually want for logging and
// size heuristics (e.g. TipGenerator seed spacing).
func (ps Polygons) Area() float64 {
	var total float64
	for _, poly := range ps {
		a := poly.Area()
		if a < 0 {
			a = -a
		}
		total += a
	}

	return total
}

// SignedArea returns the net signed area (outer minus holes), which is
// the true area of the multiply-connected region when contours are wound
// per convention.
func (ps Polygons) SignedArea() float64 {
	var total float64
	for _, poly := range ps {
		total += poly.Area()
	}

	return total
}

// BoundingBox returns the axis-aligned bounding box (min, max corners) of
// the region. Returns (Point{}, Point{}, false) for an empty region.
func (ps Polygons) BoundingBox() (min, max Point, ok bool) {
	first := true
	for _, poly := range ps {
		for _, p := range poly {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}

	return min, max, !first
}

// Centroid returns the area-weighted centroid of the region. Falls back to
// the vertex average when total signed area is ~0 (degenerate/thin region).
func (ps Polygons) Centroid() Point {
	var cx, cy, area float64
	for _, poly := range ps {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			cross := float64(poly[i].X*poly[j].Y - poly[j].X*poly[i].Y)
			cx += (float64(poly[i].X) + float64(poly[j].X)) * cross
			cy += (float64(poly[i].Y) + float64(poly[j].Y)) * cross
			area += cross
		}
	}
	if area == 0 {
		return averageVertex(ps)
	}

	area /= 2
	return Point{
		X: Coord(cx / (6 * area)),
		Y: Coord(cy / (6 * area)),
	}
}

func averageVertex(ps Polygons) Point {
	var sx, sy, n int64
	for _, poly := range ps {
		for _, p := range poly {
			sx += p.X
			sy += p.Y
			n++
		}
	}
	if n == 0 {
		return Point{}
	}

	return Point{X: sx / n, Y: sy / n}
}

// edge is a directed segment of a contour. It carries no winding tag of
// its own: the nonzero-winding-number membership test derives each edge's
// +1/-1 contribution from its X direction, so CCW outer contours and CW
// holes net out through their vertex order alone.
type edge struct {
	p1, p2 Point
}

func collectEdges(ps Polygons) []edge {
	var edges []edge
	for _, poly := range ps {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			edges = append(edges, edge{p1: poly[i], p2: poly[j]})
		}
	}

	return edges
}

// windingAt returns the nonzero winding number of the edge set at the
// point (x, y), using the standard vertical-ray crossing rule: every edge
// whose x-span strictly contains x contributes +1 if it runs from lower
// to higher x, or -1 otherwise, for every crossing below y.
func windingAt(edges []edge, x, y Coord) int {
	winding := 0
	for _, e := range edges {
		x1, x2 := e.p1.X, e.p2.X
		if x1 == x2 {
			continue
		}
		if (x1 < x && x2 < x) || (x1 > x && x2 > x) {
			continue
		}
		cy := lerpY(e, x)
		if cy > y {
			continue
		}
		if x2 > x1 {
			winding++
		} else {
			winding--
		}
	}

	return winding
}

func lerpY(e edge, x Coord) Coord {
	if e.p1.X == e.p2.X {
		return e.p1.Y
	}
	t := float64(x-e.p1.X) / float64(e.p2.X-e.p1.X)

	return Coord(float64(e.p1.Y) + t*float64(e.p2.Y-e.p1.Y))
}

// Contains reports whether p lies in the interior of the region under the
// nonzero winding rule. Points whose X exactly matches a vertex X are
// nudged by one micrometer to break the tie, since exact-vertex membership
// is not meaningful for the continuous region this type represents.
func (ps Polygons) Contains(p Point) bool {
	edges := collectEdges(ps)
	x := p.X
	for _, e := range edges {
		if e.p1.X == x || e.p2.X == x {
			x++
			break
		}
	}

	return windingAt(edges, x, p.Y) != 0
}
