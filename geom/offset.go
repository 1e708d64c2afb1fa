// SPDX-License-Identifier: MIT
package geom

import "math"

// arcResolutionDegrees bounds the angular step used when inserting round
// join vertices while growing a contour outward, matching the spirit of
// SUPPORT_TREE_CIRCLE_RESOLUTION used elsewhere for drawn circles.
const arcResolutionDegrees = 15.0

// Offset returns the Minkowski offset of the region by distance (positive
// grows, negative shrinks), with round outer joins on convex corners while
// growing and a plain miter join while shrinking or on concave corners; a
// corner turning by more than 120 degrees, whose miter would reach past
// twice the offset distance, is joined at the midpoint of its two offset
// vertices instead.
// Each contour is offset independently along its own outward normal,
// which already accounts for hole orientation: a CCW (outer, positive
// area) contour's outward normal points away from its interior, a CW
// (hole, negative area) contour's outward normal points into the solid it
// bounds, so growing a region with a hole correctly shrinks the hole.
func Offset(ps Polygons, distance Coord) Polygons {
	if distance == 0 {
		return ps.Clone()
	}

	out := make(Polygons, 0, len(ps))
	for _, poly := range ps {
		if len(poly) < 3 {
			continue
		}
		out = append(out, offsetContour(poly, distance))
	}

	return out
}

func offsetContour(poly Polygon, distance Coord) Polygon {
	n := len(poly)
	ccw := poly.Area() >= 0
	d := float64(distance)
	if !ccw {
		d = -d
	}

	var result Polygon
	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		cur := poly[i]
		next := poly[(i+1)%n]

		n1 := outwardNormal(prev, cur, d)
		n2 := outwardNormal(cur, next, d)

		p1 := Point{X: cur.X + Coord(n1.x), Y: cur.Y + Coord(n1.y)}
		p2 := Point{X: cur.X + Coord(n2.x), Y: cur.Y + Coord(n2.y)}

		if d > 0 && isConvexTurn(prev, cur, next, ccw) {
			result = append(result, arcBetween(cur, p1, p2, d)...)
		} else if cosTurn := (n1.x*n2.x + n1.y*n2.y) / (d * d); cosTurn > -0.5 {
			// Miter join: the two offset edge lines meet at
			// cur + (n1+n2)/(1+cos), cos being the normals' dot product.
			k := 1 / (1 + cosTurn)
			result = append(result, Point{X: cur.X + Coord(math.Round((n1.x+n2.x)*k)), Y: cur.Y + Coord(math.Round((n1.y+n2.y)*k))})
		} else {
			result = append(result, midpoint(p1, p2))
		}
	}

	return result
}

type vec2 struct{ x, y float64 }

func outwardNormal(a, b Point, signedDistance float64) vec2 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return vec2{}
	}
	// Rotate the edge direction by -90 degrees to get the normal that
	// points away from the interior for a CCW contour; offsetContour
	// already flips the sign of signedDistance for CW contours.
	nx, ny := dy/length, -dx/length

	return vec2{x: nx * signedDistance, y: ny * signedDistance}
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func isConvexTurn(prev, cur, next Point, ccw bool) bool {
	cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
	if ccw {
		return cross > 0
	}

	return cross < 0
}

// arcBetween samples a circular arc of radius |d| centered at center from
// p1 to p2, at arcResolutionDegrees steps, approximating a round join.
func arcBetween(center, p1, p2 Point, d float64) Polygon {
	a1 := math.Atan2(float64(p1.Y-center.Y), float64(p1.X-center.X))
	a2 := math.Atan2(float64(p2.Y-center.Y), float64(p2.X-center.X))
	radius := math.Abs(d)

	// Normalize so the arc sweeps the short way in the outward direction.
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	sweep := a2 - a1
	if sweep > math.Pi {
		a1, a2 = a2, a1+2*math.Pi
		sweep = a2 - a1
	}

	steps := int(sweep/(arcResolutionDegrees*math.Pi/180)) + 1
	arc := make(Polygon, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := a1 + sweep*float64(i)/float64(steps)
		arc = append(arc, Point{
			X: center.X + Coord(radius*math.Cos(t)),
			Y: center.Y + Coord(radius*math.Sin(t)),
		})
	}

	return arc
}
