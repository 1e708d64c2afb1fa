// SPDX-License-Identifier: MIT
package geom

// Coord is the fixed-point scalar every distance, radius, and coordinate in
// this module is expressed in: integer micrometers.
type Coord = int64

// Point is a single vertex in micrometer fixed point.
type Point struct {
	X, Y Coord
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by a rational factor expressed as num/den, rounding
// to the nearest integer coordinate.
func (p Point) Scale(num, den int64) Point {
	return Point{
		X: roundDiv(p.X*num, den),
		Y: roundDiv(p.Y*num, den),
	}
}

func roundDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	if (a < 0) != (b < 0) {
		return (a - b/2) / b
	}
	return (a + b/2) / b
}

// Polygon is a single closed contour: outer boundaries are wound
// counter-clockwise, holes clockwise, by convention of the caller that
// assembles a Polygons value.
type Polygon []Point

// Polygons is a collection of contours treated as a single, possibly
// multiply-connected and multiply-bounded, region. It is the unit every
// component in this module (A-F) computes and stores.
type Polygons []Polygon

// Empty reports whether the region contains no contours (or only
// degenerate ones with fewer than 3 vertices).
func (ps Polygons) Empty() bool {
	for _, poly := range ps {
		if len(poly) >= 3 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy, so callers may mutate the result without
// aliasing the receiver. SupportElement.InfluenceArea is replaced by value
// on every propagation step (see element.SupportElement), which requires
// this independence.
func (ps Polygons) Clone() Polygons {
	out := make(Polygons, len(ps))
	for i, poly := range ps {
		cp := make(Polygon, len(poly))
		copy(cp, poly)
		out[i] = cp
	}

	return out
}
