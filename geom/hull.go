// SPDX-License-Identifier: MIT
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ConvexHull returns the convex hull of a point set, used by the Drawer
// (component F) to build the "ovalisation" polygon smoothing a parent and
// child branch disk together. Delegates to orb/planar, which this module
// pulls in specifically for this operation (see DESIGN.md: geom).
func ConvexHull(points []Point) (Polygon, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}

	hull := planar.ConvexHull(pointsToOrb(points))
	poly, ok := hull.(orb.Polygon)
	if !ok || len(poly) == 0 {
		return nil, ErrDegenerateInput
	}

	out := make(Polygon, 0, len(poly[0]))
	for i, p := range poly[0] {
		// orb closes rings by repeating the first point; drop the
		// duplicate closing vertex to match this package's convention
		// of an implicitly-closed Polygon.
		if i == len(poly[0])-1 && p == poly[0][0] {
			continue
		}
		out = append(out, Point{X: Coord(p[0]), Y: Coord(p[1])})
	}

	return out, nil
}

func pointsToOrb(points []Point) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = orb.Point{float64(p.X), float64(p.Y)}
	}

	return mp
}
