// SPDX-License-Identifier: MIT
package geom

import "math"

// Circle returns a regular segments-gon approximating a circle of the
// given radius centered at center, vertices in CCW order. Shared by
// tipgen (initial tip disks) and draw (branch circles), both of which
// need the same polygonal circle approximation at different vertex
// counts.
func Circle(center Point, radius Coord, segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	if radius <= 0 {
		return nil
	}

	poly := make(Polygon, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		poly[i] = Point{
			X: center.X + Coord(math.Round(float64(radius)*math.Cos(theta))),
			Y: center.Y + Coord(math.Round(float64(radius)*math.Sin(theta))),
		}
	}

	return poly
}
