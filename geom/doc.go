// SPDX-License-Identifier: MIT
// Package geom provides the integer 2D polygon primitives the tree support
// pipeline is built on: points and multi-contour polygons in micrometer
// fixed point, boolean set operations, Minkowski offset, simplification,
// point containment, and convex hull.
//
// What:
//
//   - Point: an (X, Y) pair of coord_t (int64 micrometers).
//   - Polygon: one contour (outer CCW, hole CW by convention of the caller).
//   - Polygons: a multi-contour region, the unit every other package in this
//     module operates on.
//   - Union/Intersect/Difference: boolean set algebra over Polygons.
//   - Offset: Minkowski grow/shrink by a signed distance with rounded joins.
//   - Simplify: Douglas-Peucker style deviation-bounded point reduction.
//   - ConvexHull: hull of a point set, used for branch ovalisation.
//
// Why:
//
//   - Every component (A–F) in this module reasons about regions on a
//     single layer; centralizing the algebra here keeps that reasoning
//     consistent and independently testable.
//
// Errors:
//
//	ErrDegenerateInput - an operation was asked to act on a polygon with
//	                     fewer than 3 distinct vertices.
//
// Standard-library note: boolean ops, offsetting, and centroid/containment
// are hand-rolled on int64 arithmetic. No polygon-clipping library
// (Vatti/Greiner-Hormann/clipper-style) appears anywhere in the retrieval
// pack, and the specification treats a polygon library as an assumed
// external collaborator (see SPEC_FULL.md/geom entry in DESIGN.md).
// ConvexHull delegates to github.com/paulmach/orb/planar; the floating
// point vector math for the propagator's move tie-break (package
// propagate) delegates to gonum.org/v1/gonum/spatial/r2, both grounded on
// pack go.mod requirements.
package geom
