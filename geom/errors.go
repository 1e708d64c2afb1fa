// SPDX-License-Identifier: MIT
package geom

import "errors"

// Sentinel errors for geom operations.
var (
	// ErrDegenerateInput indicates a polygon operation was given fewer
	// than 3 distinct vertices where a non-degenerate contour was required.
	ErrDegenerateInput = errors.New("geom: degenerate polygon input")

	// ErrEmptyPointSet indicates ConvexHull was asked to hull zero points.
	ErrEmptyPointSet = errors.New("geom: empty point set")
)
