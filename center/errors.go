// SPDX-License-Identifier: MIT
package center

import "errors"

// ErrNoVolumes indicates Run was called without a collision source.
var ErrNoVolumes = errors.New("center: no volumes supplied")

// ErrUnreachable indicates an element's influence area could not supply
// even a single fallback point after every relaxation step, which
// violates spec.md §5's invariant that the area is never empty.
var ErrUnreachable = errors.New("center: element has no placeable point")
