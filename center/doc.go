// SPDX-License-Identifier: MIT
// Package center implements Centerer (component E): choosing one
// centerline point per element per layer once propagation and merging
// have finished.
//
// What:
//
//   - Run(tree, sett, vol) walks every layer bottom-up (layer 0 first)
//     and sets ResultOnLayer on every element, honoring the constraint
//     relaxation order of spec.md §4.E: inside the influence area,
//     outside collision, and within reach of already-placed children;
//     if no point satisfies everything, child reach is relaxed first and
//     then collision.
//
// Why:
//
//   - Bottom-up processing is required because a parent's candidate
//     region depends on where its children already landed; grounded on
//     graph/dijkstra.go's relaxation-with-fallback shape (try the
//     tightest constraint, relax in a fixed order on failure) applied
//     here to geometry instead of edge weights.
package center
