// SPDX-License-Identifier: MIT
// Package volumes implements ModelVolumes: the radius- and layer-indexed
// polygon caches that back collision and avoidance queries (component A).
//
// What:
//
//   - Collision(r, L): the region a branch of radius r must not enter on
//     layer L.
//   - Avoidance(r, L, type): the region a branch of radius r must stay
//     outside of while propagating downward from a higher layer, computed
//     inductively top-down across layer L+1.
//   - PlaceableOnModel(r, L) / AvoidanceToModel(r, L, type): the model-
//     landing variants of the above.
//
// Why:
//
//   - Every field is expensive to compute (polygon offsets and booleans
//     over the full model outline) and is queried many times per layer by
//     independent propagation workers, so results are memoized per
//     (field, radius, layer[, type]) key behind a single-writer-per-key
//     discipline: concurrent requests for the same key block on the first
//     computation rather than redoing the work, while distinct keys
//     proceed independently (core.Graph's per-concern sync.RWMutex
//     discipline, here one map+lock per field kind).
package volumes
