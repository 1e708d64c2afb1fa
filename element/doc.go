// SPDX-License-Identifier: MIT
// Package element defines SupportElement, the single node type of the
// branch tree spec.md §3 describes, plus the per-layer Arena that stores
// elements with stable integer ids.
//
// What:
//
//   - SupportElement: the full per-branch state carried layer to layer.
//   - Flags: the per-element decisions as a struct of bools (ToBuildplate,
//     ToModelGracious, UseMinXYDist, SupportsRoof, CanUseSafeRadius,
//     SkipOvalisation, Deleted, Marked).
//   - Arena: a flat, append-only store of elements for one layer, keyed
//     by a monotonically increasing ID, adapted from
//     core.Graph's vertices map / nextEdgeID discipline (spec.md §5:
//     "flat arena per layer with stable integer ids").
//
// Why:
//
//   - Parent/child links are DAG edges that only ever point from a
//     layer to the layer above; storing elements by small integer id
//     per layer (rather than pointer) keeps the DAG acyclic by
//     construction and lets merge/center/draw sort deterministically by
//     id as spec.md §5 requires.
package element
