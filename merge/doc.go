// SPDX-License-Identifier: MIT
// Package merge implements Merger (component D): fusing elements on the
// same layer whose influence areas overlap, once their combined radius
// still fits the merged avoidance field.
//
// What:
//
//   - Layer(elements, layer, sett, vol) repeatedly finds the single best
//     overlapping pair (by decreasing intersection area, ties broken by
//     element id), fuses it, and reprocesses until no more pairs qualify
//     (spec.md §4.D: "merging is iterative... run within the layer until
//     a fixed point").
//
// Why:
//
//   - Processing pairs in a fixed, deterministic order — rather than
//     whatever order a map or goroutine happens to produce them — is what
//     keeps §5's "thread interleaving must not affect the result"
//     guarantee from being broken by the one genuinely serial step in the
//     per-layer pipeline. Grounded on graph/prim_kruskal.go's sort-
//     candidates-then-process-in-order shape.
package merge
