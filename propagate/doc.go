// SPDX-License-Identifier: MIT
// Package propagate implements AreaPropagator (component C): the per-
// element, per-layer state machine that walks an element's influence area
// one layer down.
//
// What:
//
//   - Step(e, layer-1) tries an ordered list of AreaIncreaseSettings
//     candidates against e, accepting the first that yields a non-empty
//     area, then trying a landing on the model, then accepting the final
//     no_error candidate even with an empty area; it returns the child
//     element, a landed terminal element, or a rejection the caller
//     should treat as lost (spec.md §4.C).
//   - Layer(ctx, elements, layer-1) runs Step for every live element on a
//     layer concurrently, using the errgroup worker pool shape
//     junjiewwang-perf-analysis's hprof parser uses for
//     independent per-item work (spec.md §5: "all elements on the same
//     layer may be propagated in parallel").
//
// Why:
//
//   - Candidates are tried cheapest-and-most-conservative first so a
//     branch only grows, moves, or switches to a more permissive
//     avoidance field when a cheaper option truly cannot produce a valid
//     area; §4.C calls this out explicitly as "the ordering defines the
//     policy".
package propagate
