// SPDX-License-Identifier: MIT
// Package tipgen implements TipGenerator (component B): turning per-layer
// overhang polygons into the initial SupportElement tips propagation
// starts from.
//
// What:
//
//   - Generate(input, sett, collider, ids) reads each layer's overhang and
//     roof regions from input and produces a
//     map[layer][]*element.SupportElement of freshly minted tips, one per
//     seed point whose min_radius disk is not fully inside collision,
//     ready to be injected into AreaPropagator when it reaches that layer.
//
// Why:
//
//   - Branches do not all start at the same layer: tips are seeded
//     wherever an overhang first appears, so the generator returns a map
//     rather than a single top-layer slice (spec.md §4.B: "Tips may be
//     emitted on many layers").
package tipgen
