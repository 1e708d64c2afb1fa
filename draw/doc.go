// SPDX-License-Identifier: MIT
// Package draw implements Drawer (component F): turning centered
// elements into the three polygon collections a layer hands back to the
// surrounding slicer.
//
// What:
//
//   - Generate(tree, sett) rasterizes each element's circle, adds the
//     ovalisation hull towards its parent one layer up, unions everything
//     into the layer's raw region, then splits roof and floor interface
//     area out of it per sett.InterfacePreference.
//
// Why:
//
//   - The ovalisation hull is built with the same paulmach/orb-backed
//     convex hull the Merger's neighbor (geom.ConvexHull) already uses,
//     reused here instead of a second hull implementation.
package draw
