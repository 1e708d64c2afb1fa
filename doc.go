// Package treesupport generates organic tree-shaped support structures
// for FFF 3D printing: branches grow down from unsupported overhangs,
// merge where they meet, and land on the build plate or, where permitted,
// back on the model itself.
//
// What:
//
//   - Generate(ctx, input, sett, opts) runs the full pipeline: seed tips
//     from overhangs, propagate each branch one layer down at a time
//     (merging overlapping branches as they go), choose a centerline
//     point per element once the tree is complete, then rasterize the
//     result into per-layer support/roof/floor polygons.
//
// Under the hood the pipeline is six independent packages, each a single
// stage:
//
//	volumes/   — collision and avoidance field cache (ModelVolumes)
//	tipgen/    — seeds tips from overhang regions
//	propagate/ — grows one element one layer down
//	merge/     — fuses overlapping branches layer-locally
//	center/    — picks one centerline point per element, bottom-up
//	draw/      — rasterizes circles, ovalisation, and interfaces
//
// Why a package per stage rather than one large one: each stage has its
// own concurrency shape (propagate is per-element parallel, merge is a
// layer-local serial reduction, draw is parallel across layers), and
// keeping them as separate packages with narrow Volumes-style interfaces
// lets each be tested against a fake without constructing the others.
package treesupport
