// SPDX-License-Identifier: MIT
// Package settings defines TreeSupportSettings, the immutable
// configuration shared by every component (A-F) of the tree support
// pipeline, and the radius schedule R(dtt) every component queries to
// turn a branch's distance-to-top into a physical radius.
//
// What:
//
//   - TreeSupportSettings: the full option set from spec.md §3.
//   - Validate: consistency checks run once before a generation begins.
//   - Radius: the R(dtt) schedule (tip ramp, then per-layer growth, then
//     elephant-foot widening near the build plate).
//   - ActualZ: per-layer Z lookup with the §9 open-question resolution
//     (clamp past the end of the known range).
//
// Why:
//
//   - Every component takes a TreeSupportSettings by value (it never
//     mutates after construction), so validating once up front lets every
//     downstream component skip re-validation, the same shape as
//     flow.FlowOptions.normalize() / builder.newBuilderConfig(opts...).
//
// Errors:
//
//	ErrConfigInvalid - wraps the first consistency violation found.
package settings
