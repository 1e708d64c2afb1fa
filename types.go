// SPDX-License-Identifier: MIT
package treesupport

import (
	"github.com/arborgen/treesupport/draw"
	"github.com/arborgen/treesupport/geom"
)

// Input is the per-layer geometry the surrounding slicer supplies (spec.md
// §6). Its method set is a superset of both volumes.LayerInput and
// tipgen.OverhangInput, so a single implementation satisfies what both
// component A and component B need.
type Input interface {
	// Outline returns the model's solid cross-section on layer.
	Outline(layer int) geom.Polygons
	// PlaceableTopSurfaces returns the upward-facing flat model regions
	// on layer where a branch tip may rest.
	PlaceableTopSurfaces(layer int) geom.Polygons
	// Blockers returns user-painted no-support regions on layer. May
	// return nil.
	Blockers(layer int) geom.Polygons
	// Overhang returns the regions on layer requiring support.
	Overhang(layer int) geom.Polygons
	// RoofRegion returns the subset of Overhang(layer) additionally
	// requiring a roof interface. May return nil.
	RoofRegion(layer int) geom.Polygons
	// MinLayer and MaxLayer bound the range the other methods hold real
	// data for; queries outside are treated as empty.
	MinLayer() int
	MaxLayer() int
}

// Logger is the optional diagnostic hook, mirroring the nil-safe,
// printf-style shape junjiewwang-perf-analysis's utils.Logger uses. A nil
// Logger is always valid; Generate never calls through a nil receiver.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

// Options configures one Generate call. The zero value is valid and uses
// package defaults.
type Options struct {
	// MaxWorkers bounds per-layer propagation parallelism; <= 0 means
	// runtime.NumCPU().
	MaxWorkers int
	// MaxDistinctRadii bounds ModelVolumes's radius ladder; <= 0 means
	// the package default.
	MaxDistinctRadii int
	// CacheEntriesPerField bounds each ModelVolumes field's LRU size;
	// <= 0 means the package default.
	CacheEntriesPerField int
	// Logger receives progress and warning messages. May be nil.
	Logger Logger
}

// Diagnostics aggregates branch outcomes across the whole run (spec.md §7:
// "reported in aggregate, not per-element").
type Diagnostics struct {
	TotalBranches            int
	LostBranches              int
	VeryLostBranches          int
	WarningThresholdExceeded bool
}

// Output is the three polygon collections per layer handed back to the
// surrounding slicer (spec.md §6).
type Output = draw.Output
