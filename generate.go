// SPDX-License-Identifier: MIT
package treesupport

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/arborgen/treesupport/center"
	"github.com/arborgen/treesupport/draw"
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/merge"
	"github.com/arborgen/treesupport/propagate"
	"github.com/arborgen/treesupport/settings"
	"github.com/arborgen/treesupport/tipgen"
	"github.com/arborgen/treesupport/volumes"
)

const buildplateLayer = 0

// Generate runs the full pipeline over input, wiring components A-F:
//
//	Steps:
//	 1. Validate settings; construct the shared ModelVolumes cache.
//	 2. Seed tips from every layer with overhang (component B).
//	 3. Walk layers top-down: merge what's live on this layer
//	    (component D), record it, then propagate the merged set one
//	    layer down (component C). Repeat until the build plate.
//	 4. Center every element bottom-up (component E).
//	 5. Draw each layer's support/roof/floor polygons (component F).
//
// Cancellation is polled at every layer boundary of step 3 and before
// drawing each layer of step 5, per spec.md §5.
func Generate(ctx context.Context, input Input, sett settings.TreeSupportSettings, opts Options) (out Output, diag Diagnostics, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ip, ok := r.(internalPanic); ok {
				err = wrapErr(KindInternal, ip.err)
				return
			}
			err = wrapErr(KindInternal, fmt.Errorf("panic: %v", r))
		}
	}()

	if input == nil {
		return nil, Diagnostics{}, wrapErr(KindConfigInvalid, errNilInput)
	}
	if verr := sett.Validate(); verr != nil {
		return nil, Diagnostics{}, wrapErr(KindConfigInvalid, verr)
	}

	logger := opts.Logger

	mv, merr := newModelVolumes(input, sett, opts)
	if merr != nil {
		return nil, Diagnostics{}, wrapErr(KindConfigInvalid, merr)
	}

	ids := &element.IDGenerator{}

	tips, terr := tipgen.Generate(input, sett, mv, ids)
	if terr != nil {
		return nil, Diagnostics{}, wrapErr(KindGeometryDegenerate, terr)
	}

	totalBranches := 0
	for _, elems := range tips {
		totalBranches += len(elems)
	}
	logInfo(logger, "seeded %d tip(s) across layers %d..%d", totalBranches, input.MinLayer(), input.MaxLayer())

	tree, lost, gerr := growTree(ctx, tips, sett, mv, ids, opts.MaxWorkers, logger)
	if gerr != nil {
		return nil, Diagnostics{}, gerr
	}

	centerVol := center.Volumes{Collision: mv.Collision}
	if cerr := center.Run(tree, sett, centerVol); cerr != nil {
		if errors.Is(cerr, center.ErrUnreachable) {
			panic(internalPanic{err: fmt.Errorf("center: %w", cerr)})
		}
		return nil, Diagnostics{}, wrapErr(KindGeometryDegenerate, cerr)
	}

	drawn, derr := drawTree(ctx, tree, sett)
	if derr != nil {
		return nil, Diagnostics{}, derr
	}

	diag = buildDiagnostics(totalBranches, lost, sett)
	if diag.WarningThresholdExceeded {
		logWarn(logger, "lost %d/%d branch(es) (%d very lost)", diag.LostBranches, diag.TotalBranches, diag.VeryLostBranches)
	}

	return drawn, diag, nil
}

func newModelVolumes(input Input, sett settings.TreeSupportSettings, opts Options) (*volumes.ModelVolumes, error) {
	var vopts []volumes.Option
	if opts.MaxDistinctRadii > 0 {
		vopts = append(vopts, volumes.WithMaxDistinctRadii(opts.MaxDistinctRadii))
	}
	if opts.CacheEntriesPerField > 0 {
		vopts = append(vopts, volumes.WithCacheEntriesPerField(opts.CacheEntriesPerField))
	}

	return volumes.New(input, sett, vopts...)
}

// growTree walks layers from input.MaxLayer() down to the build plate,
// merging whatever is live on each layer and propagating the result one
// layer further down (spec.md §5's top-down data dependency).
func growTree(ctx context.Context, tips map[int][]*element.SupportElement, sett settings.TreeSupportSettings, mv *volumes.ModelVolumes, ids *element.IDGenerator, maxWorkers int, logger Logger) (map[int][]*element.SupportElement, []*element.SupportElement, error) {
	mergeVol := merge.Volumes{Avoidance: mv.Avoidance}
	propVol := propagate.Volumes{
		Avoidance:        mv.Avoidance,
		AvoidanceToModel: mv.AvoidanceToModel,
		PlaceableOnModel: mv.PlaceableOnModel,
	}

	top := topLayer(tips)
	tree := make(map[int][]*element.SupportElement)
	pending := make(map[int][]*element.SupportElement)
	var lost []*element.SupportElement

	for layer := top; layer >= buildplateLayer; layer-- {
		select {
		case <-ctx.Done():
			return nil, nil, wrapErr(KindCancelled, ctx.Err())
		default:
		}

		live := append(append([]*element.SupportElement(nil), tips[layer]...), pending[layer]...)
		delete(pending, layer)
		if len(live) == 0 {
			continue
		}

		merged, err := merge.Layer(live, layer, sett, mergeVol)
		if err != nil {
			return nil, nil, wrapErr(KindGeometryDegenerate, fmt.Errorf("layer %d: %w", layer, err))
		}
		assignFreshIDs(merged, ids)
		tree[layer] = merged

		if layer == buildplateLayer {
			break
		}

		res, err := propagate.Layer(ctx, merged, sett, propVol, maxWorkers)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, wrapErr(KindCancelled, ctx.Err())
			}
			return nil, nil, wrapErr(KindGeometryDegenerate, fmt.Errorf("layer %d: %w", layer, err))
		}

		pending[layer-1] = append(pending[layer-1], res.Children...)
		pending[layer-1] = append(pending[layer-1], res.Landed...)
		lost = append(lost, res.Lost...)

		if len(res.Lost) > 0 {
			logWarn(logger, "layer %d: %d branch(es) could not propagate further", layer, len(res.Lost))
		}
	}

	dead := pruneDeadBranches(tree, lost, sett.SupportRestsOnModel)

	return tree, dead, nil
}

// pruneDeadBranches removes or downgrades every element whose to_buildplate
// descent chain never reaches layer 0, run once after the whole tree has
// finished growing (spec.md §5 invariant #4: "some descent chain must
// terminate on layer 0 ... violators are deleted or downgraded to
// to_model_gracious"). Processes layers bottom-up (ascending from the build
// plate) so a parent's fate can depend on whether any already-resolved
// child below it still continues the descent: an element that failed every
// propagation candidate (lost) is a dead end outright, but an element with
// real geometry whose entire downward continuation just got pruned is
// exactly as dead, even though nothing about it individually looked wrong.
// Left uncorrected, either case stays committed to tree and gets drawn as a
// support island with nothing connecting it to the build plate or model
// below (draw.Layer rasterizes whatever ResultOnLayerSet it's handed).
//
// Returns, for diagnostics, every element in lost (whether it was then
// dropped or downgraded) plus every other element dropped here; elements
// that were downgraded without being in lost are not included.
func pruneDeadBranches(tree map[int][]*element.SupportElement, lost []*element.SupportElement, supportRestsOnModel bool) []*element.SupportElement {
	lostIDs := make(map[element.ID]bool, len(lost))
	for _, e := range lost {
		lostIDs[e.ID] = true
	}

	layers := make([]int, 0, len(tree))
	for l := range tree {
		layers = append(layers, l)
	}
	sort.Ints(layers)

	dropped := append([]*element.SupportElement(nil), lost...)

	var below []*element.SupportElement
	prevLayer, havePrev := 0, false

	for _, l := range layers {
		var reaches map[element.ID]bool
		if havePrev && prevLayer == l-1 {
			reaches = childIDsByParent(below)
		}

		kept := tree[l][:0]
		for _, e := range tree[l] {
			empty := e.InfluenceArea.Empty()
			unreachable := lostIDs[e.ID] || empty
			if !unreachable && e.Flags.ToBuildplate && l != buildplateLayer {
				unreachable = !reaches[e.ID]
			}

			switch {
			case !unreachable:
				kept = append(kept, e)
			case !empty && e.Flags.ToBuildplate && supportRestsOnModel:
				// Real geometry to rest on, just not guaranteed to reach
				// the build plate after all: downgrade instead of
				// dropping it outright.
				e.Flags.ToBuildplate = false
				e.Flags.ToModelGracious = true
				kept = append(kept, e)
			default:
				if !lostIDs[e.ID] {
					dropped = append(dropped, e)
				}
			}
		}

		if len(kept) == 0 {
			delete(tree, l)
		} else {
			tree[l] = kept
		}

		below, prevLayer, havePrev = kept, l, true
	}

	return dropped
}

// childIDsByParent indexes the ids a resolved (post-pruning) layer-below
// set declares as Parents, so the layer above can tell which of its
// elements still has a live continuation.
func childIDsByParent(below []*element.SupportElement) map[element.ID]bool {
	index := make(map[element.ID]bool)
	for _, c := range below {
		for _, p := range c.Parents {
			index[p] = true
		}
	}
	return index
}

// assignFreshIDs gives every merge result (ID == 0, per merge.fuse's
// contract) a real id before it becomes a propagation input.
func assignFreshIDs(elems []*element.SupportElement, ids *element.IDGenerator) {
	for _, e := range elems {
		if e.ID == 0 {
			e.ID = ids.Next()
		}
	}
}

func topLayer(tips map[int][]*element.SupportElement) int {
	top := buildplateLayer
	for l := range tips {
		if l > top {
			top = l
		}
	}
	return top
}

// drawTree rasterizes tree layer by layer, polling ctx before each one
// (spec.md §5: "before drawing each layer").
func drawTree(ctx context.Context, tree map[int][]*element.SupportElement, sett settings.TreeSupportSettings) (Output, error) {
	dtree := make(draw.Tree, len(tree))
	for l, elems := range tree {
		dtree[l] = elems
	}

	byLayerID := draw.IndexByID(dtree)
	floor := draw.PrepareFloorZones(dtree, byLayerID, sett.SupportBottomLayers)

	layers := make([]int, 0, len(dtree))
	for l := range dtree {
		layers = append(layers, l)
	}
	sort.Ints(layers)

	out := make(Output, len(layers))
	for _, l := range layers {
		select {
		case <-ctx.Done():
			return nil, wrapErr(KindCancelled, ctx.Err())
		default:
		}
		out[l] = draw.Layer(dtree[l], l, byLayerID[l+1], floor[l], sett)
	}

	return out, nil
}

// buildDiagnostics classifies lost branches per spec.md §7: a branch that
// died within its own tip zone never supported meaningful overhang area
// and is "very lost"; any other lost branch is merely "lost".
func buildDiagnostics(total int, lost []*element.SupportElement, sett settings.TreeSupportSettings) Diagnostics {
	diag := Diagnostics{TotalBranches: total, LostBranches: len(lost)}
	for _, e := range lost {
		if e.DistanceToTop < sett.TipLayers {
			diag.VeryLostBranches++
		}
	}
	if total > 0 && float64(diag.LostBranches)/float64(total) > 0.05 {
		diag.WarningThresholdExceeded = true
	}
	if diag.VeryLostBranches > 0 {
		diag.WarningThresholdExceeded = true
	}
	return diag
}

func logInfo(l Logger, msg string, args ...interface{}) {
	if l != nil {
		l.Info(msg, args...)
	}
}

func logWarn(l Logger, msg string, args ...interface{}) {
	if l != nil {
		l.Warn(msg, args...)
	}
}
