// SPDX-License-Identifier: MIT
package propagate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/settings"
	"golang.org/x/sync/errgroup"
)

// LayerResult aggregates one layer's propagation pass.
type LayerResult struct {
	Children []*element.SupportElement
	Landed   []*element.SupportElement
	Lost     []*element.SupportElement
}

// Layer propagates every element in live down one layer concurrently,
// workers bounded by maxWorkers (runtime.NumCPU() if <= 0). Uses the
// errgroup.WithContext + SetLimit worker pool shape of
// junjiewwang-perf-analysis's hprof parser, with one g.Go call per element
// rather than a task channel, since §5 states elements on the same layer propagate
// independently except for their shared read-only Volumes queries.
func Layer(ctx context.Context, live []*element.SupportElement, sett settings.TreeSupportSettings, vol Volumes, maxWorkers int) (LayerResult, error) {
	if vol.Avoidance == nil {
		return LayerResult{}, ErrNoVolumes
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	outcomes := make([]Outcome, len(live))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, e := range live {
		i, e := i, e
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			outcome, err := Step(e, sett, vol)
			if err != nil {
				return fmt.Errorf("propagate: layer %d: %w", e.LayerIdx, err)
			}
			outcomes[i] = outcome

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return LayerResult{}, err
	}

	var res LayerResult
	for i, outcome := range outcomes {
		switch outcome.Kind {
		case Accepted:
			res.Children = append(res.Children, outcome.Child)
		case Landed:
			res.Landed = append(res.Landed, outcome.Child)
		case Rejected:
			res.Lost = append(res.Lost, live[i])
		}
	}

	return res, nil
}
