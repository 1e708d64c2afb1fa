// SPDX-License-Identifier: MIT
package propagate

import (
	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/settings"
)

// candidateOrder builds the fallback sequence spec.md §4.C describes in
// prose ("try (no_grow, no_move, Fast avoidance) first; fall through to
// (grow, no_move) -> (no_grow, move, slow) -> (grow, move, slow) -> (Slow
// avoidance variants) -> (Safe->non-Safe) -> finally, if no_error,
// accept even degenerate geometry") into a concrete, ordered list.
//
// Once an element has latched CanUseSafeRadius, non-safe avoidance types
// are dropped from the order entirely: spec.md §4.C forbids "a regression
// to non-safe... on subsequent layers". The two non-safe candidates that
// would grow the radius are dropped when the element is still locked
// (distance_to_top < dont_move_until), since they would be identical to
// the non-growing candidate at that point. The Safe candidates that set
// IncreaseRadius stay in the order either way; candidateArea does not
// grow a locked element's radius for them.
func candidateOrder(e *element.SupportElement, sett settings.TreeSupportSettings) []element.AreaIncreaseSettings {
	locked := e.DistanceToTop < e.DontMoveUntil
	slow := sett.MaximumMoveDistanceSlow
	fast := sett.MaximumMoveDistance

	order := []element.AreaIncreaseSettings{
		{AvoidanceType: element.Fast, IncreaseSpeed: 0, IncreaseRadius: false, Move: false},
	}
	if !locked {
		order = append(order, element.AreaIncreaseSettings{AvoidanceType: element.Fast, IncreaseSpeed: 0, IncreaseRadius: true, Move: false})
	}
	order = append(order,
		element.AreaIncreaseSettings{AvoidanceType: element.Slow, IncreaseSpeed: slow, IncreaseRadius: false, Move: true},
	)
	if !locked {
		order = append(order, element.AreaIncreaseSettings{AvoidanceType: element.Slow, IncreaseSpeed: slow, IncreaseRadius: true, Move: true})
	}
	order = append(order,
		element.AreaIncreaseSettings{AvoidanceType: element.Slow, IncreaseSpeed: fast, IncreaseRadius: false, Move: true},
	)

	if e.Flags.CanUseSafeRadius {
		// Latched: drop every non-safe candidate built above.
		order = order[:0]
	}

	// Safe variants come after the non-safe ones are exhausted for this
	// layer; they are still tried before giving up, per §4.C's Safe
	// progression.
	order = append(order,
		element.AreaIncreaseSettings{AvoidanceType: element.FastSafe, IncreaseSpeed: 0, IncreaseRadius: false, Move: false},
		element.AreaIncreaseSettings{AvoidanceType: element.FastSafe, IncreaseSpeed: fast, IncreaseRadius: true, Move: true},
		element.AreaIncreaseSettings{AvoidanceType: element.SlowSafe, IncreaseSpeed: slow, IncreaseRadius: false, Move: true},
		element.AreaIncreaseSettings{AvoidanceType: element.SlowSafe, IncreaseSpeed: fast, IncreaseRadius: true, UseMinDistance: true, Move: true},
		element.AreaIncreaseSettings{AvoidanceType: element.SlowSafe, IncreaseSpeed: fast, IncreaseRadius: true, UseMinDistance: true, Move: true, NoError: true},
	)

	return order
}
