// SPDX-License-Identifier: MIT
package settings

import "fmt"

// Validate runs the consistency checks spec.md §7 calls ConfigInvalid:
// negative radii, a zero tip_layers, and the other structural
// requirements every downstream component assumes hold. Mirrors
// flow.FlowOptions's "normalize once at the entry point" discipline,
// except settings are never auto-corrected: an invalid value is always
// an error, never silently defaulted.
func (s TreeSupportSettings) Validate() error {
	switch {
	case s.BranchRadius <= 0:
		return fmt.Errorf("settings: %w: branch_radius must be positive, got %d", ErrConfigInvalid, s.BranchRadius)
	case s.MinRadius <= 0:
		return fmt.Errorf("settings: %w: min_radius must be positive, got %d", ErrConfigInvalid, s.MinRadius)
	case s.MinRadius > s.BranchRadius:
		return fmt.Errorf("settings: %w: min_radius (%d) exceeds branch_radius (%d)", ErrConfigInvalid, s.MinRadius, s.BranchRadius)
	case s.TipLayers <= 0:
		return fmt.Errorf("settings: %w: tip_layers must be >= 1, got %d", ErrConfigInvalid, s.TipLayers)
	case s.MaximumMoveDistance <= 0:
		return fmt.Errorf("settings: %w: maximum_move_distance must be positive, got %d", ErrConfigInvalid, s.MaximumMoveDistance)
	case s.MaximumMoveDistanceSlow <= 0 || s.MaximumMoveDistanceSlow > s.MaximumMoveDistance:
		return fmt.Errorf("settings: %w: maximum_move_distance_slow must be positive and <= maximum_move_distance", ErrConfigInvalid)
	case s.XYMinDistance > s.XYDistance:
		return fmt.Errorf("settings: %w: xy_min_distance (%d) exceeds xy_distance (%d)", ErrConfigInvalid, s.XYMinDistance, s.XYDistance)
	case s.ZDistanceTopLayers < 0 || s.ZDistanceBottomLayers < 0:
		return fmt.Errorf("settings: %w: z_distance_top/bottom_layers must be >= 0", ErrConfigInvalid)
	case s.Resolution <= 0:
		return fmt.Errorf("settings: %w: resolution must be positive, got %d", ErrConfigInvalid, s.Resolution)
	case s.LayerHeight <= 0:
		return fmt.Errorf("settings: %w: layer_height must be positive, got %d", ErrConfigInvalid, s.LayerHeight)
	case s.SupportRestsOnModel && s.MinDTTToModel < 0:
		return fmt.Errorf("settings: %w: min_dtt_to_model must be >= 0 when support_rests_on_model is set", ErrConfigInvalid)
	}

	return nil
}
