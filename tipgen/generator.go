// SPDX-License-Identifier: MIT
package tipgen

import (
	"fmt"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// Generate seeds tip SupportElements from overhang regions across the
// whole known layer range of input, returning layer -> tips emitted on
// that layer (spec.md §4.B).
func Generate(input OverhangInput, sett settings.TreeSupportSettings, collider Collider, ids *element.IDGenerator) (map[int][]*element.SupportElement, error) {
	if collider == nil {
		return nil, ErrNoCollider
	}

	out := make(map[int][]*element.SupportElement)
	for layer := input.MinLayer(); layer <= input.MaxLayer(); layer++ {
		overhang := input.Overhang(layer)
		if overhang.Empty() {
			continue
		}

		shrunk := geom.Offset(overhang, -sett.SupportLineWidth/2)
		if shrunk.Empty() {
			continue
		}

		roof := input.RoofRegion(layer)
		seeds := seedPoints(shrunk, sett.BranchRadius)
		if len(seeds) == 0 {
			continue
		}

		tips, err := tipsAt(layer, seeds, roof, sett, collider, ids)
		if err != nil {
			return nil, fmt.Errorf("tipgen: layer %d: %w", layer, err)
		}
		if len(tips) > 0 {
			out[layer] = tips
		}
	}

	return out, nil
}

func tipsAt(layer int, seeds []geom.Point, roof geom.Polygons, sett settings.TreeSupportSettings, collider Collider, ids *element.IDGenerator) ([]*element.SupportElement, error) {
	collision, err := collider.Collision(sett.MinRadius, layer, sett.UseMinXYDistDefault)
	if err != nil {
		return nil, err
	}

	tips := make([]*element.SupportElement, 0, len(seeds))
	for _, seed := range seeds {
		disk := geom.Polygons{geom.Circle(seed, sett.MinRadius, settings.SupportTreeCircleResolution)}
		area := geom.Difference(disk, collision)
		if area.Empty() {
			// No collision-free room for even the minimal tip disk at
			// this seed; skip it rather than emit an element with no
			// valid influence area.
			continue
		}

		tip := &element.SupportElement{
			ID:                    ids.Next(),
			TargetHeight:          layer,
			TargetPosition:        seed,
			LayerIdx:              layer,
			NextPosition:          seed,
			EffectiveRadiusHeight: 0,
			DistanceToTop:         0,
			DontMoveUntil:         sett.TipLayers,
			InfluenceArea:         area,
			Flags: element.Flags{
				ToBuildplate:     true,
				UseMinXYDist:     sett.UseMinXYDistDefault,
				SupportsRoof:     !roof.Empty() && roof.Contains(seed),
				CanUseSafeRadius: false,
			},
		}
		tips = append(tips, tip)
	}

	return tips, nil
}
