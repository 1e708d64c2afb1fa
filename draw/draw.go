// SPDX-License-Identifier: MIT
package draw

import (
	"sort"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// Generate rasterizes every layer of tree into base/roof/floor polygons
// (spec.md §4.F). Layers are independent of each other once tree is
// fully centered, so callers may run Generate per-layer in parallel;
// this entry point itself processes them sequentially for determinism
// in tests.
func Generate(tree Tree, sett settings.TreeSupportSettings) (Output, error) {
	if len(tree) == 0 {
		return nil, ErrNoTree
	}

	byLayerID := IndexByID(tree)
	floor := PrepareFloorZones(tree, byLayerID, sett.SupportBottomLayers)

	out := make(Output, len(tree))
	for layer, elems := range tree {
		out[layer] = Layer(elems, layer, byLayerID[layer+1], floor[layer], sett)
	}

	return out, nil
}

// IndexByID builds the per-layer id index Layer and PrepareFloorZones
// need, shared across every layer of one Generate run so callers driving
// layers one at a time (e.g. to poll a cancellation token between them)
// only build it once.
func IndexByID(tree Tree) map[int]map[element.ID]*element.SupportElement {
	idx := make(map[int]map[element.ID]*element.SupportElement, len(tree))
	for layer, elems := range tree {
		m := make(map[element.ID]*element.SupportElement, len(elems))
		for _, e := range elems {
			m[e.ID] = e
		}
		idx[layer] = m
	}
	return idx
}

// Layer rasterizes one layer's worth of elements; callers driving layers
// one at a time pass the shared IndexByID/PrepareFloorZones output for
// this layer so repeated calls don't recompute either.
func Layer(elems []*element.SupportElement, layer int, above map[element.ID]*element.SupportElement, floorIDs map[element.ID]bool, sett settings.TreeSupportSettings) LayerOutput {
	sorted := append([]*element.SupportElement(nil), elems...)
	element.SortByID(sorted)

	var raw, roofMask, floorMask geom.Polygons
	for _, e := range sorted {
		if !e.ResultOnLayerSet {
			continue
		}

		r := sett.Radius(e.EffectiveRadiusHeight, e.ElephantFootIncreases)
		circle := geom.Circle(e.ResultOnLayer, r, settings.SupportTreeCircleResolution)
		raw = geom.Union(raw, geom.Polygons{circle})

		for _, hull := range ovalisationHulls(e, circle, above, sett) {
			raw = geom.Union(raw, geom.Polygons{hull})
		}

		if e.Flags.SupportsRoof && e.DistanceToTop < sett.SupportRoofLayers {
			roofMask = geom.Union(roofMask, geom.Polygons{circle})
		}
		if floorIDs[e.ID] {
			floorMask = geom.Union(floorMask, geom.Polygons{circle})
		}
	}

	base, roof, floorOut := resolveInterfaces(raw, roofMask, floorMask, sett.InterfacePreference)

	return LayerOutput{
		Base:  base.Simplify(sett.Resolution),
		Roof:  roof.Simplify(sett.Resolution),
		Floor: floorOut.Simplify(sett.Resolution),
	}
}

// ovalisationHulls builds the smoothing polygon between e's own circle and
// each of its parents' circles one layer up, clipped back to e's influence
// area so the hull cannot bridge through a collision obstacle between the
// two layers (spec.md §4.F).
func ovalisationHulls(e *element.SupportElement, circle geom.Polygon, above map[element.ID]*element.SupportElement, sett settings.TreeSupportSettings) []geom.Polygon {
	if e.Flags.SkipOvalisation || above == nil {
		return nil
	}

	var hulls []geom.Polygon
	parents := append([]element.ID(nil), e.Parents...)
	sort.Slice(parents, func(i, j int) bool { return parents[i] < parents[j] })

	for _, pid := range parents {
		p, ok := above[pid]
		if !ok || !p.ResultOnLayerSet || p.Flags.SkipOvalisation {
			continue
		}

		pr := sett.Radius(p.EffectiveRadiusHeight, p.ElephantFootIncreases)
		pCircle := geom.Circle(p.ResultOnLayer, pr, settings.SupportTreeCircleResolution)

		pts := make([]geom.Point, 0, len(circle)+len(pCircle))
		pts = append(pts, circle...)
		pts = append(pts, pCircle...)

		hull, err := geom.ConvexHull(pts)
		if err != nil {
			continue
		}

		clipped := geom.Intersect(geom.Polygons{hull}, e.InfluenceArea)
		hulls = append(hulls, clipped...)
	}

	return hulls
}

// PrepareFloorZones finds, for every layer, the elements within
// support_bottom_layers above a model landing (a to-model element with no
// child continuing the branch further down).
func PrepareFloorZones(tree Tree, byLayerID map[int]map[element.ID]*element.SupportElement, bottomLayers int) map[int]map[element.ID]bool {
	out := make(map[int]map[element.ID]bool)
	if bottomLayers <= 0 {
		return out
	}

	for layer, elems := range tree {
		below := byLayerID[layer-1]
		for _, e := range elems {
			if e.Flags.ToBuildplate || isContinued(e.ID, below) {
				continue
			}

			frontier := []element.ID{e.ID}
			for step := 1; step <= bottomLayers && len(frontier) > 0; step++ {
				upperLayer := layer + step
				upper := byLayerID[upperLayer]
				if upper == nil {
					break
				}

				var next []element.ID
				for _, id := range frontier {
					cur, ok := byLayerID[upperLayer-1][id]
					if !ok {
						continue
					}
					next = append(next, cur.Parents...)
				}

				if out[upperLayer] == nil {
					out[upperLayer] = make(map[element.ID]bool)
				}
				for _, id := range next {
					out[upperLayer][id] = true
				}

				frontier = next
			}
		}
	}

	return out
}

// isContinued reports whether any element one layer below declares id as
// a parent, meaning the branch keeps going and id is not a landing.
func isContinued(id element.ID, below map[element.ID]*element.SupportElement) bool {
	for _, c := range below {
		for _, p := range c.Parents {
			if p == id {
				return true
			}
		}
	}
	return false
}

// resolveInterfaces applies the InterfacePreference table (spec.md §4.F)
// to split raw into base/roof/floor. roofMask and floorMask are already
// subsets of raw by construction.
func resolveInterfaces(raw, roofMask, floorMask geom.Polygons, pref settings.InterfacePreference) (base, roof, floor geom.Polygons) {
	switch pref {
	case settings.SupportAreaOverwritesInterface, settings.SupportLinesOverwriteInterface:
		// Support wins every overlap; since both masks are already
		// subsets of raw, the interface regions are fully absorbed.
		return raw, geom.Difference(roofMask, raw), geom.Difference(floorMask, raw)
	case settings.Nothing:
		return raw, roofMask, floorMask
	default: // InterfaceAreaOverwritesSupport, InterfaceLinesOverwriteSupport
		floor = geom.Difference(floorMask, roofMask)
		base = geom.Difference(raw, geom.Union(roofMask, floor))
		return base, roofMask, floor
	}
}
