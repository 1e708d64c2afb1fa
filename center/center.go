// SPDX-License-Identifier: MIT
package center

import (
	"sort"

	"github.com/arborgen/treesupport/element"
	"github.com/arborgen/treesupport/geom"
	"github.com/arborgen/treesupport/settings"
)

// Run assigns ResultOnLayer to every element of tree, processing layers
// bottom-up so a parent's candidate region can be constrained by where
// its already-resolved children landed (spec.md §4.E).
func Run(tree Tree, sett settings.TreeSupportSettings, vol Volumes) error {
	if vol.Collision == nil {
		return ErrNoVolumes
	}

	layers := make([]int, 0, len(tree))
	for l := range tree {
		layers = append(layers, l)
	}
	sort.Ints(layers)

	for _, l := range layers {
		children := childrenByParent(tree[l-1])

		elems := append([]*element.SupportElement(nil), tree[l]...)
		element.SortByID(elems)

		for _, e := range elems {
			if err := resolve(e, l, children[e.ID], sett, vol); err != nil {
				return err
			}
		}
	}

	return nil
}

// childrenByParent indexes layer-below elements by each parent id they
// declare. A nil slice (no layer below, or the bottom layer) yields an
// empty index, which resolve treats as "no child constraint".
func childrenByParent(below []*element.SupportElement) map[element.ID][]*element.SupportElement {
	index := make(map[element.ID][]*element.SupportElement)
	for _, c := range below {
		if !c.ResultOnLayerSet {
			continue
		}
		for _, p := range c.Parents {
			index[p] = append(index[p], c)
		}
	}
	return index
}

// resolve picks e's centerline point for layer l, applying the three
// constraints of spec.md §4.E in order and relaxing constraint 3 (child
// reach) and then constraint 2 (collision) if the stricter form yields
// no candidate region. Constraint 1 (inside the influence area) can
// never be fully relaxed: spec.md §5 guarantees the area is never empty.
func resolve(e *element.SupportElement, l int, children []*element.SupportElement, sett settings.TreeSupportSettings, vol Volumes) error {
	r := sett.Radius(e.EffectiveRadiusHeight, e.ElephantFootIncreases)

	collision, err := vol.Collision(r, l, e.Flags.UseMinXYDist)
	if err != nil {
		return err
	}

	buildable := geom.Difference(e.InfluenceArea, collision)

	withChildren := buildable
	for _, c := range children {
		reach := geom.Polygons{geom.Circle(c.ResultOnLayer, sett.MaximumMoveDistance, settings.SupportTreeCircleResolution)}
		withChildren = geom.Intersect(withChildren, reach)
	}

	region := withChildren
	if region.Empty() {
		region = buildable // relax constraint 3
	}
	if region.Empty() {
		region = e.InfluenceArea // relax constraint 2
	}
	if region.Empty() {
		return ErrUnreachable
	}

	e.ResultOnLayer = choosePoint(region, e.NextPosition)
	e.ResultOnLayerSet = true

	return nil
}

// choosePoint prefers the centroid of region when it actually lies
// inside region (false for concave or multiply-connected shapes), and
// otherwise falls back to the region vertex nearest target. target is
// e.NextPosition, the move tie-break point propagate.Step already
// resolved toward e.TargetPosition one candidate at a time (spec.md
// §4.C), not the raw final target: centering follows the same
// incremental aim propagation committed to rather than re-aiming at the
// branch's eventual destination in one jump.
func choosePoint(region geom.Polygons, target geom.Point) geom.Point {
	centroid := region.Centroid()
	if region.Contains(centroid) {
		return centroid
	}

	var verts []geom.Point
	for _, poly := range region {
		verts = append(verts, poly...)
	}
	if len(verts) == 0 {
		return centroid
	}

	return nearest(verts, target)
}
