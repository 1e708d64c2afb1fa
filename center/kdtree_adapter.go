// SPDX-License-Identifier: MIT
package center

import (
	"github.com/arborgen/treesupport/geom"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// point2D adapts geom.Point to kdtree.Comparable so the candidate points
// surviving constraint relaxation can be ranked by squared distance to a
// target without a linear fallback scan for the common multi-candidate
// case.
type point2D struct {
	p geom.Point
}

func (a point2D) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	b := c.(point2D)
	if d == 0 {
		return float64(a.p.X - b.p.X)
	}
	return float64(a.p.Y - b.p.Y)
}

func (a point2D) Dims() int { return 2 }

func (a point2D) Distance(c kdtree.Comparable) float64 {
	b := c.(point2D)
	dx := float64(a.p.X - b.p.X)
	dy := float64(a.p.Y - b.p.Y)
	return dx*dx + dy*dy
}

// pointSet is a kdtree.Interface over point2D, following gonum's own
// Partition/MedianOfMedians idiom for Pivot rather than reimplementing
// median-of-medians selection.
type pointSet []point2D

func (s pointSet) Index(i int) kdtree.Comparable { return s[i] }

func (s pointSet) Len() int { return len(s) }

func (s pointSet) Slice(start, end int) kdtree.Interface { return s[start:end] }

func (s pointSet) Pivot(d kdtree.Dim) int {
	pl := plane{pointSet: s, dim: d}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

type plane struct {
	pointSet
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	if p.dim == 0 {
		return p.pointSet[i].p.X < p.pointSet[j].p.X
	}
	return p.pointSet[i].p.Y < p.pointSet[j].p.Y
}

func (p plane) Swap(i, j int) { p.pointSet[i], p.pointSet[j] = p.pointSet[j], p.pointSet[i] }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.pointSet = p.pointSet[start:end]
	return p
}

// nearest returns the candidate closest to target by Euclidean distance.
func nearest(candidates []geom.Point, target geom.Point) geom.Point {
	if len(candidates) == 1 {
		return candidates[0]
	}

	set := make(pointSet, len(candidates))
	for i, c := range candidates {
		set[i] = point2D{p: c}
	}

	tree := kdtree.New(set, false)
	best, _ := tree.Nearest(point2D{p: target})

	return best.(point2D).p
}
