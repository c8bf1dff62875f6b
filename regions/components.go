// SPDX-License-Identifier: MIT

package regions

import (
	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/layout"
)

// walker holds the per-view state shared by Components and Label.
type walker[T any] struct {
	view    hyper.View[T]
	order   hyper.Order
	lengths []int
	offsets [][]int
	keep    func(T) bool
}

func newWalker[T any](v hyper.View[T], keep func(T) bool, opts []Option) walker[T] {
	o := gatherOptions(opts...)

	return walker[T]{
		view:    v,
		order:   v.Order(),
		lengths: v.Lengths(),
		offsets: neighborOffsets(v.Dims(), o.conn),
		keep:    keep,
	}
}

// inside reports whether the relative cursor c lies in the view.
func (w walker[T]) inside(c []int) bool {
	for i, x := range c {
		if x < 0 || x >= w.lengths[i] {
			return false
		}
	}

	return true
}

// flood visits every accepted cell of the view once, calling emit with the
// region number (from 0) and the ordinal of each cell in BFS order.
//
// Stage 1 (Scan): walk the view in iteration order; an accepted, unseen cell
// seeds a new region.
// Stage 2 (Grow): breadth-first search over neighbor offsets, staying inside
// the view and on accepted cells.
// Complexity: O(size·k·D) time, O(size) memory.
func (w walker[T]) flood(emit func(region, ordinal int)) int {
	size := w.view.Size()
	if size == 0 {
		return 0
	}
	seen := make([]bool, size)
	cur := make([]int, len(w.lengths))
	nb := make([]int, len(w.lengths))
	regions := 0

	var i0 int
	for _, p := range w.view.All() {
		start := i0
		i0++
		if seen[start] || !w.keep(*p) {
			continue
		}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			emit(regions, u)
			copy(cur, layout.Unflatten(w.order, u, w.lengths))
			for _, off := range w.offsets {
				for d := range nb {
					nb[d] = cur[d] + off[d]
				}
				if !w.inside(nb) {
					continue
				}
				vi := layout.Ordinal(w.order, nb, w.lengths)
				if seen[vi] || !w.keep(*w.view.ElemAt(nb)) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions++
	}

	return regions
}

// Components returns the connected regions of cells of v for which keep
// reports true. Regions come in the iteration order of their first cell;
// each lists view-relative cursors in breadth-first order from that cell.
func Components[T any](v hyper.View[T], keep func(T) bool, opts ...Option) [][]hyper.Index {
	w := newWalker(v, keep, opts)
	var comps [][]hyper.Index
	w.flood(func(region, ordinal int) {
		if region == len(comps) {
			comps = append(comps, nil)
		}
		comps[region] = append(comps[region], layout.Unflatten(w.order, ordinal, w.lengths))
	})

	return comps
}

// Label returns an array shaped like v, in v's storage order, holding 0 for
// rejected cells and the 1-based region number elsewhere, plus the number of
// regions found.
func Label[T any](v hyper.View[T], keep func(T) bool, opts ...Option) (*hyper.Array[int], int, error) {
	labels, err := hyper.New[int](v.Lengths(), hyper.WithOrder(v.Order()))
	if err != nil {
		return nil, 0, err
	}
	w := newWalker(v, keep, opts)
	n := w.flood(func(region, ordinal int) {
		// Same shape and order: the ordinal is the flat offset.
		*labels.Flat(ordinal) = region + 1
	})

	return labels, n, nil
}
