// SPDX-License-Identifier: MIT

package hyper

import (
	"iter"
	"slices"

	"github.com/katalvlaran/hyperarray/layout"
)

// View is a rectangular window onto an Array: an origin inside the array and
// per-dimension extents. A View never owns elements; writes through it land
// in the array. Views are small values and may be copied freely.
//
// Coordinates passed to View methods are relative to the origin. Elements are
// enumerated in the array's storage order restricted to the window, so a view
// of a row-major array walks its last dimension fastest.
type View[T any] struct {
	array   *Array[T]
	begin   Index // origin inside the array
	lengths []int // extents; begin+lengths <= array lengths
	size    int   // Π lengths
}

// Dims returns the number of dimensions.
func (v View[T]) Dims() int { return len(v.lengths) }

// Order returns the storage order of the underlying array.
func (v View[T]) Order() Order {
	if v.array == nil {
		return DefaultOrder
	}

	return v.array.order
}

// Origin returns a copy of the view's first corner in array coordinates.
func (v View[T]) Origin() Index { return v.begin.Clone() }

// Length returns the extent of dimension dim (unchecked).
func (v View[T]) Length(dim int) int { return v.lengths[dim] }

// Lengths returns a copy of the extents.
func (v View[T]) Lengths() []int { return slices.Clone(v.lengths) }

// Size returns the number of elements in the window.
func (v View[T]) Size() int { return v.size }

// Data returns the owning array's whole buffer, not a view-relative slice.
func (v View[T]) Data() []T { return v.array.data }

// Array returns the owning array.
func (v View[T]) Array() *Array[T] { return v.array }

// offset maps a relative coordinate onto the owner's buffer.
func (v View[T]) offset(rel []int) int {
	var off int
	for i, c := range v.array.coeffs {
		off += c * (v.begin[i] + rel[i])
	}

	return off
}

// Flat returns a pointer to the i-th element of the window in iteration
// order. i must lie in [0, Size()).
// Complexity: O(D).
func (v View[T]) Flat(i int) *T {
	rel := layout.Unflatten(v.array.order, i, v.lengths)
	return &v.array.data[v.offset(rel)]
}

// ElemAt returns a pointer to the element at the relative coordinate rel
// without range checks.
func (v View[T]) ElemAt(rel Index) *T { return &v.array.data[v.offset(rel)] }

// Ptr is ElemAt taking the components as arguments.
func (v View[T]) Ptr(indices ...int) *T { return &v.array.data[v.offset(indices)] }

// check validates a relative coordinate against [0, Length(i)).
func (v View[T]) check(method string, rel []int) error {
	if v.array.Empty() {
		return hyperErrorf("View", method, rel, ErrNilArray)
	}
	if err := validateIndex(rel, v.lengths); err != nil {
		return hyperErrorf("View", method, rel, err)
	}

	return nil
}

// FlatIndex returns the owner buffer offset of the relative coordinate.
func (v View[T]) FlatIndex(indices ...int) (int, error) {
	if err := v.check("FlatIndex", indices); err != nil {
		return 0, err
	}

	return v.offset(indices), nil
}

// Ordinal returns the position of rel in the window's iteration order.
func (v View[T]) Ordinal(rel Index) (int, error) {
	if err := v.check("Ordinal", rel); err != nil {
		return 0, err
	}

	return layout.Ordinal(v.array.order, rel, v.lengths), nil
}

// At returns the element at the relative coordinate.
func (v View[T]) At(indices ...int) (T, error) {
	if err := v.check("At", indices); err != nil {
		var zero T
		return zero, err
	}

	return v.array.data[v.offset(indices)], nil
}

// Ref returns a pointer to the element at the relative coordinate.
func (v View[T]) Ref(indices ...int) (*T, error) {
	if err := v.check("Ref", indices); err != nil {
		return nil, err
	}

	return &v.array.data[v.offset(indices)], nil
}

// Set stores x at the relative coordinate.
func (v View[T]) Set(x T, indices ...int) error {
	if err := v.check("Set", indices); err != nil {
		return err
	}
	v.array.data[v.offset(indices)] = x

	return nil
}

// Begin returns an iterator at the first element, or at the sentinel when
// the view is empty.
func (v View[T]) Begin() Iterator[T] {
	it := Iterator[T]{view: v, end: v.lengths, cursor: Zero(len(v.lengths))}
	if v.size == 0 {
		it.cursor = slices.Clone(v.lengths)
	}

	return it
}

// End returns the one-past-the-last iterator.
func (v View[T]) End() Iterator[T] {
	return Iterator[T]{view: v, end: v.lengths, cursor: slices.Clone(v.lengths)}
}

// ConstBegin is Begin for read-only traversal.
func (v View[T]) ConstBegin() ConstIterator[T] { return v.Begin().Const() }

// ConstEnd is End for read-only traversal.
func (v View[T]) ConstEnd() ConstIterator[T] { return v.End().Const() }

// IteratorAt returns an iterator flat steps past the origin. Positions
// beyond the window saturate at End; negative ones clamp to Begin.
func (v View[T]) IteratorAt(flat int) Iterator[T] {
	it := v.Begin()
	it.Advance(flat)

	return it
}

// IteratorAtCursor returns an iterator at the relative coordinate cursor,
// which must lie inside the window or equal the sentinel (Lengths()).
func (v View[T]) IteratorAtCursor(cursor Index) (Iterator[T], error) {
	if err := validateArity(len(v.lengths), len(cursor)); err != nil {
		return Iterator[T]{}, hyperErrorf("View", "IteratorAtCursor", cursor, err)
	}
	if !cursor.Equal(v.lengths) {
		if err := v.check("IteratorAtCursor", cursor); err != nil {
			return Iterator[T]{}, err
		}
	}

	return Iterator[T]{view: v, end: v.lengths, cursor: cursor.Clone()}, nil
}

// All yields the relative cursor and a pointer to each element in iteration
// order. The yielded Index is a fresh copy.
func (v View[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		it := v.Begin()
		for range v.size {
			if !yield(it.Cursor(), it.Ptr()) {
				return
			}
			it.Next()
		}
	}
}

// Values yields each element of the window in iteration order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.Begin()
		for range v.size {
			if !yield(*it.Ptr()) {
				return
			}
			it.Next()
		}
	}
}

// Backward is All in reverse, from the last element down to the origin.
func (v View[T]) Backward() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		it := v.End()
		for range v.size {
			it.Prev()
			if !yield(it.Cursor(), it.Ptr()) {
				return
			}
		}
	}
}
