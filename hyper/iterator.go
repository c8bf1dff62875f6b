// SPDX-License-Identifier: MIT

package hyper

import (
	"slices"

	"github.com/katalvlaran/hyperarray/layout"
)

// Iterator is a random-access cursor over a View.
//
// It holds a relative coordinate inside the window, or the sentinel
// coordinate equal to the view's lengths, which plays the role of End.
// Motion saturates: stepping past the last element parks the iterator on the
// sentinel, and stepping before the first element clamps it to the origin.
// A negative step from the sentinel first moves to the last element.
//
// Iterators are values. Motion replaces the cursor rather than editing it in
// place, so a copy taken with plain assignment never observes later moves.
// The zero value is the null iterator: Valid reports false and Ptr is nil.
type Iterator[T any] struct {
	view   View[T]
	end    Index // sentinel coordinate; shared with the view, never written
	cursor Index
}

// Valid reports whether the iterator is attached to an array.
func (it Iterator[T]) Valid() bool { return it.view.array != nil }

// Dims returns the number of dimensions of the cursor.
func (it Iterator[T]) Dims() int { return len(it.cursor) }

// Order returns the iteration order.
func (it Iterator[T]) Order() Order { return it.view.Order() }

// View returns the view being traversed.
func (it Iterator[T]) View() View[T] { return it.view }

// Cursor returns a copy of the relative coordinate.
func (it Iterator[T]) Cursor() Index { return it.cursor.Clone() }

// CursorAt returns component i of the cursor (unchecked).
func (it Iterator[T]) CursorAt(i int) int { return it.cursor[i] }

// EndIndex returns a copy of the sentinel coordinate.
func (it Iterator[T]) EndIndex() Index { return it.end.Clone() }

// EndAt returns component i of the sentinel (unchecked).
func (it Iterator[T]) EndAt(i int) int { return it.end[i] }

// atEnd reports whether the cursor has reached the sentinel region.
func (it Iterator[T]) atEnd() bool { return it.cursor.GreaterEq(it.end) }

// Position returns the distance from the origin in iteration order; the
// sentinel is at Size().
func (it Iterator[T]) Position() int {
	switch {
	case !it.Valid():
		return 0
	case it.atEnd():
		return it.view.size
	}

	return layout.Ordinal(it.view.array.order, it.cursor, it.end)
}

// Ptr returns a pointer to the current element, or nil for the null
// iterator and the sentinel.
func (it Iterator[T]) Ptr() *T {
	if !it.Valid() || it.atEnd() {
		return nil
	}

	return it.view.ElemAt(it.cursor)
}

// Value returns the current element. The iterator must be dereferenceable.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Set stores v in the current element. The iterator must be dereferenceable.
func (it Iterator[T]) Set(v T) { *it.Ptr() = v }

// Advance moves the iterator d steps in iteration order and returns it.
//
// Stage 1 (Guard): null iterators and empty views never move.
// Stage 2 (Unstick): at the sentinel, d >= 0 is a no-op; a negative d first
// lands on the last element and consumes one step.
// Stage 3 (Clamp): the target position is clamped into [0, size]; size is
// the sentinel.
// Stage 4 (Place): otherwise the cursor is rebuilt from the origin by carry
// propagation, fastest dimension first.
// Complexity: O(D).
func (it *Iterator[T]) Advance(d int) *Iterator[T] {
	if !it.Valid() || it.view.size == 0 {
		return it
	}
	next := make(Index, len(it.end))
	if it.atEnd() {
		if d >= 0 {
			return it
		}
		for i, e := range it.end {
			next[i] = e - 1
		}
		d++
	} else {
		copy(next, it.cursor)
	}

	order := it.view.array.order
	pos := layout.Ordinal(order, next, it.end) + d
	switch {
	case pos >= it.view.size:
		copy(next, it.end)
	case pos <= 0:
		clear(next)
	default:
		layout.Place(order, next, pos, it.end)
	}
	it.cursor = next

	return it
}

// Next moves one step forward and returns the receiver.
func (it *Iterator[T]) Next() *Iterator[T] { return it.Advance(1) }

// Prev moves one step backward and returns the receiver.
func (it *Iterator[T]) Prev() *Iterator[T] { return it.Advance(-1) }

// PostNext moves one step forward and returns the iterator as it was.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Advance(1)

	return prev
}

// PostPrev moves one step backward and returns the iterator as it was.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	prev := *it
	it.Advance(-1)

	return prev
}

// Plus returns a copy advanced by d.
func (it Iterator[T]) Plus(d int) Iterator[T] {
	it.Advance(d)
	return it
}

// Minus returns a copy moved back by d.
func (it Iterator[T]) Minus(d int) Iterator[T] {
	it.Advance(-d)
	return it
}

// Distance returns the signed number of steps from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.Position() - other.Position()
}

// Equal reports whether both cursors match component-wise.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.cursor.Equal(o.cursor) }

// NotEqual is the negation of Equal.
func (it Iterator[T]) NotEqual(o Iterator[T]) bool { return !it.Equal(o) }

// Less compares cursors component-wise; see Index.Less.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.cursor.Less(o.cursor) }

// LessEq compares cursors component-wise.
func (it Iterator[T]) LessEq(o Iterator[T]) bool { return it.cursor.LessEq(o.cursor) }

// Greater compares cursors component-wise.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.cursor.Greater(o.cursor) }

// GreaterEq compares cursors component-wise.
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return it.cursor.GreaterEq(o.cursor) }

// Swap exchanges the state of two iterators.
func (it *Iterator[T]) Swap(other *Iterator[T]) { *it, *other = *other, *it }

// Const returns a read-only iterator at the same place.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ConstIterator is an Iterator that only reads elements.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Valid reports whether the iterator is attached to an array.
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// Cursor returns a copy of the relative coordinate.
func (c ConstIterator[T]) Cursor() Index { return c.it.Cursor() }

// Position returns the distance from the origin; see Iterator.Position.
func (c ConstIterator[T]) Position() int { return c.it.Position() }

// Value returns the current element. The iterator must be dereferenceable.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Deref returns the current element and whether there is one.
func (c ConstIterator[T]) Deref() (T, bool) {
	p := c.it.Ptr()
	if p == nil {
		var zero T
		return zero, false
	}

	return *p, true
}

// Advance moves d steps and returns the receiver.
func (c *ConstIterator[T]) Advance(d int) *ConstIterator[T] {
	c.it.Advance(d)
	return c
}

// Next moves one step forward.
func (c *ConstIterator[T]) Next() *ConstIterator[T] { return c.Advance(1) }

// Prev moves one step backward.
func (c *ConstIterator[T]) Prev() *ConstIterator[T] { return c.Advance(-1) }

// Distance returns the signed number of steps from other to c.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int { return c.it.Distance(other.it) }

// Equal reports whether both cursors match.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// String renders the iterator like Iterator.String.
func (c ConstIterator[T]) String() string { return c.it.String() }

// lastIndex returns the coordinate of the window's last corner.
func (it Iterator[T]) lastIndex() Index {
	last := slices.Clone(it.end)
	for i := range last {
		last[i]--
	}

	return last
}
