// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"
	"iter"
	"strings"
)

// Range is the closed interval [Min, Max] of one dimension.
type Range struct {
	Min, Max int
}

// String renders r as "[min max]".
func (r Range) String() string { return fmt.Sprintf("[%d %d]", r.Min, r.Max) }

// Bounds is a D-tuple of closed ranges: a rectangular region of index space.
// Both corners are inclusive; Array.ViewBounds converts them into the
// half-open form views use.
type Bounds []Range

// NewBounds returns Bounds holding a copy of rs.
func NewBounds(rs ...Range) Bounds {
	return append(Bounds(nil), rs...)
}

// BoundsFrom zips lower and upper into per-dimension ranges.
// It fails with ErrDimensionMismatch when their arities differ.
func BoundsFrom(lower, upper Index) (Bounds, error) {
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("BoundsFrom(%d,%d): %w", len(lower), len(upper), ErrDimensionMismatch)
	}
	b := make(Bounds, len(lower))
	for i := range lower {
		b[i] = Range{Min: lower[i], Max: upper[i]}
	}

	return b, nil
}

// Dims returns the number of ranges.
func (b Bounds) Dims() int { return len(b) }

// Lower returns the component-wise minimum corner.
func (b Bounds) Lower() Index {
	idx := make(Index, len(b))
	for i, r := range b {
		idx[i] = r.Min
	}

	return idx
}

// Upper returns the component-wise maximum corner (inclusive).
func (b Bounds) Upper() Index {
	idx := make(Index, len(b))
	for i, r := range b {
		idx[i] = r.Max
	}

	return idx
}

// All yields every (dimension, range) pair in dimension order.
func (b Bounds) All() iter.Seq2[int, Range] {
	return func(yield func(int, Range) bool) {
		for i, r := range b {
			if !yield(i, r) {
				return
			}
		}
	}
}

// String renders b as "[ [min0 max0] [min1 max1] ]".
func (b Bounds) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, r := range b {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("]")

	return sb.String()
}
