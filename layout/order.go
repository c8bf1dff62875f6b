// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"iter"
	"strings"
)

// Order is the convention mapping a multi-dimensional coordinate to a linear
// memory offset.
type Order int

const (
	// RowMajor stores the last dimension contiguously (C-style order).
	RowMajor Order = 0
	// ColumnMajor stores the first dimension contiguously (Fortran-style order).
	ColumnMajor Order = 1
)

const (
	_nameRowMajor    = "ROW_MAJOR"
	_nameColumnMajor = "COLUMN_MAJOR"
)

// Valid reports whether o is one of the two supported orders.
func (o Order) Valid() bool { return o == RowMajor || o == ColumnMajor }

// String renders the order as ROW_MAJOR or COLUMN_MAJOR.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return _nameRowMajor
	case ColumnMajor:
		return _nameColumnMajor
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder resolves a user-facing order name. Accepted spellings are
// case-insensitive: row-major, row_major, row, c for RowMajor and
// column-major, column_major, column, col, fortran, f for ColumnMajor.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row-major", "row_major", "rowmajor", "row", "c":
		return RowMajor, nil
	case "column-major", "column_major", "columnmajor", "column", "col", "fortran", "f":
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
	}
}

// FastestFirst yields the dimension indices 0..n-1 from the fastest-varying
// to the slowest-varying dimension: n-1 down to 0 for RowMajor, 0 up to n-1
// for ColumnMajor.
//
// This is the only place where the storage order changes control flow; the
// coefficient, ordinal and carry loops all walk dimensions through it.
func (o Order) FastestFirst(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if o == ColumnMajor {
			for i := 0; i < n; i++ {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := n - 1; i >= 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}
