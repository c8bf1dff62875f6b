// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"
	"strings"
)

// validateShape checks that lengths describe an array: at least one
// dimension and no negative extent. Zero extents are allowed.
func validateShape(lengths []int) error {
	if len(lengths) == 0 {
		return fmt.Errorf("no dimensions: %w", ErrBadShape)
	}
	for i, l := range lengths {
		if l < 0 {
			return fmt.Errorf("length #%d [== %d] is negative: %w", i, l, ErrBadShape)
		}
	}

	return nil
}

// validateArity checks that an index carries exactly dims components.
func validateArity(dims, got int) error {
	if got != dims {
		return fmt.Errorf("got %d components, want %d: %w", got, dims, ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks every component of idx against [0, lengths[i]).
// The report names all offending components, so one failed call shows the
// whole picture; lengths of zero render their range as [0, -1].
func validateIndex(idx, lengths []int) error {
	if err := validateArity(len(lengths), len(idx)); err != nil {
		return err
	}
	var b strings.Builder
	for i, v := range idx {
		if v < 0 || v >= lengths[i] {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "index #%d [== %d] is out of the [0, %d] range", i, v, lengths[i]-1)
		}
	}
	if b.Len() > 0 {
		return fmt.Errorf("%s: %w", b.String(), ErrOutOfRange)
	}

	return nil
}

// validateRegion checks that [begin, end) is a non-inverted box inside an
// array of the given lengths.
func validateRegion(begin, end, lengths []int) error {
	if err := validateArity(len(lengths), len(begin)); err != nil {
		return err
	}
	if err := validateArity(len(lengths), len(end)); err != nil {
		return err
	}
	for i := range lengths {
		if begin[i] < 0 || begin[i] > end[i] || end[i] > lengths[i] {
			return fmt.Errorf("dimension #%d: [%d, %d) not within [0, %d): %w",
				i, begin[i], end[i], lengths[i], ErrBadBounds)
		}
	}

	return nil
}
