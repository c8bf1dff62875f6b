// SPDX-License-Identifier: MIT

package hyper

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the hyper package.
// Callers match them with errors.Is; every failure path wraps one of these
// with the operation name and its arguments.
var (
	// ErrBadShape is returned when lengths describe no valid array:
	// zero dimensions, a negative length, or a buffer of the wrong size.
	ErrBadShape = errors.New("hyper: invalid shape")

	// ErrTooManyValues is returned when an initializer holds more values
	// than the array has elements. Initializers are never truncated.
	ErrTooManyValues = errors.New("hyper: more values than elements")

	// ErrDimensionMismatch is returned when an index has the wrong arity.
	ErrDimensionMismatch = errors.New("hyper: dimension count mismatch")

	// ErrOutOfRange is returned by checked accessors when a component lies
	// outside [0, length). The wrapping message lists every offending
	// component, not just the first.
	ErrOutOfRange = errors.New("hyper: index out of range")

	// ErrBadBounds is returned when a view region is inverted or does not
	// fit inside its array.
	ErrBadBounds = errors.New("hyper: view bounds outside the array")

	// ErrSizeMismatch is returned when a copy pairs views of different sizes.
	ErrSizeMismatch = errors.New("hyper: element count mismatch")

	// ErrNilArray is returned for operations on a nil or released array.
	ErrNilArray = errors.New("hyper: nil or released array")
)

// hyperErrorf decorates err with "Type.Method(args)" context.
func hyperErrorf(typ, method string, args []int, err error) error {
	return fmt.Errorf("%s.%s(%s): %w", typ, method, joinInts(args, ","), err)
}

func joinInts(vs []int, sep string) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}

	return b.String()
}
