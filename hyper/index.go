// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"
	"strings"
)

// Index is a D-tuple of signed integers addressing an array element, or an
// offset between two such addresses.
//
// Operations never mutate their operands; arithmetic returns new values.
// Components are signed so that differences and offsets can go negative.
type Index []int

const (
	panicIndexArity = "hyper: Index arithmetic on operands of different arity"
	panicIndexDims  = "hyper: Index dimension count must be non-negative"
)

// NewIndex returns an Index holding a copy of vals.
func NewIndex(vals ...int) Index {
	return append(Index(nil), vals...)
}

// Fill returns an Index of dims components all equal to v.
// It panics if dims is negative.
func Fill(dims, v int) Index {
	if dims < 0 {
		panic(panicIndexDims)
	}
	idx := make(Index, dims)
	for i := range idx {
		idx[i] = v
	}

	return idx
}

// Zero returns the origin of a dims-dimensional space.
func Zero(dims int) Index { return Fill(dims, 0) }

// Clone returns an independent copy of x.
func (x Index) Clone() Index { return NewIndex(x...) }

// Dims returns the number of components.
func (x Index) Dims() int { return len(x) }

// all reports whether pred holds for every component pair.
// Operands of different arity never satisfy a comparison.
func (x Index) all(o Index, pred func(a, b int) bool) bool {
	if len(x) != len(o) {
		return false
	}
	for i := range x {
		if !pred(x[i], o[i]) {
			return false
		}
	}

	return true
}

// Equal reports whether every component of x equals the one in o.
func (x Index) Equal(o Index) bool {
	return x.all(o, func(a, b int) bool { return a == b })
}

// NotEqual reports whether at least one component differs.
// It is the negation of Equal.
func (x Index) NotEqual(o Index) bool { return !x.Equal(o) }

// Less reports whether every component of x is strictly smaller than the
// matching one in o.
//
// The ordering is component-wise, not lexicographic: two indices can be
// incomparable, with neither Less nor GreaterEq holding.
func (x Index) Less(o Index) bool {
	return x.all(o, func(a, b int) bool { return a < b })
}

// LessEq reports whether every component of x is <= the one in o.
func (x Index) LessEq(o Index) bool {
	return x.all(o, func(a, b int) bool { return a <= b })
}

// Greater reports whether every component of x is strictly larger.
func (x Index) Greater(o Index) bool {
	return x.all(o, func(a, b int) bool { return a > b })
}

// GreaterEq reports whether every component of x is >= the one in o.
func (x Index) GreaterEq(o Index) bool {
	return x.all(o, func(a, b int) bool { return a >= b })
}

// AddScalar returns x with d added to every component.
func (x Index) AddScalar(d int) Index {
	out := make(Index, len(x))
	for i, v := range x {
		out[i] = v + d
	}

	return out
}

// SubScalar returns x with d subtracted from every component.
func (x Index) SubScalar(d int) Index { return x.AddScalar(-d) }

// Add returns the component-wise sum x + o.
// It panics when the operands have different arity.
func (x Index) Add(o Index) Index {
	if len(x) != len(o) {
		panic(panicIndexArity)
	}
	out := make(Index, len(x))
	for i := range x {
		out[i] = x[i] + o[i]
	}

	return out
}

// Sub returns the component-wise difference x - o.
// It panics when the operands have different arity.
func (x Index) Sub(o Index) Index {
	if len(x) != len(o) {
		panic(panicIndexArity)
	}
	out := make(Index, len(x))
	for i := range x {
		out[i] = x[i] - o[i]
	}

	return out
}

// String renders x as "( i0 i1 ... )".
func (x Index) String() string {
	var b strings.Builder
	b.WriteString("( ")
	for _, v := range x {
		fmt.Fprintf(&b, "%d ", v)
	}
	b.WriteString(")")

	return b.String()
}
