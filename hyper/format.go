// SPDX-License-Identifier: MIT

package hyper

import (
	"fmt"
	"strings"
)

// writeList writes each element followed by a blank.
func writeList[T any](b *strings.Builder, vs []T) {
	for _, v := range vs {
		fmt.Fprint(b, v)
		b.WriteByte(' ')
	}
}

// String renders the array as
//
//	[dimensions: 2 ][order: ROW_MAJOR ][lengths: 2 3 ][coeffs: 3 1 ][size: 6 ][data: 1 2 3 4 5 6 ]
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[dimensions: %d ][order: %s ][lengths: ", a.Dims(), a.order)
	writeList(&b, a.lengths)
	b.WriteString("][coeffs: ")
	writeList(&b, a.coeffs)
	fmt.Fprintf(&b, "][size: %d ][data: ", a.size)
	writeList(&b, a.data)
	b.WriteString("]")

	return b.String()
}

// String renders the window as "[origin: ( .. ) ][lengths: .. ][size: N ][data: .. ]"
// with data listed in iteration order.
func (v View[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[origin: %s ][lengths: ", v.begin)
	writeList(&b, v.lengths)
	fmt.Fprintf(&b, "][size: %d ][data: ", v.size)
	if v.array != nil {
		for x := range v.Values() {
			fmt.Fprint(&b, x)
			b.WriteByte(' ')
		}
	}
	b.WriteString("]")

	return b.String()
}

// String renders the iterator as one "[cursor:last]" pair per dimension,
// e.g. "[ [1:2] [0:3] ]".
func (it Iterator[T]) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	last := it.lastIndex()
	for i, c := range it.cursor {
		fmt.Fprintf(&b, "[%d:%d] ", c, last[i])
	}
	b.WriteString("]")

	return b.String()
}
