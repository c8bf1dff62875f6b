// SPDX-License-Identifier: MIT
package hyper_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/stretchr/testify/require"
)

// seq returns 1..n.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// mustArray builds an array holding 1..size in storage order.
func mustArray(t *testing.T, lengths []int, opts ...hyper.Option) *hyper.Array[int] {
	t.Helper()
	size := 1
	for _, l := range lengths {
		size *= l
	}
	a, err := hyper.FromValues(lengths, seq(size), 0, opts...)
	require.NoError(t, err)

	return a
}
