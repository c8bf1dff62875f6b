// SPDX-License-Identifier: MIT
package hyper_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/stretchr/testify/require"
)

func TestBoundsFrom(t *testing.T) {
	b, err := hyper.BoundsFrom(hyper.Index{0, 1, 2}, hyper.Index{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, 3, b.Dims())
	require.Equal(t, hyper.Range{Min: 1, Max: 4}, b[1])
	require.Equal(t, hyper.Index{0, 1, 2}, b.Lower())
	require.Equal(t, hyper.Index{3, 4, 5}, b.Upper())

	_, err = hyper.BoundsFrom(hyper.Index{0}, hyper.Index{1, 2})
	require.ErrorIs(t, err, hyper.ErrDimensionMismatch)
}

func TestBoundsAllAndString(t *testing.T) {
	b := hyper.NewBounds(hyper.Range{Min: 0, Max: 1}, hyper.Range{Min: 2, Max: 3})

	var dims []int
	var mins []int
	for i, r := range b.All() {
		dims = append(dims, i)
		mins = append(mins, r.Min)
	}
	require.Equal(t, []int{0, 1}, dims)
	require.Equal(t, []int{0, 2}, mins)

	for i := range b.All() {
		require.Equal(t, 0, i)
		break // early exit must not panic
	}

	require.Equal(t, "[ [0 1] [2 3] ]", b.String())
}
