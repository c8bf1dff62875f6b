// SPDX-License-Identifier: MIT
package matconv_test

import (
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/katalvlaran/hyperarray/matconv"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func floats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

func TestToDense(t *testing.T) {
	for _, opt := range []hyper.Option{hyper.WithRowMajor(), hyper.WithColumnMajor()} {
		a, err := hyper.FromValues([]int{3, 4}, floats(12), 0, opt)
		require.NoError(t, err)
		v, err := a.Sub(hyper.Index{1, 1}, hyper.Index{3, 4})
		require.NoError(t, err)

		m, err := matconv.ToDense(v)
		require.NoError(t, err)
		r, c := m.Dims()
		require.Equal(t, 2, r)
		require.Equal(t, 3, c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				want, err := v.At(i, j)
				require.NoError(t, err)
				require.Equal(t, want, m.At(i, j))
			}
		}
	}
}

func TestToDenseErrors(t *testing.T) {
	a, err := hyper.New[float64]([]int{2, 2, 2})
	require.NoError(t, err)
	_, err = matconv.ToDense(a.Whole())
	require.ErrorIs(t, err, matconv.ErrNotMatrix)

	b, err := hyper.New2D[float64](0, 3)
	require.NoError(t, err)
	_, err = matconv.ToDense(b.Whole())
	require.ErrorIs(t, err, matconv.ErrEmpty)
}

func TestFromMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, floats(6))

	a, err := matconv.FromMatrix(m, hyper.WithColumnMajor())
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, a.Lengths())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.Data())
	require.Equal(t, 6.0, a.Get(1, 2))

	back, err := matconv.ToDense(a.Whole())
	require.NoError(t, err)
	require.True(t, mat.Equal(m, back))

	tr, err := matconv.FromMatrix(m.T())
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, tr.Lengths())
	require.Equal(t, 4.0, tr.Get(0, 1))
}

func TestVecRoundTrip(t *testing.T) {
	a, err := hyper.FromValues([]int{2, 3}, floats(6), 0, hyper.WithColumnMajor())
	require.NoError(t, err)

	v, err := matconv.ToVec(a.Whole())
	require.NoError(t, err)
	require.Equal(t, 6, v.Len())
	require.Equal(t, 2.0, v.AtVec(1)) // column-major iteration order

	r, err := matconv.FromVec(v, []int{3, 2})
	require.NoError(t, err)
	require.Equal(t, floats(6), r.Data())

	_, err = matconv.FromVec(v, []int{4, 2})
	require.ErrorIs(t, err, hyper.ErrBadShape)

	e, err := hyper.New1D[float64](0)
	require.NoError(t, err)
	_, err = matconv.ToVec(e.Whole())
	require.ErrorIs(t, err, matconv.ErrEmpty)
}

func TestProduct(t *testing.T) {
	x, err := hyper.FromValues([]int{2, 3}, floats(6), 0)
	require.NoError(t, err)
	y, err := hyper.FromValues([]int{3, 2}, floats(6), 0)
	require.NoError(t, err)

	p, err := matconv.Product(x.Whole(), y.Whole())
	require.NoError(t, err)
	// [1 2 3; 4 5 6] · [1 2; 3 4; 5 6]
	require.Equal(t, []float64{22, 28, 49, 64}, p.Data())

	_, err = matconv.Product(x.Whole(), x.Whole())
	require.ErrorIs(t, err, matconv.ErrShape)
}
