// SPDX-License-Identifier: MIT

package matconv

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/hyperarray/hyper"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotMatrix indicates a view whose dimension count is not 2.
	ErrNotMatrix = errors.New("matconv: view is not two-dimensional")

	// ErrEmpty indicates a zero-sized view or matrix; gonum rejects those.
	ErrEmpty = errors.New("matconv: empty matrix or vector")

	// ErrShape indicates incompatible operand shapes for Product.
	ErrShape = errors.New("matconv: dimension mismatch")
)

// matrixDims returns the extents of a 2-D, non-empty view.
func matrixDims(v hyper.View[float64]) (int, int, error) {
	if v.Dims() != 2 {
		return 0, 0, fmt.Errorf("%d dimensions: %w", v.Dims(), ErrNotMatrix)
	}
	r, c := v.Length(0), v.Length(1)
	if r == 0 || c == 0 {
		return 0, 0, fmt.Errorf("%dx%d: %w", r, c, ErrEmpty)
	}

	return r, c, nil
}

// ToDense copies a two-dimensional view into a new mat.Dense.
// Complexity: O(r·c).
func ToDense(v hyper.View[float64]) (*mat.Dense, error) {
	r, c, err := matrixDims(v)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	m := mat.NewDense(r, c, nil)
	for idx, p := range v.All() {
		m.Set(idx[0], idx[1], *p)
	}

	return m, nil
}

// FromMatrix copies any mat.Matrix into a new r×c array.
// The storage order follows opts; element (i,j) is m.At(i,j) either way.
func FromMatrix(m mat.Matrix, opts ...hyper.Option) (*hyper.Array[float64], error) {
	r, c := m.Dims()
	a, err := hyper.New2D[float64](r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			*a.Ptr(i, j) = m.At(i, j)
		}
	}

	return a, nil
}

// ToVec flattens a view of any dimension into a vector, in the view's
// iteration order.
func ToVec(v hyper.View[float64]) (*mat.VecDense, error) {
	if v.Size() == 0 {
		return nil, fmt.Errorf("ToVec: %w", ErrEmpty)
	}

	return mat.NewVecDense(v.Size(), slices.Collect(v.Values())), nil
}

// FromVec reshapes a vector into an array of the given lengths. The vector
// is read in order and laid down in the array's storage order.
func FromVec(v mat.Vector, lengths []int, opts ...hyper.Option) (*hyper.Array[float64], error) {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	a, err := hyper.Wrap(lengths, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromVec: %w", err)
	}

	return a, nil
}

// Product returns the matrix product x·y of two 2-D views as a new array.
// Stage 1 (Validate): both views are non-empty matrices; x's columns equal
// y's rows.
// Stage 2 (Execute): copy into gonum and multiply with mat.Dense.Mul.
// Stage 3 (Finalize): copy the result back using opts.
func Product(x, y hyper.View[float64], opts ...hyper.Option) (*hyper.Array[float64], error) {
	a, err := ToDense(x)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	b, err := ToDense(y)
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("Product(%d,%d): %w", ac, br, ErrShape)
	}
	var out mat.Dense
	out.Mul(a, b)

	return FromMatrix(&out, opts...)
}
