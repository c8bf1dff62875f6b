// SPDX-License-Identifier: MIT

package hyper

import (
	"iter"
	"slices"

	"github.com/katalvlaran/hyperarray/layout"
)

// Array is a dense D-dimensional array of T owning a single flat buffer.
// The dimension count D, the per-dimension lengths and the storage order are
// fixed at construction; coefficients and size are derived from them once.
//
// Invariants:
//   - len(lengths) == len(coeffs) == D >= 1 (D == 0 only after Release/Take)
//   - size == Π lengths == len(data)
//   - coeffs == layout.Coefficients(lengths, order)
type Array[T any] struct {
	lengths []int // extent of each dimension
	coeffs  []int // flattening weights derived from lengths and order
	size    int   // total number of elements
	order   Order // storage order
	data    []T   // flat backing storage, len == size
}

// arrayShape validates lengths and returns an element-less Array carrying
// the derived metadata.
func arrayShape[T any](lengths []int, opts []Option) (*Array[T], error) {
	if err := validateShape(lengths); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	ls := slices.Clone(lengths)

	return &Array[T]{
		lengths: ls,
		coeffs:  layout.Coefficients(ls, o.order),
		size:    layout.Size(ls),
		order:   o.order,
	}, nil
}

// New creates an array of the given lengths with zero-valued elements.
// Stage 1 (Validate): at least one dimension, no negative length.
// Stage 2 (Prepare): derive coefficients and size for the chosen order.
// Stage 3 (Finalize): allocate the flat buffer.
// Complexity: O(D + size).
func New[T any](lengths []int, opts ...Option) (*Array[T], error) {
	a, err := arrayShape[T](lengths, opts)
	if err != nil {
		return nil, hyperErrorf("hyper", "New", lengths, err)
	}
	a.data = make([]T, a.size)

	return a, nil
}

// FromValues creates an array whose first elements, in storage order, are
// copied from values; the remainder is set to fill.
// Stage 1 (Validate): shape as in New; len(values) must not exceed size.
// Stage 2 (Execute): copy values, then fill the tail.
// Complexity: O(D + size).
func FromValues[T any](lengths []int, values []T, fill T, opts ...Option) (*Array[T], error) {
	a, err := arrayShape[T](lengths, opts)
	if err != nil {
		return nil, hyperErrorf("hyper", "FromValues", lengths, err)
	}
	if len(values) > a.size {
		return nil, hyperErrorf("hyper", "FromValues", lengths, ErrTooManyValues)
	}
	a.data = make([]T, a.size)
	n := copy(a.data, values)
	for i := n; i < a.size; i++ {
		a.data[i] = fill
	}

	return a, nil
}

// Wrap creates an array that adopts data as its buffer without copying.
// The caller must not use data independently afterwards.
// It fails with ErrBadShape unless len(data) equals the product of lengths.
func Wrap[T any](lengths []int, data []T, opts ...Option) (*Array[T], error) {
	a, err := arrayShape[T](lengths, opts)
	if err != nil {
		return nil, hyperErrorf("hyper", "Wrap", lengths, err)
	}
	if len(data) != a.size {
		return nil, hyperErrorf("hyper", "Wrap", []int{len(data), a.size}, ErrBadShape)
	}
	if data == nil {
		data = []T{}
	}
	a.data = data

	return a, nil
}

// New1D creates a one-dimensional array of n elements.
func New1D[T any](n int, opts ...Option) (*Array[T], error) {
	return New[T]([]int{n}, opts...)
}

// New2D creates a rows×cols array.
func New2D[T any](rows, cols int, opts ...Option) (*Array[T], error) {
	return New[T]([]int{rows, cols}, opts...)
}

// New3D creates an l0×l1×l2 array.
func New3D[T any](l0, l1, l2 int, opts ...Option) (*Array[T], error) {
	return New[T]([]int{l0, l1, l2}, opts...)
}

// Clone returns a deep copy of a with its own buffer.
// Complexity: O(D + size).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		lengths: slices.Clone(a.lengths),
		coeffs:  slices.Clone(a.coeffs),
		size:    a.size,
		order:   a.order,
		data:    slices.Clone(a.data),
	}
}

// Take moves the contents of src into a and leaves src empty.
// No elements are copied.
func (a *Array[T]) Take(src *Array[T]) {
	if a == src {
		return
	}
	*a = *src
	*src = Array[T]{}
}

// Release hands the buffer to the caller and leaves a empty.
func (a *Array[T]) Release() []T {
	data := a.data
	*a = Array[T]{}

	return data
}

// Empty reports whether a owns no buffer: a nil array, the zero value, or
// one emptied by Release or Take.
func (a *Array[T]) Empty() bool {
	return a == nil || a.data == nil
}

// Dims returns the number of dimensions.
func (a *Array[T]) Dims() int { return len(a.lengths) }

// Order returns the storage order.
func (a *Array[T]) Order() Order { return a.order }

// Length returns the extent of dimension dim (unchecked).
func (a *Array[T]) Length(dim int) int { return a.lengths[dim] }

// Lengths returns a copy of the per-dimension extents.
func (a *Array[T]) Lengths() []int { return slices.Clone(a.lengths) }

// Coeff returns the flattening coefficient of dimension dim (unchecked).
func (a *Array[T]) Coeff(dim int) int { return a.coeffs[dim] }

// Coeffs returns a copy of the flattening coefficients.
func (a *Array[T]) Coeffs() []int { return slices.Clone(a.coeffs) }

// Size returns the total number of elements.
func (a *Array[T]) Size() int { return a.size }

// Data returns the live flat buffer in storage order.
func (a *Array[T]) Data() []T { return a.data }

// Flat returns a pointer to the element at flat offset i.
// The offset is not checked beyond Go's own slice bounds check.
func (a *Array[T]) Flat(i int) *T { return &a.data[i] }

// ElemAt returns a pointer to the element at idx without range checks.
// idx must have Dims components, each inside its dimension.
func (a *Array[T]) ElemAt(idx Index) *T {
	return &a.data[layout.Flatten(idx, a.coeffs)]
}

// Ptr is ElemAt taking the components as arguments.
func (a *Array[T]) Ptr(indices ...int) *T {
	return &a.data[layout.Flatten(indices, a.coeffs)]
}

// Get returns the element at indices without range checks.
func (a *Array[T]) Get(indices ...int) T {
	return a.data[layout.Flatten(indices, a.coeffs)]
}

// flatChecked validates indices and maps them onto the buffer.
// Stage 1 (Validate): array present, arity, every component in range.
// Stage 2 (Execute): weighted sum with the coefficients.
// Complexity: O(D).
func (a *Array[T]) flatChecked(method string, indices []int) (int, error) {
	if a.Empty() {
		return 0, hyperErrorf("Array", method, indices, ErrNilArray)
	}
	if err := validateIndex(indices, a.lengths); err != nil {
		return 0, hyperErrorf("Array", method, indices, err)
	}

	return layout.Flatten(indices, a.coeffs), nil
}

// FlatIndex returns the buffer offset of the element at indices after
// validating them.
func (a *Array[T]) FlatIndex(indices ...int) (int, error) {
	return a.flatChecked("FlatIndex", indices)
}

// At returns the element at indices.
// Failures wrap ErrDimensionMismatch or ErrOutOfRange; the zero T is
// returned alongside and carries no meaning.
func (a *Array[T]) At(indices ...int) (T, error) {
	i, err := a.flatChecked("At", indices)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Ref returns a pointer to the element at indices after validating them.
func (a *Array[T]) Ref(indices ...int) (*T, error) {
	i, err := a.flatChecked("Ref", indices)
	if err != nil {
		return nil, err
	}

	return &a.data[i], nil
}

// Set stores v at indices after validating them.
func (a *Array[T]) Set(v T, indices ...int) error {
	i, err := a.flatChecked("Set", indices)
	if err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Values yields every element in storage order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (flat offset, element pointer) pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range a.data {
			if !yield(i, &a.data[i]) {
				return
			}
		}
	}
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Apply replaces every element with fn(flat offset, element).
// Complexity: O(size).
func (a *Array[T]) Apply(fn func(flat int, v T) T) {
	for i, v := range a.data {
		a.data[i] = fn(i, v)
	}
}

// Whole returns a view over the entire array.
func (a *Array[T]) Whole() View[T] {
	return View[T]{
		array:   a,
		begin:   Zero(len(a.lengths)),
		lengths: slices.Clone(a.lengths),
		size:    a.size,
	}
}

// Sub returns a view over the half-open region [begin, end).
// Stage 1 (Validate): array present; begin and end have Dims components;
// 0 <= begin[i] <= end[i] <= Length(i) for every i.
// Stage 2 (Finalize): record origin and extents; no element is touched.
// Complexity: O(D).
func (a *Array[T]) Sub(begin, end Index) (View[T], error) {
	if a.Empty() {
		return View[T]{}, hyperErrorf("Array", "Sub", begin, ErrNilArray)
	}
	if err := validateRegion(begin, end, a.lengths); err != nil {
		return View[T]{}, hyperErrorf("Array", "Sub", append(slices.Clone(begin), end...), err)
	}
	lengths := end.Sub(begin)

	return View[T]{
		array:   a,
		begin:   begin.Clone(),
		lengths: lengths,
		size:    layout.Size(lengths),
	}, nil
}

// SubLen returns a view with origin begin and the given extents.
func (a *Array[T]) SubLen(begin Index, lengths []int) (View[T], error) {
	if len(begin) != len(lengths) {
		return View[T]{}, hyperErrorf("Array", "SubLen", begin, ErrDimensionMismatch)
	}
	for _, l := range lengths {
		if l < 0 {
			return View[T]{}, hyperErrorf("Array", "SubLen", lengths, ErrBadBounds)
		}
	}

	return a.Sub(begin, begin.Add(lengths))
}

// ViewBounds returns a view over the closed region b.
func (a *Array[T]) ViewBounds(b Bounds) (View[T], error) {
	return a.Sub(b.Lower(), b.Upper().AddScalar(1))
}
