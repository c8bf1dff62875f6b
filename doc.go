// Package hyperarray is a toolkit for dense N-dimensional arrays: one flat
// buffer, any number of dimensions, row-major or column-major layout,
// rectangular views and random-access iterators that saturate at both ends.
//
// What is inside?
//
//	layout/        storage orders, coefficients, flatten / unflatten / advance arithmetic
//	hyper/         Index, Bounds, Array, View, Iterator and ConstIterator
//	matconv/       copies between hyper arrays and gonum mat.Dense / mat.VecDense
//	regions/       connected-region search and labelling over views
//	cmd/hyperplay  a cobra playground CLI exercising all of the above
//
// Why hyperarray?
//
//   - Generic element type, dimension count chosen at run time
//   - Checked and unchecked access side by side, with errors that name every
//     offending component
//   - Views iterate in the owner's storage order restricted to the window,
//     so reshaping is just a copy between two equally sized views
//
// Quick example:
//
//	a, _ := hyper.FromValues([]int{2, 3}, []int{1, 2, 3, 4, 5, 6}, 0)
//	v, _ := a.Sub(hyper.Index{0, 1}, hyper.Index{2, 3})
//	for it := v.Begin(); it.NotEqual(v.End()); it.Next() {
//		fmt.Println(it, it.Value()) // 2 3 5 6
//	}
//
// The root package holds documentation only.
package hyperarray
