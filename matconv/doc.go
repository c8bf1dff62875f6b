// Package matconv moves float64 data between hyper arrays and gonum's mat
// types.
//
// What:
//
//   - ToDense / FromMatrix: two-dimensional views to and from mat.Matrix,
//     element (i,j) of the view being element (i,j) of the matrix.
//   - ToVec / FromVec: any view flattened in its iteration order to a
//     mat.VecDense, and any mat.Vector reshaped into an array.
//   - Product: a matrix product of two 2-D views computed by gonum.
//
// Errors:
//
//   - ErrNotMatrix: a view passed where a 2-D one is required.
//   - ErrEmpty: gonum cannot represent zero-length matrices or vectors.
//   - hyper.ErrBadShape: FromVec with lengths that do not match Len().
//   - ErrShape: Product operands with mismatched inner dimensions.
//
// Every function copies; the results never alias their inputs.
package matconv
