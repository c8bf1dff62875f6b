// Package layout holds the index arithmetic behind every hyperarray container:
// storage orders, per-dimension coefficients (strides), flattening of an
// N-tuple into a linear offset, and the inverse walk that redistributes a
// linear distance back into per-dimension components.
//
// What:
//
//   - Order selects RowMajor (last dimension fastest, C convention) or
//     ColumnMajor (first dimension fastest, Fortran convention).
//   - Coefficients derives the stride of each dimension for a given Order.
//   - Flatten maps an index tuple to a linear offset (Σ coeff[i]·idx[i]).
//   - Ordinal measures how far a cursor sits from the origin of a box, in the
//     box's own iteration order.
//   - Redistribute, Place and Unflatten turn such a distance back into a cursor.
//
// Why:
//
//   - Views over a sub-region cannot reuse the owner's coefficients for
//     iteration; they need order-aware arithmetic relative to their own extents.
//   - Keeping the order-dependent traversal in one place (Order.FastestFirst)
//     means every other routine is order-agnostic.
//
// Complexity:
//
//   - Every function is O(D) time, D = number of dimensions; none allocate
//     except Coefficients and Unflatten, which return fresh slices.
//
// Errors:
//
//   - ErrUnknownOrder: ParseOrder received an unrecognized name.
//
// All functions are unchecked: callers validate indices before flattening when
// safety is required (see package hyper for the checked surface).
package layout
