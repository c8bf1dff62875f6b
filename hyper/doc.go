// Package hyper provides dense N-dimensional arrays with rectangular views
// and random-access iterators over them.
//
// What:
//
//   - Array[T] owns one flat buffer and its shape: lengths, storage order,
//     coefficients and size. It offers unchecked (Ptr, Get, Flat) and checked
//     (At, Ref, Set, FlatIndex) element access.
//   - View[T] is a window [origin, origin+lengths) onto an array, addressed
//     with coordinates relative to its origin.
//   - Iterator[T] walks a view in the array's storage order restricted to
//     the window, with saturating motion in both directions.
//   - Index and Bounds are the coordinate and region vocabulary; Index
//     comparisons are component-wise, never lexicographic.
//
// Why:
//
//   - Scientific and imaging code needs sub-box traversal without copying.
//   - Reshaping is a copy between two views of equal size, so the same
//     buffer can be read as 2×3, 3×2 or 6 elements, in either order.
//
// Complexity:
//
//   - Construction: O(D + size). Checked and unchecked access: O(D).
//   - Iterator motion by any distance: O(D); iteration over a view: O(size·D).
//
// Options:
//
//   - WithOrder, WithRowMajor, WithColumnMajor select the storage order;
//     DefaultOrder is RowMajor.
//
// Errors:
//
//   - ErrBadShape: no dimensions, a negative length, or a wrapped buffer of
//     the wrong size.
//   - ErrTooManyValues: FromValues got more values than elements.
//   - ErrDimensionMismatch: an index of the wrong arity.
//   - ErrOutOfRange: a component outside [0, length); the message lists all.
//   - ErrBadBounds: a view region that is inverted or leaves the array.
//   - ErrSizeMismatch: CopyFrom/Convert between views of different sizes.
//   - ErrNilArray: operating on a nil or released array.
//
// An Array is not safe for concurrent mutation; concurrent readers are fine.
package hyper
