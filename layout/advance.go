// SPDX-License-Identifier: MIT

package layout

// Ordinal returns the distance from the origin of a box of extents ranges to
// the cursor offset diff, counted in the iteration order o.
//
// It is Flatten with coefficients derived from ranges instead of an owner's
// lengths, which is what a view needs to rank its own elements.
// Complexity: O(n).
func Ordinal(o Order, diff, ranges []int) int {
	var d int
	stride := 1
	for i := range o.FastestFirst(len(ranges)) {
		d += diff[i] * stride
		stride *= ranges[i]
	}

	return d
}

// Redistribute overwrites cursor with the coordinate that lies distance steps
// from begin inside the box [begin, end), walking dimensions fastest first:
//
//	cursor = begin
//	q = distance
//	for each dimension i, fastest first:
//	    cursor[i] += q mod (end[i]-begin[i])
//	    q /= end[i]-begin[i]
//	    stop when q == 0
//
// Precondition: 0 < distance < Size(end-begin). Callers clamp distances at
// or beyond either end before calling, so the loop never divides by the range
// of an empty dimension.
// Complexity: O(n).
func Redistribute(o Order, cursor []int, distance int, begin, end []int) {
	copy(cursor, begin)
	q := distance
	var r int
	for i := range o.FastestFirst(len(cursor)) {
		r = end[i] - begin[i]
		cursor[i] += q % r
		q /= r
		if q == 0 {
			break
		}
	}
}

// Unflatten is the inverse of Ordinal over a zero-origin box of extents
// lengths. Ordinals <= 0 map to the origin and ordinals >= Size(lengths) map
// to the one-past-the-end coordinate (lengths itself), mirroring the clamp
// policy of iterators.
// Complexity: O(n).
func Unflatten(o Order, ordinal int, lengths []int) []int {
	cursor := make([]int, len(lengths))
	if ordinal <= 0 {
		return cursor
	}
	if ordinal >= Size(lengths) {
		copy(cursor, lengths)
		return cursor
	}
	Place(o, cursor, ordinal, lengths)

	return cursor
}

// Place is Redistribute for a box anchored at the origin: it overwrites cursor
// with the coordinate distance steps away from the zero index inside lengths.
// It shares Redistribute's precondition and does not allocate, which makes it
// the per-step primitive of iterators.
// Complexity: O(n).
func Place(o Order, cursor []int, distance int, lengths []int) {
	clear(cursor)
	q := distance
	var r int
	for i := range o.FastestFirst(len(cursor)) {
		r = lengths[i]
		cursor[i] = q % r
		q /= r
		if q == 0 {
			break
		}
	}
}
