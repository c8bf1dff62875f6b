// SPDX-License-Identifier: MIT

package layout

// Coefficients computes the stride of every dimension for the given order.
//
// RowMajor:    c[i] = Π lengths[i+1..n-1]  (c[n-1] = 1)
// ColumnMajor: c[i] = Π lengths[0..i-1]    (c[0]   = 1)
//
// Both formulas are the running product of the lengths visited before i in
// FastestFirst order. Zero lengths are legal and make the slower coefficients
// degenerate to 0, reflecting a zero total size.
// Complexity: O(n).
func Coefficients(lengths []int, o Order) []int {
	coeffs := make([]int, len(lengths))
	stride := 1
	for i := range o.FastestFirst(len(lengths)) {
		coeffs[i] = stride
		stride *= lengths[i]
	}

	return coeffs
}

// Size returns the number of elements addressed by lengths (their product).
// Complexity: O(n).
func Size(lengths []int) int {
	size := 1
	for _, l := range lengths {
		size *= l
	}

	return size
}

// Flatten returns the linear offset Σ coeffs[i]·idx[i].
// No bounds checking is done; len(idx) must equal len(coeffs).
// Complexity: O(n).
func Flatten(idx, coeffs []int) int {
	var off int
	for i, c := range coeffs {
		off += c * idx[i]
	}

	return off
}
