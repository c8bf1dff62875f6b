// SPDX-License-Identifier: MIT

package hyper

import "fmt"

// CopyFrom copies src into v element by element, each side walked in its own
// iteration order. Only the sizes must agree, so a 2×3 view can be filled
// from a 3×2 or a 6-element one, or from an array of the other storage order.
func (v View[T]) CopyFrom(src View[T]) error {
	return Convert(v, src, func(x T) T { return x })
}

// Convert copies src into dst through conv, pairing elements by iteration
// position.
// Stage 1 (Validate): both views attached; equal sizes.
// Stage 2 (Execute): advance one iterator per side in lockstep.
// Overlapping windows of one array are copied front to back.
// Complexity: O(size·D).
func Convert[D, S any](dst View[D], src View[S], conv func(S) D) error {
	if dst.array.Empty() || src.array.Empty() {
		return fmt.Errorf("View.CopyFrom: %w", ErrNilArray)
	}
	if dst.size != src.size {
		return fmt.Errorf("View.CopyFrom(%d,%d): %w", dst.size, src.size, ErrSizeMismatch)
	}
	s, d := src.Begin(), dst.Begin()
	for range src.size {
		d.Set(conv(s.Value()))
		s.Next()
		d.Next()
	}

	return nil
}
