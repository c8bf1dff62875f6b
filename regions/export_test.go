// SPDX-License-Identifier: MIT

package regions

// NeighborOffsetsForTest exposes neighborOffsets to the external tests.
func NeighborOffsetsForTest(dims int, c Connectivity) [][]int { return neighborOffsets(dims, c) }
