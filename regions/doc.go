// Package regions finds connected regions of selected cells in a hyper view,
// treating the view as an implicit graph whose vertices are cells and whose
// edges join neighboring cells.
//
// What:
//
//   - Components lists every connected region of cells accepted by a
//     predicate, as view-relative cursors.
//   - Label paints the regions into an int array of the view's shape:
//     0 for rejected cells, 1..n for the regions in discovery order.
//
// Why:
//
//   - Image and volume masks: count blobs, measure their extent.
//   - Game maps: contiguous land detection on grids of any dimension.
//
// Complexity:
//
//   - Components, Label: O(size·k·D) time, O(size) memory, where k is the
//     neighbor count (2·D for Face, 3^D-1 for Full).
//
// Options:
//
//   - WithConnectivity(Face): neighbors differ by one step in one dimension
//     (4-neighborhood in 2-D). This is the default.
//   - WithConnectivity(Full): neighbors differ by at most one step in every
//     dimension (8-neighborhood in 2-D, 26 in 3-D).
//
// Regions never cross the view's edges, even where the underlying array
// continues.
package regions
