// Package dem models a single-band elevation grid as flat, row-major
// sample data plus the fixed 8-direction (D8) neighbor table shared by
// all spilldem algorithms.
//
// What:
//
//   - Grid wraps a rectangular []float32 elevation buffer with a nodata
//     sentinel and per-axis cell sizes in ground units.
//   - Index/Coordinate/InBounds give O(1) bounds and index arithmetic
//     over the row-major layout (idx = y·Width + x).
//   - NeighborOffsets exposes the immutable direction table in compass
//     rotation E, NE, N, NW, W, SW, S, SE; DirectionLength gives each
//     direction's physical traversal length (axis cell size for
//     orthogonals, Euclidean combination for diagonals).
//   - Direction codes the single downstream neighbor of a cell:
//     1..8 one-to-one with the direction table (code = index + 1),
//     0 = unresolved, 255 = drains off-grid or into nodata.
//
// Why:
//
//   - Hydrology: depression filling, flow routing, catchment analysis.
//   - Terrain analysis: slope/aspect style per-direction arithmetic.
//   - Any raster algorithm that walks 8-connected neighborhoods.
//
// Complexity:
//
//   - NewGrid: O(W×H) time and memory (deep copy of the input buffer).
//   - All other operations: O(1).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrBadCellSize: a cell size is not positive.
//   - ErrBufferSize: buffer length does not equal width×height.
package dem
