// Package flood implements priority-flood depression filling with D8
// flow-direction assignment on elevation grids (Wang & Liu, 2006).
//
// Fill raises every enclosed local minimum ("pit") of the input surface
// to its spill elevation — the lowest level at which water can escape —
// and assigns each cell the direction code of its single downstream
// neighbor. An optional minimum-slope gradient enforces a per-direction
// elevation drop between neighboring filled cells, eliminating the flat
// plateaus that make flow direction ambiguous.
//
// What:
//
//   - Frontier-ordered expansion from the grid's drain cells (boundary
//     cells and cells adjacent to nodata) inward, always committing the
//     frontier cell with the lowest spill elevation first. Each cell is
//     pushed and popped exactly once.
//   - Flat-fill mode (default): a cell's spill elevation is the max of
//     its own elevation and its upstream neighbor's spill elevation.
//     Exact elevation ties assign the downstream direction immediately,
//     pointing back along the traversed edge; steepest descent would see
//     zero gradient everywhere on a plateau.
//   - Minimum-slope mode (WithMinSlope, θ > 0): the spill elevation is
//     additionally floored at upstream + tan(θ)·length(direction). The
//     floor is not a forced increment: naturally steep cells keep their
//     original elevation.
//   - Cells whose direction is still unassigned after processing get it
//     by steepest descent per unit physical distance over their already
//     committed neighbors.
//
// Why:
//
//   - Hydrological conditioning: raw DEMs are full of spurious pits
//     (sampling noise, interpolation artifacts) that trap simulated flow.
//   - Flow routing: the D8 grid feeds flow accumulation, watershed
//     delineation and stream extraction directly.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H — one heap push and one pop per cell.
//   - Space: O(N) — output buffers, two flag arrays, the heap.
//
// Options:
//
//   - WithMinSlope(deg): minimum slope angle in degrees; values ≤ 0
//     leave the rule disabled (classical flat fill).
//
// Errors:
//
//   - ErrNilGrid: the grid pointer is nil.
//   - ErrBadDimensions: grid width or height is not positive.
//   - ErrBadCellSize: a cell size is not positive while the
//     minimum-slope rule is enabled (direction lengths degenerate).
//
// Determinism:
//
// The filled surface is fully deterministic: every elevation write is a
// monotone max and independent of pop order among equal keys. Flow
// directions are deterministic up to tie-breaking — when two frontier
// entries share a spill elevation, or two committed neighbors yield the
// same descent gradient, the winner depends on heap ordering and table
// scan order. Callers must not rely on which of the tied directions is
// chosen.
package flood
