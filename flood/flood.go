// Package flood implements priority-flood depression filling with D8
// flow-direction assignment (Wang & Liu, 2006).
package flood

import (
	"container/heap"

	"github.com/katalvlaran/spilldem/dem"
)

// Fill computes the depression-filled elevation surface and the D8
// flow-direction grid of g. It accepts functional options to customize
// behavior (WithMinSlope).
//
// Returns:
//
//   - filled: row-major filled elevations, same shape as g.Elevations.
//     filled[i] ≥ g.Elevations[i] for every valid cell; nodata cells are
//     preserved unchanged.
//   - dirs: row-major dem.Direction codes. Every valid cell carries a
//     code 1..8 or dem.Drain (boundary / nodata-adjacent cells drain off
//     the modeled surface); nodata cells carry dem.Drain.
//   - err: error if the grid is invalid (see sentinel errors).
//
// Fill is a pure function of (g, opts): it never mutates g and returns
// fresh buffers on every call. Single-threaded, no suspension points.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. g.Width and g.Height must be positive (ErrBadDimensions).
//  3. Cell sizes must be positive when MinSlopeDeg > 0 (ErrBadCellSize).
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H (one heap push and pop per cell)
//   - Space: O(N)
func Fill(g *dem.Grid, opts ...Option) ([]float32, []dem.Direction, error) {
	// 1) Build Options from functional opts.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid presence and shape.
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, nil, ErrBadDimensions
	}

	// 3) Validate cell sizes when the minimum-slope rule is enabled;
	//    direction lengths feed the per-direction increments.
	if cfg.MinSlopeDeg > 0 && (g.CellSizeX <= 0 || g.CellSizeY <= 0) {
		return nil, nil, ErrBadCellSize
	}

	// 4) Prepare per-run state: output buffers, flag arrays, frontier.
	//    Flat arrays share the grid's row-major index; no per-cell
	//    heap-allocated objects.
	n := g.Width * g.Height
	r := &runner{
		grid:      g,
		rule:      newSlopeRule(g, cfg.MinSlopeDeg),
		offsets:   dem.NeighborOffsets(),
		filled:    make([]float32, n),
		dirs:      make([]dem.Direction, n),
		queued:    make([]bool, n),
		processed: make([]bool, n),
		pq:        make(cellPQ, 0, n),
	}
	copy(r.filled, g.Elevations)

	// 5) Seed the frontier with drain cells and run the main loop.
	r.init()
	r.process()

	return r.filled, r.dirs, nil
}

// runner holds the mutable state for a single Fill execution.
type runner struct {
	grid      *dem.Grid       // The input grid; read-only within Fill.
	rule      slopeRule       // Precomputed minimum-slope increments.
	offsets   [8][2]int       // Shared direction table.
	filled    []float32       // Spill elevations; starts as a copy of the input.
	dirs      []dem.Direction // Flow-direction codes per cell.
	queued    []bool          // Cell is currently in the frontier.
	processed []bool          // Cell's elevation and direction are final.
	pq        cellPQ          // Min-heap frontier ordered by spill elevation.
}

// init classifies every cell exactly once:
//
//   - nodata cells are final immediately: processed, direction Drain,
//     never enqueued, elevation untouched.
//   - valid cells on the grid boundary or adjacent to a nodata cell are
//     drain cells: enqueued at their original elevation with direction
//     Drain (they flow off the modeled surface).
//   - all remaining cells stay untouched until the frontier reaches them.
//
// Complexity: O(W×H×8).
func (r *runner) init() {
	heap.Init(&r.pq)

	g := r.grid
	var i int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i = g.Index(x, y)
			if g.IsNoData(r.filled[i]) {
				r.processed[i] = true
				r.dirs[i] = dem.Drain

				continue
			}
			if r.isDrain(x, y) {
				r.dirs[i] = dem.Drain
				r.queued[i] = true
				heap.Push(&r.pq, &cellItem{elev: r.filled[i], x: x, y: y})
			}
		}
	}
}

// isDrain reports whether valid cell (x,y) drains off the modeled
// surface: it lies on the grid boundary or touches a nodata neighbor.
func (r *runner) isDrain(x, y int) bool {
	g := r.grid
	if x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1 {
		return true
	}
	for _, off := range r.offsets {
		if g.IsNoData(r.filled[g.Index(x+off[0], y+off[1])]) {
			return true
		}
	}

	return false
}

// process drains the frontier. Each iteration commits the cell with the
// lowest spill elevation, raises its untouched neighbors to their
// candidate spill levels, and resolves the cell's flow direction if
// propagation left it unassigned. Ties between equal spill elevations
// fall to heap order and are unspecified.
//
// Every valid cell is pushed exactly once (guarded by queued) and popped
// exactly once, so the loop terminates after N pops.
func (r *runner) process() {
	g := r.grid
	var (
		item       *cellItem
		i, ni, d   int
		nx, ny     int
		z, nz, cnd float32
		floor      float64
	)
	for r.pq.Len() > 0 {
		// 1) Commit the lowest frontier cell. Its slot in filled already
		//    holds the candidate written at push time, so it is final now.
		item = heap.Pop(&r.pq).(*cellItem)
		i = g.Index(item.x, item.y)
		r.processed[i] = true
		r.queued[i] = false
		z = r.filled[i]

		// 2) Raise each untouched neighbor to its candidate spill level.
		for d = 0; d < 8; d++ {
			nx, ny = item.x+r.offsets[d][0], item.y+r.offsets[d][1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni = g.Index(nx, ny)
			// processed covers nodata cells as well; queued cells keep the
			// candidate written by their first (lowest) committed neighbor.
			if r.processed[ni] || r.queued[ni] {
				continue
			}
			nz = r.filled[ni] // still the original elevation

			if r.rule.enabled {
				// Minimum-slope mode: floor the neighbor at z plus the
				// per-direction increment. A floor, not a forced increment:
				// naturally steeper terrain keeps its own elevation.
				cnd = nz
				if floor = float64(z) + r.rule.minIncrement[d]; floor > float64(nz) {
					cnd = float32(floor)
				}
			} else {
				// Flat-fill mode: monotone max only.
				cnd = nz
				if z > nz {
					cnd = z
				}
				if nz == z {
					// Zero-gradient tie: steepest descent would find no
					// downhill later, so point back along the traversed edge.
					r.dirs[ni] = dem.Code(dem.Reverse(d))
				}
			}

			// The write is final: monotone non-decrease holds by
			// construction and the cell is never revisited before its pop.
			r.filled[ni] = cnd
			r.queued[ni] = true
			heap.Push(&r.pq, &cellItem{elev: cnd, x: nx, y: ny})
		}

		// 3) Fall back to steepest descent when propagation did not
		//    assign a direction (drain cells already carry Drain).
		if r.dirs[i] == dem.Unresolved {
			r.resolve(item.x, item.y, z)
		}
	}
}

// cellItem is a frontier entry: a cell and its candidate spill elevation.
type cellItem struct {
	elev float32 // candidate spill elevation
	x, y int     // cell coordinates
}

// cellPQ is a min-heap (priority queue) of *cellItem ordered by
// ascending spill elevation. Unlike a lazy-decrease-key queue, each cell
// enters at most once: the queued flag blocks duplicate insertion.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller spill elevation → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].elev < pq[j].elev }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *cellItem.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
