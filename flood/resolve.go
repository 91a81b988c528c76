package flood

import (
	"github.com/katalvlaran/spilldem/dem"
)

// resolve assigns the flow direction of the just-committed cell (x,y)
// with spill elevation z by steepest descent: among the in-bounds,
// already committed neighbors whose elevation does not exceed z, pick
// the one maximizing (z − neighbor) / length(direction), i.e. the
// steepest drop per unit physical distance. Ties keep the lowest
// direction-table index.
//
// Every interior cell has at least one qualifying neighbor — the cell
// that pushed it was committed at or below the candidate it wrote — so
// a cell left Unresolved here is a defect, not a valid outcome.
//
// Complexity: O(8).
func (r *runner) resolve(x, y int, z float32) {
	g := r.grid
	best := -1
	var bestGrad, grad float64
	var nx, ny, ni int
	var nz float32
	for d := 0; d < 8; d++ {
		nx, ny = x+r.offsets[d][0], y+r.offsets[d][1]
		if !g.InBounds(nx, ny) {
			continue
		}
		ni = g.Index(nx, ny)
		if !r.processed[ni] {
			continue
		}
		nz = r.filled[ni]
		// nodata neighbors never qualify: a nodata-adjacent cell is a
		// drain and carries Drain before resolve can run.
		if g.IsNoData(nz) || nz > z {
			continue
		}
		grad = float64(z-nz) / g.DirectionLength(d)
		if best < 0 || grad > bestGrad {
			best, bestGrad = d, grad
		}
	}
	if best >= 0 {
		r.dirs[g.Index(x, y)] = dem.Code(best)
	}
}
