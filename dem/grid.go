package dem

import (
	"math"
)

// Grid is a single-band elevation raster. Elevations is row-major
// (Elevations[y*Width+x]); cells equal to NoData are outside the valid
// data mask. CellSizeX/CellSizeY are the per-axis sample spacings in
// ground units and feed the per-direction traversal lengths.
// A Grid is immutable once built.
type Grid struct {
	Width, Height        int
	NoData               float32
	CellSizeX, CellSizeY float64
	Elevations           []float32
	dirLengths           [8]float64
}

// NewGrid constructs a Grid from a flat row-major elevation buffer.
// It deep-copies the buffer to ensure immutability.
// Returns ErrBadDimensions if width or height ≤ 0,
// ErrBadCellSize if either cell size ≤ 0,
// ErrBufferSize if len(values) ≠ width×height.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values []float32, width, height int, nodata float32, cellSizeX, cellSizeY float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if cellSizeX <= 0 || cellSizeY <= 0 {
		return nil, ErrBadCellSize
	}
	if len(values) != width*height {
		return nil, ErrBufferSize
	}
	// Deep copy to prevent external mutation
	elev := make([]float32, len(values))
	copy(elev, values)

	g := &Grid{
		Width:      width,
		Height:     height,
		NoData:     nodata,
		CellSizeX:  cellSizeX,
		CellSizeY:  cellSizeY,
		Elevations: elev,
	}
	// Precompute per-direction traversal lengths: axis spacing for
	// orthogonal moves, Euclidean combination for diagonals.
	for d, off := range neighborOffsets {
		switch {
		case off[0] != 0 && off[1] != 0:
			g.dirLengths[d] = math.Hypot(cellSizeX, cellSizeY)
		case off[0] != 0:
			g.dirLengths[d] = cellSizeX
		default:
			g.dirLengths[d] = cellSizeY
		}
	}

	return g, nil
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the elevation sample at (x,y). Caller must ensure bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) float32 {
	return g.Elevations[y*g.Width+x]
}

// IsNoData reports whether v equals the grid's nodata sentinel.
// Complexity: O(1).
func (g *Grid) IsNoData(v float32) bool {
	return v == g.NoData
}

// DirectionLength returns the physical traversal length of direction
// table index d (0..7), precomputed at construction.
// Complexity: O(1).
func (g *Grid) DirectionLength(d int) float64 {
	return g.dirLengths[d]
}
