// Package dem defines core types and sentinel errors for the dem
// subpackage of github.com/katalvlaran/spilldem.
package dem

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("dem: width and height must be positive")
	// ErrBadCellSize indicates a non-positive cell size on either axis.
	ErrBadCellSize = errors.New("dem: cell sizes must be positive")
	// ErrBufferSize indicates the elevation buffer does not match width×height.
	ErrBufferSize = errors.New("dem: elevation buffer length must equal width*height")
)

// Direction is a D8 flow-direction code: the single downstream neighbor
// a cell drains into. Codes 1..8 map one-to-one to the direction table
// (code = table index + 1); two sentinels complete the range.
type Direction uint8

const (
	// Unresolved marks a cell whose direction has not been assigned yet.
	// It must not appear in a finished flow-direction grid.
	Unresolved Direction = 0

	// East..SouthEast follow the direction table's compass rotation.
	East      Direction = 1
	NorthEast Direction = 2
	North     Direction = 3
	NorthWest Direction = 4
	West      Direction = 5
	SouthWest Direction = 6
	South     Direction = 7
	SouthEast Direction = 8

	// Drain marks a cell that flows off-grid or into a nodata neighbor.
	Drain Direction = 255
)

// neighborOffsets lists the 8 neighbor (dx, dy) offsets in compass
// rotation starting East, matching Direction codes 1..8. The table is
// immutable and shared by all grid algorithms.
var neighborOffsets = [8][2]int{
	{1, 0},   // E
	{1, -1},  // NE
	{0, -1},  // N
	{-1, -1}, // NW
	{-1, 0},  // W
	{-1, 1},  // SW
	{0, 1},   // S
	{1, 1},   // SE
}

// NeighborOffsets returns the fixed 8-direction offset table.
// Complexity: O(1).
func NeighborOffsets() [8][2]int {
	return neighborOffsets
}

// Code converts a direction table index (0..7) to its Direction code (1..8).
// Complexity: O(1).
func Code(d int) Direction {
	return Direction(d + 1)
}

// Reverse returns the table index of the opposite direction:
// Reverse(E)=W, Reverse(NE)=SW, and so on.
// Complexity: O(1).
func Reverse(d int) int {
	return (d + 4) % 8
}
