// Package flood defines configuration options and sentinel errors for
// the priority-flood depression-filling algorithm.
package flood

import (
	"errors"
)

// Sentinel errors returned by Fill.
var (
	// ErrNilGrid indicates a nil *dem.Grid was passed to Fill.
	ErrNilGrid = errors.New("flood: grid is nil")

	// ErrBadDimensions indicates the grid's width or height is not positive.
	ErrBadDimensions = errors.New("flood: grid width and height must be positive")

	// ErrBadCellSize indicates a non-positive cell size while the
	// minimum-slope rule is enabled; direction lengths would be degenerate.
	ErrBadCellSize = errors.New("flood: cell sizes must be positive when a minimum slope is set")
)

// Options configures the behavior of Fill.
//
// MinSlopeDeg – minimum slope angle in degrees enforced between adjacent
// filled cells. Values ≤ 0 disable the rule (flat-fill mode, matching
// the classical Wang & Liu algorithm, where elevation ties are allowed).
type Options struct {
	MinSlopeDeg float64
}

// Option represents a functional option for configuring Fill.
type Option func(*Options)

// WithMinSlope sets the minimum slope angle in degrees. Passing a value
// ≤ 0 keeps the rule disabled.
func WithMinSlope(deg float64) Option {
	return func(o *Options) {
		o.MinSlopeDeg = deg
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MinSlopeDeg: 0 (rule disabled; flat fill).
func DefaultOptions() Options {
	return Options{
		MinSlopeDeg: 0,
	}
}
