package flood

import (
	"math"

	"github.com/katalvlaran/spilldem/dem"
)

// slopeRule holds the precomputed per-direction minimum elevation
// increments derived from a slope angle. When enabled, any two adjacent
// filled cells differ by at least minIncrement[d] along direction d,
// so no flat plateau survives the fill. Pure data, evaluated once
// before the engine runs.
type slopeRule struct {
	enabled      bool
	minIncrement [8]float64
}

// newSlopeRule builds the rule for angle deg (degrees) over g's
// direction lengths. deg ≤ 0 returns a disabled rule.
// Complexity: O(1).
func newSlopeRule(g *dem.Grid, deg float64) slopeRule {
	var r slopeRule
	if deg <= 0 {
		return r
	}
	r.enabled = true
	t := math.Tan(deg * math.Pi / 180)
	for d := 0; d < 8; d++ {
		r.minIncrement[d] = t * g.DirectionLength(d)
	}

	return r
}
