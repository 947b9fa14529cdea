// Package channel implements the conjugate-channel pair and the mixing
// and inversion operators over it.
// See design doc Section 3.
package channel

import (
	"fmt"
	"math"

	"github.com/talgya/phi-cascade/internal/phi"
)

// Pair is one conjugate pair at one recursion depth. A Pair is immutable
// once produced: every mixing step returns a new value, and derived
// sequences never mutate earlier entries.
type Pair struct {
	Plus  float64 // positive/constructive component amplitude
	Minus float64 // negative/destructive component amplitude
	Depth int     // recursion depth, 0 for a caller-supplied pair
}

// TotalAmplitude is the combined magnitude of both halves.
func (p Pair) TotalAmplitude() float64 {
	return math.Abs(p.Plus) + math.Abs(p.Minus)
}

// PolarityRatio is |Plus| / |Minus|, +Inf when Minus is zero.
func (p Pair) PolarityRatio() float64 {
	if p.Minus == 0 {
		return math.Inf(1)
	}
	return math.Abs(p.Plus) / math.Abs(p.Minus)
}

// balanceBand is the tolerance around Φ within which a pair counts as
// golden-balanced.
const balanceBand = 0.1

// Balanced reports whether the polarity ratio sits in the golden band.
func (p Pair) Balanced() bool {
	return math.Abs(p.PolarityRatio()-phi.Phi) < balanceBand
}

// Visible reports whether the pair clears the visibility threshold.
// Below it the pair is virtual: carried by the model, indistinguishable
// from absence.
func (p Pair) Visible(threshold float64) bool {
	return p.TotalAmplitude() >= threshold
}

func (p Pair) String() string {
	return fmt.Sprintf("Pair(+%.4f, -%.4f) @ z=%d", p.Plus, p.Minus, p.Depth)
}
