// Package phi provides the golden-ratio constants the cascade weights derive from.
// No arbitrary magic numbers — everything traces back to Φ.
// See design doc Section 2.
package phi

import "math"

// Phi is the golden ratio.
const Phi = 1.6180339887498948

// Weight constants derived from negative powers of Phi.
var (
	// Inv (Φ⁻¹): the primary weight — the fraction of a channel that
	// survives one mixing step as itself. ~62%.
	Inv = math.Pow(Phi, -1) // 0.61803...

	// Inv2 (Φ⁻²): the shadow base — the leak each channel receives from
	// its conjugate at depth 0. ~38%.
	Inv2 = math.Pow(Phi, -2) // 0.38196...
)

// Alpha is the fine-structure visibility cutoff. The demo surfaces use
// it as the default waterline below which a pair counts as virtual.
const Alpha = 1 / 137.035999084

// CrossingDepth estimates how many steps a cascade of the given starting
// amplitude survives before dropping below threshold, assuming pure 1/Φ
// decay per step. The real cascade decays slower while the shadow term
// is still large, so this is a lower bound on the observed depth.
func CrossingDepth(amplitude, threshold float64) float64 {
	return math.Log(amplitude/threshold) / math.Log(Phi)
}
