package channel

import "fmt"

// Invert recovers the pair one level shallower from what each channel
// alone perceives at the given depth. Both observations are required: a
// single channel does not span the basis, which is the whole point of
// the encryption reading of the transform.
//
// Given the forward equations at depth-1 weights (w, s)
//
//	observedPlus  = w·x + s·y
//	observedMinus = w·y + s·x
//
// adding and subtracting them decouples the 2×2 system. Reconstruction
// is exact up to IEEE-754 rounding; conditioning degrades as w → s.
func Invert(observedPlus, observedMinus float64, depth int, sched Schedule) (Pair, error) {
	if depth <= 0 {
		return Pair{}, fmt.Errorf("invert at depth %d: %w", depth, ErrDepthUnderflow)
	}

	w, s := sched(depth - 1)
	if w < 0 || s < 0 {
		return Pair{}, fmt.Errorf("invert at depth %d: primary=%g shadow=%g: %w", depth, w, s, ErrInvalidWeight)
	}
	if w == s {
		return Pair{}, fmt.Errorf("invert at depth %d: primary == shadow == %g: %w", depth, w, ErrSingularSchedule)
	}

	sum := (observedPlus + observedMinus) / (w + s)
	diff := (observedPlus - observedMinus) / (w - s)

	return Pair{
		Plus:  (sum + diff) / 2,
		Minus: (sum - diff) / 2,
		Depth: depth - 1,
	}, nil
}
