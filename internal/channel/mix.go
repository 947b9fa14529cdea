package channel

import (
	"fmt"
	"math"
)

// Mix applies one mixing step: each output channel is mostly itself plus
// a shadow of its conjugate, one depth deeper.
//
//	newPlus  = primary·Plus  + shadow·Minus
//	newMinus = primary·Minus + shadow·Plus
//
// Mix is a pure function of its inputs. When primary == shadow the
// operator is symmetric: equal channels stay equal.
func Mix(p Pair, sched Schedule) (Pair, error) {
	w, s := sched(p.Depth)
	if w < 0 || s < 0 {
		return Pair{}, fmt.Errorf("mix at depth %d: primary=%g shadow=%g: %w", p.Depth, w, s, ErrInvalidWeight)
	}

	next := Pair{
		Plus:  w*p.Plus + s*p.Minus,
		Minus: w*p.Minus + s*p.Plus,
		Depth: p.Depth + 1,
	}

	// A schedule that grows instead of decays surfaces here.
	if !finite(next.Plus) || !finite(next.Minus) {
		return Pair{}, fmt.Errorf("mix at depth %d: plus=%g minus=%g: %w", p.Depth, next.Plus, next.Minus, ErrNumericOverflow)
	}

	return next, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
