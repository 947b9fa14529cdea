package channel

import "errors"

// Error taxonomy for the transform. Every operation is pure, so all of
// these are input-validation failures: nothing is transient, nothing is
// retried, and nothing is recovered locally.
var (
	// ErrInvalidWeight reports a negative primary or shadow weight.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrNumericOverflow reports a non-finite mixing result. A schedule
	// that grows instead of decays is a design bug and gets rejected
	// here rather than clamped and propagated.
	ErrNumericOverflow = errors.New("numeric overflow")

	// ErrSingularSchedule reports an inversion with primary == shadow:
	// channels mixed identically cannot be told apart afterward.
	ErrSingularSchedule = errors.New("singular schedule")

	// ErrDepthUnderflow reports an inversion requested at depth 0 or below.
	ErrDepthUnderflow = errors.New("depth underflow")

	// ErrInvalidLevel reports an out-of-range level or depth argument.
	ErrInvalidLevel = errors.New("invalid level")
)
