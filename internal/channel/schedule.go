package channel

import "math"

// Schedule yields the mixing weights at a given depth: primary is the
// self contribution, shadow the leak received from the conjugate.
// Schedules with primary + shadow <= 1 at every depth keep the cascade
// bounded; growing schedules are rejected by Mix when they overflow.
type Schedule func(depth int) (primary, shadow float64)

// Golden returns the reference schedule: a constant primary weight and a
// shadow that decays geometrically with depth (deeper = less leakage).
func Golden(primary, shadowBase, decay float64) Schedule {
	return func(depth int) (float64, float64) {
		return primary, shadowBase * math.Pow(decay, float64(depth))
	}
}

// Fixed returns a depth-independent schedule.
func Fixed(primary, shadow float64) Schedule {
	return func(int) (float64, float64) {
		return primary, shadow
	}
}
