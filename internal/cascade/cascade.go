// Package cascade drives the recursive conjugate-channel transform:
// repeated mixing of one pair until it drops below the visibility
// threshold or hits the depth bound.
// See design doc Section 4.
package cascade

import (
	"fmt"

	"github.com/talgya/phi-cascade/internal/channel"
	"github.com/talgya/phi-cascade/internal/phi"
)

// Config holds the cascade parameters. It is an explicit value passed
// into every call — no process-wide state, no import-time singletons.
type Config struct {
	PrimaryWeight       float64 // self contribution per step
	ShadowBase          float64 // conjugate leak at depth 0
	Decay               float64 // geometric shadow decay per depth
	MaxDepth            int     // loop bound on mixing steps
	VisibilityThreshold float64 // total amplitude below which a pair is virtual
}

// DefaultConfig returns the golden reference parameters with a
// working-precision visibility floor.
func DefaultConfig() Config {
	return Config{
		PrimaryWeight:       phi.Inv,
		ShadowBase:          phi.Inv2,
		Decay:               phi.Inv,
		MaxDepth:            64,
		VisibilityThreshold: 1e-9,
	}
}

// AlphaConfig returns the demo parameters: the same golden weights, but
// the fine-structure cutoff as the waterline and a short depth bound.
func AlphaConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxDepth = 20
	cfg.VisibilityThreshold = phi.Alpha
	return cfg
}

// Schedule materializes the weight schedule this Config describes.
func (c Config) Schedule() channel.Schedule {
	return channel.Golden(c.PrimaryWeight, c.ShadowBase, c.Decay)
}

// Expand builds the depth sequence for one initial pair: seq[0] is the
// initial, seq[i+1] = Mix(seq[i]). The loop stops after appending the
// first pair whose total amplitude falls below the threshold — deeper
// detail is not representable — or upon reaching MaxDepth, whichever
// comes first. An initial pair already below the threshold yields the
// single-element sequence; that is not an error.
//
// For fixed inputs the output is bit-identical across runs.
func Expand(initial channel.Pair, cfg Config) ([]channel.Pair, error) {
	if initial.Depth != 0 {
		return nil, fmt.Errorf("expand: initial depth must be 0, got %d: %w", initial.Depth, channel.ErrInvalidLevel)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("expand: max depth %d: %w", cfg.MaxDepth, channel.ErrInvalidLevel)
	}
	if cfg.VisibilityThreshold < 0 {
		return nil, fmt.Errorf("expand: visibility threshold %g: %w", cfg.VisibilityThreshold, channel.ErrInvalidWeight)
	}

	sched := cfg.Schedule()

	seq := make([]channel.Pair, 0, cfg.MaxDepth+1)
	seq = append(seq, initial)

	current := initial
	for current.Depth < cfg.MaxDepth && current.Visible(cfg.VisibilityThreshold) {
		next, err := channel.Mix(current, sched)
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}
		seq = append(seq, next)
		current = next
	}

	return seq, nil
}

// Invert recovers the pair one level shallower from two same-depth
// observations, using the schedule this Config describes.
func Invert(observedPlus, observedMinus float64, depth int, cfg Config) (channel.Pair, error) {
	return channel.Invert(observedPlus, observedMinus, depth, cfg.Schedule())
}
