// Package resolution classifies whether shadow components are
// distinguishable at a given level. Φ controls separation; the window
// controls what an observer can resolve. A window classifies amplitudes
// and never mutates anything else.
// See design doc Section 4.4.
package resolution

import (
	"fmt"
	"math"

	"github.com/talgya/phi-cascade/internal/channel"
	"github.com/talgya/phi-cascade/internal/phi"
)

// Window is the resolution boundary at one level.
type Window struct {
	Level        int
	BaseWidth    float64 // linewidth at level 0, normalized
	ShadowWeight float64 // shadow threshold as a fraction of the linewidth
}

// NewWindow returns the window at the given level with the golden
// defaults: unit base width and a 1/Φ² shadow weight, so the leak
// encoded at a level always starts below that level's resolution.
func NewWindow(level int) (Window, error) {
	if level < 0 {
		return Window{}, fmt.Errorf("resolution window level %d: %w", level, channel.ErrInvalidLevel)
	}
	return Window{Level: level, BaseWidth: 1.0, ShadowWeight: phi.Inv2}, nil
}

// Linewidth is the smallest amplitude resolvable at this level.
func (w Window) Linewidth() float64 {
	return w.BaseWidth / math.Pow(phi.Phi, float64(w.Level))
}

// ShadowThreshold is the floor below which leak components are
// indistinguishable at this level.
func (w Window) ShadowThreshold() float64 {
	return w.Linewidth() * w.ShadowWeight
}

// CanResolve reports whether an amplitude clears the linewidth.
func (w Window) CanResolve(amplitude float64) bool {
	return amplitude >= w.Linewidth()
}

// ShadowVisible reports whether a leak component clears the shadow floor.
func (w Window) ShadowVisible(amplitude float64) bool {
	return amplitude >= w.ShadowThreshold()
}

// ShadowVisible classifies a shadow amplitude at the given level using
// the default window.
func ShadowVisible(level int, shadowAmplitude float64) (bool, error) {
	w, err := NewWindow(level)
	if err != nil {
		return false, err
	}
	return w.ShadowVisible(shadowAmplitude), nil
}
