// Package field generates populations of initial conjugate pairs from
// layered simplex noise, for sweeping the cascade over varied inputs.
// See design doc Section 3.2.
package field

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/phi-cascade/internal/channel"
)

// GenConfig holds field generation parameters.
type GenConfig struct {
	Count     int     // number of initial pairs
	Seed      int64   // noise seed (0 = random)
	Amplitude float64 // peak per-channel amplitude
	Spacing   float64 // sample spacing along the noise line
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Count:     256,
		Seed:      0,
		Amplitude: 1.0,
		Spacing:   0.35,
	}
}

// SmallTestConfig returns a tiny deterministic field for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Count:     16,
		Seed:      42,
		Amplitude: 1.0,
		Spacing:   0.35,
	}
}

// Generate samples Count depth-0 pairs along a noise line. Two
// independent noise layers supply the plus and minus channels, so the
// channels are uncorrelated but each varies smoothly across the field.
func Generate(cfg GenConfig) []channel.Pair {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Two noise generators for independent channels.
	plusNoise := opensimplex.NewNormalized(seed)
	minusNoise := opensimplex.NewNormalized(seed + 1)

	pairs := make([]channel.Pair, cfg.Count)
	for i := range pairs {
		x := float64(i) * cfg.Spacing

		// Multi-octave noise so the population isn't banded.
		p := octaveNoise(plusNoise, x, 3, 0.4, 0.5)
		m := octaveNoise(minusNoise, x, 3, 0.4, 0.5)

		pairs[i] = channel.Pair{
			Plus:  p * cfg.Amplitude,
			Minus: m * cfg.Amplitude,
			Depth: 0,
		}
	}
	return pairs
}

func octaveNoise(noise opensimplex.Noise, x float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, 0) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
