package channel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/talgya/phi-cascade/internal/channel"
	"github.com/talgya/phi-cascade/internal/phi"
)

func TestMix_EqualWeightsExact(t *testing.T) {
	// 0.5·3 + 0.5·5 = 4 on both channels, no rounding involved.
	got, err := channel.Mix(channel.Pair{Plus: 3, Minus: 5, Depth: 2}, channel.Fixed(0.5, 0.5))
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	want := channel.Pair{Plus: 4, Minus: 4, Depth: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mix mismatch:\n%s", diff)
	}
}

func TestMix_DepthIncrements(t *testing.T) {
	sched := channel.Golden(phi.Inv, phi.Inv2, phi.Inv)
	p := channel.Pair{Plus: 1, Minus: 1, Depth: 0}
	for i := 0; i < 5; i++ {
		next, err := channel.Mix(p, sched)
		if err != nil {
			t.Fatalf("Mix at depth %d: %v", p.Depth, err)
		}
		if next.Depth != p.Depth+1 {
			t.Fatalf("Depth = %d, want %d", next.Depth, p.Depth+1)
		}
		p = next
	}
}

func TestMix_Symmetry(t *testing.T) {
	// With primary == shadow, equal channels stay equal.
	for _, w := range []float64{0, 0.25, 0.5, phi.Inv2} {
		got, err := channel.Mix(channel.Pair{Plus: 0.7, Minus: 0.7, Depth: 1}, channel.Fixed(w, w))
		if err != nil {
			t.Fatalf("Mix with weight %g: %v", w, err)
		}
		if got.Plus != got.Minus {
			t.Errorf("weight %g: Plus = %g, Minus = %g, want equal", w, got.Plus, got.Minus)
		}
	}
}

func TestMix_NegativeWeight(t *testing.T) {
	tests := []struct {
		name            string
		primary, shadow float64
	}{
		{"negative primary", -0.1, 0.3},
		{"negative shadow", 0.6, -0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := channel.Mix(channel.Pair{Plus: 1, Minus: 1}, channel.Fixed(tt.primary, tt.shadow))
			if !errors.Is(err, channel.ErrInvalidWeight) {
				t.Errorf("err = %v, want ErrInvalidWeight", err)
			}
		})
	}
}

func TestMix_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		pair  channel.Pair
		sched channel.Schedule
	}{
		{
			"infinite result",
			channel.Pair{Plus: math.MaxFloat64, Minus: 1},
			channel.Fixed(math.MaxFloat64, 0),
		},
		{
			"nan result",
			channel.Pair{Plus: 0, Minus: 1},
			channel.Fixed(math.Inf(1), 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := channel.Mix(tt.pair, tt.sched)
			if !errors.Is(err, channel.ErrNumericOverflow) {
				t.Errorf("err = %v, want ErrNumericOverflow", err)
			}
		})
	}
}
