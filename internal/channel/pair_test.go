package channel_test

import (
	"math"
	"testing"

	"github.com/talgya/phi-cascade/internal/channel"
	"github.com/talgya/phi-cascade/internal/phi"
)

func TestTotalAmplitude(t *testing.T) {
	tests := []struct {
		name string
		pair channel.Pair
		want float64
	}{
		{"unit pair", channel.Pair{Plus: 1, Minus: 1}, 2},
		{"mixed signs", channel.Pair{Plus: -0.5, Minus: 1.5}, 2},
		{"zero", channel.Pair{}, 0},
		{"both negative", channel.Pair{Plus: -3, Minus: -4}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pair.TotalAmplitude(); got != tt.want {
				t.Errorf("TotalAmplitude() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestPolarityRatio(t *testing.T) {
	p := channel.Pair{Plus: 3, Minus: -2}
	if got := p.PolarityRatio(); got != 1.5 {
		t.Errorf("PolarityRatio() = %g, want 1.5", got)
	}

	zeroMinus := channel.Pair{Plus: 1, Minus: 0}
	if got := zeroMinus.PolarityRatio(); !math.IsInf(got, 1) {
		t.Errorf("PolarityRatio() with zero minus = %g, want +Inf", got)
	}
}

func TestBalanced(t *testing.T) {
	golden := channel.Pair{Plus: phi.Phi, Minus: 1}
	if !golden.Balanced() {
		t.Error("pair at ratio Φ should be balanced")
	}

	even := channel.Pair{Plus: 1, Minus: 1}
	if even.Balanced() {
		t.Error("pair at ratio 1 should not be balanced")
	}

	oneSided := channel.Pair{Plus: 1, Minus: 0}
	if oneSided.Balanced() {
		t.Error("pair with infinite ratio should not be balanced")
	}
}

func TestVisible(t *testing.T) {
	p := channel.Pair{Plus: 0.004, Minus: 0.004}
	if !p.Visible(0.008) {
		t.Error("pair exactly at threshold should be visible")
	}
	if p.Visible(0.0081) {
		t.Error("pair below threshold should be virtual")
	}
}
