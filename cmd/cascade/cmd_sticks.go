package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/phi-cascade/internal/cascade"
	"github.com/talgya/phi-cascade/internal/channel"
)

var sticksFlags struct {
	plus   float64
	minus  float64
	config string
}

var sticksCmd = &cobra.Command{
	Use:   "sticks",
	Short: "Draw the cascade as sticks above the waterline",
	Long: `Sticks renders each depth's total amplitude as a bar. Depths above the
visibility threshold are sticks poking out of the water; depths below
it are virtual, carried but unobservable.`,
	Args: cobra.NoArgs,
	RunE: runSticks,
}

func init() {
	f := sticksCmd.Flags()
	f.Float64Var(&sticksFlags.plus, "plus", 1.0, "Initial plus-channel amplitude")
	f.Float64Var(&sticksFlags.minus, "minus", 1.0, "Initial minus-channel amplitude")
	f.StringVar(&sticksFlags.config, "config", "", "Path to YAML config file")
}

const maxBarWidth = 50

func runSticks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sticksFlags.config)
	if err != nil {
		return err
	}

	initial := channel.Pair{Plus: sticksFlags.plus, Minus: sticksFlags.minus}
	seq, err := cascade.Expand(initial, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("waterline = %.6f\n\n", cfg.VisibilityThreshold)

	top := seq[0].TotalAmplitude()
	for _, p := range seq {
		width := 0
		if top > 0 {
			width = int(p.TotalAmplitude() / top * maxBarWidth)
		}
		bar := strings.Repeat("█", width)

		status := "VISIBLE (stick)"
		if !p.Visible(cfg.VisibilityThreshold) {
			status = "virtual (underwater)"
		}
		fmt.Printf("  z=%2d: %-*s %.6f  %s\n", p.Depth, maxBarWidth, bar, p.TotalAmplitude(), status)
	}

	return nil
}
