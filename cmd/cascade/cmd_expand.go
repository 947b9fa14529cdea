package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/talgya/phi-cascade/internal/cascade"
	"github.com/talgya/phi-cascade/internal/channel"
	"github.com/talgya/phi-cascade/internal/phi"
)

var expandFlags struct {
	plus      float64
	minus     float64
	config    string
	maxDepth  int
	threshold float64
}

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand one conjugate pair and print the depth table",
	Long: `Expand applies the mixing operator repeatedly to one initial pair and
prints one row per depth until the pair drops below the visibility
threshold or the depth bound is reached.

Usage:
  cascade expand                          # Unit pair, golden weights, alpha waterline
  cascade expand --plus=1 --minus=0.2     # Unbalanced pair
  cascade expand --config=cascade.yaml    # Parameters from file`,
	Args: cobra.NoArgs,
	RunE: runExpand,
}

func init() {
	f := expandCmd.Flags()
	f.Float64Var(&expandFlags.plus, "plus", 1.0, "Initial plus-channel amplitude")
	f.Float64Var(&expandFlags.minus, "minus", 1.0, "Initial minus-channel amplitude")
	f.StringVar(&expandFlags.config, "config", "", "Path to YAML config file")
	f.IntVar(&expandFlags.maxDepth, "max-depth", 0, "Override the depth bound (> 0)")
	f.Float64Var(&expandFlags.threshold, "threshold", 0, "Override the visibility threshold (> 0)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(expandFlags.config)
	if err != nil {
		return err
	}
	if expandFlags.maxDepth > 0 {
		cfg.MaxDepth = expandFlags.maxDepth
	}
	if expandFlags.threshold > 0 {
		cfg.VisibilityThreshold = expandFlags.threshold
	}

	initial := channel.Pair{Plus: expandFlags.plus, Minus: expandFlags.minus}
	seq, err := cascade.Expand(initial, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %12s %12s %12s %10s\n", "depth", "plus", "minus", "total", "status")
	fmt.Println("--------------------------------------------------------------")
	for _, p := range seq {
		status := "visible"
		if !p.Visible(cfg.VisibilityThreshold) {
			status = "virtual"
		}
		fmt.Printf("%-8d %12.6f %12.6f %12.6f %10s\n",
			p.Depth, p.Plus, p.Minus, p.TotalAmplitude(), status)
	}

	last := seq[len(seq)-1]
	if last.Visible(cfg.VisibilityThreshold) {
		slog.Info("depth bound reached above threshold",
			"depth", last.Depth,
			"total", last.TotalAmplitude(),
		)
	} else {
		slog.Info("visibility cutoff reached",
			"depth", last.Depth,
			"threshold", cfg.VisibilityThreshold,
			"pure_decay_estimate", fmt.Sprintf("%.1f", phi.CrossingDepth(initial.TotalAmplitude(), cfg.VisibilityThreshold)),
		)
	}
	return nil
}
