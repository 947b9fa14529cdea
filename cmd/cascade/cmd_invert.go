package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/phi-cascade/internal/cascade"
)

var invertFlags struct {
	plus   float64
	minus  float64
	depth  int
	config string
}

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Recover the pre-mix pair from both channel observations",
	Long: `Invert solves the mixing step backward: given what each channel alone
perceives at a depth, it reconstructs the pair one level shallower.
Both observations are required; a single channel does not span the
basis.`,
	Args: cobra.NoArgs,
	RunE: runInvert,
}

func init() {
	f := invertCmd.Flags()
	f.Float64Var(&invertFlags.plus, "plus", 0, "Observed plus-channel value")
	f.Float64Var(&invertFlags.minus, "minus", 0, "Observed minus-channel value")
	f.IntVar(&invertFlags.depth, "depth", 1, "Depth of the observations (>= 1)")
	f.StringVar(&invertFlags.config, "config", "", "Path to YAML config file")
}

func runInvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(invertFlags.config)
	if err != nil {
		return err
	}

	pair, err := cascade.Invert(invertFlags.plus, invertFlags.minus, invertFlags.depth, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("recovered %s\n", pair)
	fmt.Printf("total amplitude %.6f, polarity ratio %.4f\n", pair.TotalAmplitude(), pair.PolarityRatio())
	return nil
}
