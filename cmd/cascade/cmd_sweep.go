package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/phi-cascade/internal/cascade"
	"github.com/talgya/phi-cascade/internal/field"
)

var sweepFlags struct {
	config    string
	count     int
	seed      int64
	amplitude float64
	workers   int
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Expand a noise-generated population of pairs in parallel",
	Long: `Sweep generates a field of initial pairs from seeded simplex noise,
expands every one of them concurrently, and summarizes where the
cascades ended up. Sequences are fully independent, so worker count
affects speed only, never the report.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepFlags.config, "config", "", "Path to YAML config file")
	f.IntVar(&sweepFlags.count, "count", 256, "Number of initial pairs")
	f.Int64Var(&sweepFlags.seed, "seed", 0, "Noise seed (0 = random)")
	f.Float64Var(&sweepFlags.amplitude, "amplitude", 1.0, "Peak per-channel amplitude")
	f.IntVar(&sweepFlags.workers, "workers", 8, "Concurrent expansions")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sweepFlags.config)
	if err != nil {
		return err
	}

	gen := field.DefaultGenConfig()
	gen.Count = sweepFlags.count
	gen.Seed = sweepFlags.seed
	gen.Amplitude = sweepFlags.amplitude
	initials := field.Generate(gen)

	start := time.Now()
	report, err := cascade.Sweep(cmd.Context(), initials, cfg, sweepFlags.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Round(time.Microsecond)

	visible := len(report.Outcomes) - report.VirtualCount()
	fmt.Printf("run %s: %s pairs swept in %s\n",
		report.RunID, humanize.Comma(int64(len(report.Outcomes))), elapsed)
	fmt.Printf("virtual: %s   still visible at depth bound: %s\n",
		humanize.Comma(int64(report.VirtualCount())), humanize.Comma(int64(visible)))
	fmt.Printf("final depth: min %d   mean %.1f   max %d\n",
		report.MinFinalDepth(), report.MeanFinalDepth(), report.MaxFinalDepth())

	return nil
}
