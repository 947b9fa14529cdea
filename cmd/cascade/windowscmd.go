package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/phi-cascade/internal/resolution"
)

var windowsFlags struct {
	levels int
}

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "Print the resolution window table per level",
	Long: `Windows lists the observable linewidth and the shadow threshold for each
level. The shadow threshold sits 1/Φ² below the linewidth, so the leak
encoded at a level is always below that level's own resolution.`,
	Args: cobra.NoArgs,
	RunE: runWindows,
}

func init() {
	windowsCmd.Flags().IntVar(&windowsFlags.levels, "levels", 8, "Number of levels to print")
}

func runWindows(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-8s %15s %18s %10s\n", "level", "linewidth", "shadow threshold", "ratio")
	fmt.Println("------------------------------------------------------")

	for level := 0; level < windowsFlags.levels; level++ {
		w, err := resolution.NewWindow(level)
		if err != nil {
			return err
		}
		fmt.Printf("L%-7d %15.6f %18.6f %10.3f\n",
			level, w.Linewidth(), w.ShadowThreshold(), w.Linewidth()/w.ShadowThreshold())
	}

	return nil
}
