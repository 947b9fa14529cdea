// Command cascade explores the Φ-weighted conjugate-channel transform:
// depth tables, stick charts, resolution windows, and parallel sweeps.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Recursive conjugate-channel transform explorer",
	Long: "cascade expands conjugate pairs through the Φ-weighted mixing operator\n" +
		"and reports which depths stay above the visibility threshold.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(sticksCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.Version = version
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
