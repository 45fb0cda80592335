// Package cmd implements the CLI commands for pdfpress using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "pdfpress",
	Short: "pdfpress — merge PDF files and shrink them toward a target size",
	Long: `pdfpress merges multiple PDF files into one document and optionally
compresses a PDF toward a target size by rasterizing its pages.

Usage:
  pdfpress merge <input.pdf>... [flags]
  pdfpress compress <input.pdf> [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// setupLogging routes slog to stderr so progress output on stdout
// stays clean.
func setupLogging() {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
