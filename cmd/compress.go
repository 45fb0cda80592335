// Package cmd — compress command.
// Runs either a single fixed-parameter compression pass or the
// bounded target-size search over the input document.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pdfpress/core"
	"github.com/gaurav-prasanna/pdfpress/core/compress"
	"github.com/gaurav-prasanna/pdfpress/core/output"
	"github.com/gaurav-prasanna/pdfpress/core/state"
	"github.com/gaurav-prasanna/pdfpress/core/validate"
)

var (
	flagCompressOutput string
	flagQuality        float64
	flagScale          float64
	flagTargetMB       float64
)

var compressCmd = &cobra.Command{
	Use:   "compress <input.pdf>",
	Short: "Rasterize a PDF's pages to shrink its file size",
	Long: `Compress rebuilds the document with one lossy image per page. With
--target it searches for parameters that bring the result under the
given size in megabytes (best effort, at most five attempts); otherwise
it runs one pass with --quality and --scale.

Examples:
  pdfpress compress big.pdf --target 10
  pdfpress compress big.pdf --quality 0.5 --scale 0.75 -o small.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)
	compressCmd.Flags().StringVarP(&flagCompressOutput, "output", "o", "", "Output file (default: input name + _compressed)")
	compressCmd.Flags().Float64Var(&flagQuality, "quality", 0.7, "Image quality in (0,1]")
	compressCmd.Flags().Float64Var(&flagScale, "scale", 0.9, "Rasterization scale in (0,2]")
	compressCmd.Flags().Float64Var(&flagTargetMB, "target", 0, "Target size in megabytes (enables the search)")
}

func runCompress(cmd *cobra.Command, args []string) error {
	inPath := args[0]
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}
	if res := validate.New().Check(inPath, data); !res.Valid {
		return res.Err
	}

	machine := &state.Machine{}
	if err := machine.Apply(state.EventStartCompress); err != nil {
		return err
	}

	var result []byte
	if flagTargetMB > 0 {
		result, err = compress.CompressToTarget(data, flagTargetMB, printProgress)
	} else {
		params := core.Params{Quality: flagQuality, Scale: flagScale}
		result, err = compress.New().Compress(data, params, printProgress)
	}
	if err != nil {
		_ = machine.Apply(state.EventFail)
		return fmt.Errorf("compress: %w", err)
	}

	writer := output.New()
	outPath := flagCompressOutput
	if outPath == "" {
		outPath = writer.DefaultCompressPath(inPath)
	}
	if err := writer.Write(outPath, result); err != nil {
		_ = machine.Apply(state.EventFail)
		return err
	}

	_ = machine.Apply(state.EventFinish)
	slog.Debug("compressed", "in", len(data), "out", len(result))
	fmt.Fprintf(os.Stdout, "✓ Written: %s (%.2f MB → %.2f MB)\n",
		outPath, core.BytesToMB(len(data)), core.BytesToMB(len(result)))
	return nil
}

// printProgress narrates compression progress on stdout.
func printProgress(p core.Progress) {
	switch p.Stage {
	case core.StageRendering:
		fmt.Fprintf(os.Stdout, "  rendering page %d/%d\n", p.Current, p.Total)
	case core.StageCompressing:
		fmt.Fprintf(os.Stdout, "attempt %d/%d (current size %.2f MB)\n", p.Current, p.Total, p.SizeMB)
	case core.StageBuilding:
		fmt.Fprintln(os.Stdout, "  building document")
	}
}
