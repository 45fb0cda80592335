// Package cmd — merge command.
// Validates each input, excludes files that are not readable PDFs, and
// merges the survivors in argument order into a single output file.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pdfpress/core"
	"github.com/gaurav-prasanna/pdfpress/core/merge"
	"github.com/gaurav-prasanna/pdfpress/core/output"
	"github.com/gaurav-prasanna/pdfpress/core/state"
	"github.com/gaurav-prasanna/pdfpress/core/validate"
)

var flagMergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <input.pdf>...",
	Short: "Merge two or more PDF files into one document",
	Long: `Merge copies all pages of each input, in argument order, into a single
output document. Inputs that are not valid PDFs are reported and excluded;
at least two valid inputs are required.

Examples:
  pdfpress merge a.pdf b.pdf
  pdfpress merge chapter*.pdf -o book.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&flagMergeOutput, "output", "o", "", "Output file (default: first input's directory + timestamp)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	machine := &state.Machine{}
	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}
	if err := machine.Apply(state.EventStartMerge); err != nil {
		return err
	}

	// collectInputs already validated each survivor, so skip the
	// second pdfcpu parse inside the merger.
	merger := merge.New()
	merged, err := merger.MergeChecked(inputs, func(current, total int) {
		fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", current, total, inputs[current-1].Name)
	})
	if err != nil {
		_ = machine.Apply(state.EventFail)
		return fmt.Errorf("merge: %w", err)
	}

	writer := output.New()
	outPath := flagMergeOutput
	if outPath == "" {
		outPath = writer.DefaultMergePath(inputs[0].Name)
	}
	if err := writer.Write(outPath, merged); err != nil {
		_ = machine.Apply(state.EventFail)
		return err
	}

	_ = machine.Apply(state.EventFinish)
	fmt.Fprintln(os.Stdout, outPath)
	return nil
}

// collectInputs filters args down to readable PDF inputs, reporting
// and excluding everything else. Fewer than two survivors is an error.
func collectInputs(args []string) ([]core.Input, error) {
	validator := validate.New()

	var inputs []core.Input
	for _, path := range args {
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: not a .pdf file\n", path)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: %v\n", path, err)
			continue
		}
		res := validator.Check(path, data)
		if !res.Valid {
			fmt.Fprintf(os.Stderr, "✗ Skipping %s: %v\n", path, res.Err)
			continue
		}
		slog.Debug("input validated", "file", path, "pages", res.Pages)
		inputs = append(inputs, core.Input{Name: path, Data: data})
	}

	if len(inputs) < 2 {
		return nil, fmt.Errorf("at least two valid PDF files are required (got %d)", len(inputs))
	}
	return inputs, nil
}
