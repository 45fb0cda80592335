package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func writePDF(t *testing.T, dir, name string, pages int) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCollectInputsRejectsSingleInput(t *testing.T) {
	dir := t.TempDir()
	only := writePDF(t, dir, "only.pdf", 1)

	_, err := collectInputs([]string{only})
	if err == nil {
		t.Fatalf("expected error for a single input")
	}
	if !strings.Contains(err.Error(), "at least two valid PDF files are required") {
		t.Fatalf("error does not state the two-file minimum: %v", err)
	}
}

func TestCollectInputsExcludesInvalidFilesFromEligibility(t *testing.T) {
	dir := t.TempDir()
	good := writePDF(t, dir, "good.pdf", 1)
	broken := writeFile(t, dir, "broken.pdf", []byte("not a pdf at all"))
	note := writeFile(t, dir, "note.txt", []byte("wrong extension"))
	missing := filepath.Join(dir, "missing.pdf")

	// Three of the four args are excluded, leaving one survivor.
	_, err := collectInputs([]string{good, broken, note, missing})
	if err == nil {
		t.Fatalf("expected error when exclusions leave fewer than two inputs")
	}
	if !strings.Contains(err.Error(), "at least two valid PDF files are required") {
		t.Fatalf("error does not state the two-file minimum: %v", err)
	}
	if !strings.Contains(err.Error(), "(got 1)") {
		t.Fatalf("error does not report the survivor count: %v", err)
	}
}

func TestCollectInputsKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writePDF(t, dir, "first.pdf", 2)
	second := writePDF(t, dir, "second.pdf", 1)

	inputs, err := collectInputs([]string{first, second})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(inputs))
	}
	if inputs[0].Name != first || inputs[1].Name != second {
		t.Fatalf("input order = [%s, %s], want [%s, %s]",
			inputs[0].Name, inputs[1].Name, first, second)
	}
}
