// Package output handles output path derivation and file writing for
// pdfpress. Default merge outputs land next to the first input, named
// with a timestamp so repeated runs never clobber each other.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const timestampLayout = "20060102_150405"

// Writer writes result documents to disk.
type Writer struct{}

// New creates a Writer.
func New() *Writer {
	return &Writer{}
}

// DefaultMergePath derives the output path for a merge when the user
// gave none: the first input's directory plus a timestamped name.
func (w *Writer) DefaultMergePath(firstInput string) string {
	dir := filepath.Dir(firstInput)
	name := fmt.Sprintf("merged_%s.pdf", time.Now().Format(timestampLayout))
	return filepath.Join(dir, name)
}

// DefaultCompressPath derives the output path for a compression when
// the user gave none: the input's name with a _compressed suffix.
func (w *Writer) DefaultCompressPath(input string) string {
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + "_compressed" + ext
}

// Write atomically writes data to path: the bytes go to a uniquely
// named temp file in the target directory first, then a rename moves
// it into place so readers never observe a partial document.
func (w *Writer) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
