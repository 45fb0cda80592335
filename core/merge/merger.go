// Package merge implements the merge pipeline: validate each input,
// then copy all pages, in input order, into a single output document.
package merge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/gaurav-prasanna/pdfpress/core"
	"github.com/gaurav-prasanna/pdfpress/core/validate"
)

// Merger merges raw PDF buffers.
type Merger struct {
	validator *validate.Validator
	conf      *model.Configuration
}

// New creates a Merger.
func New() *Merger {
	return &Merger{
		validator: validate.New(),
		conf:      model.NewDefaultConfiguration(),
	}
}

// Merge validates every input and concatenates their pages in input
// order. The callback receives (i, len(inputs)) after input i has been
// validated. Any failure aborts the whole merge with no partial
// output; the error names the offending input.
func (m *Merger) Merge(inputs []core.Input, cb core.MergeProgressFunc) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no input files", core.ErrValidation)
	}
	for _, in := range inputs {
		if res := m.validator.Check(in.Name, in.Data); !res.Valid {
			return nil, res.Err
		}
	}
	return m.mergeReaders(inputs, cb)
}

// MergeChecked merges inputs the caller has already validated,
// skipping the per-input pdfcpu parse. Malformed inputs surface as a
// merge error instead of a named validation error.
func (m *Merger) MergeChecked(inputs []core.Input, cb core.MergeProgressFunc) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no input files", core.ErrValidation)
	}
	return m.mergeReaders(inputs, cb)
}

func (m *Merger) mergeReaders(inputs []core.Input, cb core.MergeProgressFunc) ([]byte, error) {
	readers := make([]io.ReadSeeker, 0, len(inputs))
	for i, in := range inputs {
		readers = append(readers, bytes.NewReader(in.Data))
		if cb != nil {
			cb(i+1, len(inputs))
		}
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, m.conf); err != nil {
		return nil, fmt.Errorf("merging %d files: %w", len(inputs), err)
	}
	return buf.Bytes(), nil
}
