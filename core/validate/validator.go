// Package validate implements input-file validation for pdfpress.
// A file must carry the %PDF- header and be readable by pdfcpu to be
// eligible for merging or compression.
package validate

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/gaurav-prasanna/pdfpress/core"
)

var pdfHeader = []byte("%PDF-")

// Result describes one validated input. When Valid is false, Pages is
// zero and Err explains the rejection.
type Result struct {
	Name  string
	Valid bool
	Pages int
	Err   error
}

// Validator checks raw PDF buffers.
type Validator struct {
	conf *model.Configuration
}

// New creates a Validator with pdfcpu's default configuration.
func New() *Validator {
	return &Validator{conf: model.NewDefaultConfiguration()}
}

// Check validates one named buffer. It never returns an error itself;
// rejection is reported through the Result.
func (v *Validator) Check(name string, data []byte) Result {
	if len(data) == 0 {
		return Result{Name: name, Err: fmt.Errorf("%w: %s: empty file", core.ErrValidation, name)}
	}
	if !bytes.HasPrefix(data, pdfHeader) {
		return Result{Name: name, Err: fmt.Errorf("%w: %s: missing %%PDF header", core.ErrValidation, name)}
	}

	pages, err := api.PageCount(bytes.NewReader(data), v.conf)
	if err != nil {
		return Result{Name: name, Err: fmt.Errorf("%w: %s: %v", core.ErrValidation, name, err)}
	}

	return Result{Name: name, Valid: true, Pages: pages}
}
