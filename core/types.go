// Package core defines the shared types and contracts for the pdfpress
// pipelines. Each pipeline stage lives in its own subpackage and
// communicates through these types.
package core

import "fmt"

// Input is one named raw PDF handed to a pipeline. The Name is only
// used for error attribution and output path derivation.
type Input struct {
	Name string
	Data []byte
}

// Params are the two knobs of a compression pass.
// Quality controls lossy-image fidelity, in (0, 1].
// Scale controls rasterization resolution, in (0, 2]; output page
// dimensions grow proportionally with it.
type Params struct {
	Quality float64
	Scale   float64
}

// Validate checks that both parameters are inside their legal ranges.
func (p Params) Validate() error {
	if p.Quality <= 0 || p.Quality > 1 {
		return fmt.Errorf("%w: quality %.3f outside (0, 1]", ErrValidation, p.Quality)
	}
	if p.Scale <= 0 || p.Scale > 2 {
		return fmt.Errorf("%w: scale %.3f outside (0, 2]", ErrValidation, p.Scale)
	}
	return nil
}

// Stage identifies which phase of a compression pass a Progress event
// belongs to.
type Stage string

const (
	StageRendering   Stage = "rendering"
	StageCompressing Stage = "compressing"
	StageBuilding    Stage = "building"
)

// Progress is an informational event emitted during compression.
// It is never consulted for control flow.
//
// For StageRendering, Current/Total count pages. For StageCompressing,
// Current/Total count search attempts. SizeMB carries the most
// recently measured output size in megabytes; zero means unknown.
type Progress struct {
	Stage   Stage
	Current int
	Total   int
	SizeMB  float64
}

// ProgressFunc observes Progress events. A nil ProgressFunc is valid
// everywhere one is accepted.
type ProgressFunc func(Progress)

// Emit invokes the callback if it is non-nil.
func (f ProgressFunc) Emit(p Progress) {
	if f != nil {
		f(p)
	}
}

// MergeProgressFunc observes merge progress as (current, total) over
// the input list. A nil callback is valid.
type MergeProgressFunc func(current, total int)

// BytesToMB converts a byte count to megabytes.
func BytesToMB(n int) float64 {
	return float64(n) / (1024 * 1024)
}
