package core

import "errors"

// Error taxonomy for the pipelines. Hard failures wrap one of these
// sentinels with page or file context attached; callers discriminate
// with errors.Is. Exhausting the compression attempt budget is NOT an
// error: the search returns its last attempt's output instead.
var (
	// ErrValidation marks malformed or missing input files and
	// out-of-range compression parameters.
	ErrValidation = errors.New("validation failed")

	// ErrRender marks an unavailable rendering surface or a page that
	// rasterized to empty output.
	ErrRender = errors.New("render failed")

	// ErrEmbed marks a page image whose encoding is not one of the
	// accepted raster formats.
	ErrEmbed = errors.New("embed failed")
)
