// Package compress implements the compression pipeline: rasterize
// every page of a document to a lossy image and rebuild a new PDF with
// one full-page image per original page, plus the target-size search
// that drives repeated passes.
package compress

import (
	"fmt"

	"github.com/gaurav-prasanna/pdfpress/core"
	"github.com/gaurav-prasanna/pdfpress/core/raster"
	"github.com/gaurav-prasanna/pdfpress/core/rebuild"
)

// Compressor runs single compression passes.
type Compressor struct {
	rebuilder *rebuild.Rebuilder
}

// New creates a Compressor.
func New() *Compressor {
	return &Compressor{rebuilder: rebuild.New()}
}

// Compress runs one full pass over the document with fixed parameters.
// Pages are processed strictly in order; one rendering event is
// emitted per page, then a building event before serialization. The
// first per-page failure aborts the pass with the 1-based page number
// attached and no partial output.
func (c *Compressor) Compress(data []byte, p core.Params, cb core.ProgressFunc) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r, err := raster.Open(data)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	total := r.PageCount()
	images := make([]raster.PageImage, 0, total)
	for i := 0; i < total; i++ {
		cb.Emit(core.Progress{Stage: core.StageRendering, Current: i + 1, Total: total})

		img, err := r.RenderPage(i, p)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		images = append(images, img)
	}

	cb.Emit(core.Progress{Stage: core.StageBuilding, Current: total, Total: total})
	return c.rebuilder.Build(images)
}
