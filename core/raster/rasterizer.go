// Package raster renders single PDF pages into lossy-encoded images.
// It wraps go-fitz: the document handle doubles as the rendering
// surface and is reused page-to-page within one pass, so a Rasterizer
// must not render two pages concurrently.
package raster

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"

	"github.com/gaurav-prasanna/pdfpress/core"
)

// Pages render at scale × this baseline, matching a 1:1 screen pixel
// density at scale 1.0.
const baseDPI = 96

// PageImage is one rasterized page: an encoded image buffer plus its
// pixel dimensions.
type PageImage struct {
	Data   []byte
	Width  int
	Height int
}

// Rasterizer renders pages of a single open document.
type Rasterizer struct {
	doc *fitz.Document
}

// Open creates a Rasterizer over raw PDF bytes. The caller must Close
// it when the pass is done.
func Open(data []byte) (*Rasterizer, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: opening document: %v", core.ErrRender, err)
	}
	return &Rasterizer{doc: doc}, nil
}

// PageCount reports the number of pages in the open document.
func (r *Rasterizer) PageCount() int {
	return r.doc.NumPage()
}

// RenderPage rasterizes the 0-based page idx at p.Scale × native
// resolution and encodes it as JPEG at p.Quality. Failures carry the
// page index; there is no retry here.
func (r *Rasterizer) RenderPage(idx int, p core.Params) (PageImage, error) {
	if err := p.Validate(); err != nil {
		return PageImage{}, err
	}

	img, err := r.doc.ImageDPI(idx, baseDPI*p.Scale)
	if err != nil {
		return PageImage{}, fmt.Errorf("%w: page %d: %v", core.ErrRender, idx, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return PageImage{}, fmt.Errorf("%w: page %d: degenerate render", core.ErrRender, idx)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: int(p.Quality * 100)}
	if err := jpeg.Encode(&buf, img, opts); err != nil {
		return PageImage{}, fmt.Errorf("%w: page %d: encoding: %v", core.ErrRender, idx, err)
	}
	if buf.Len() == 0 {
		return PageImage{}, fmt.Errorf("%w: page %d: empty output", core.ErrRender, idx)
	}

	return PageImage{
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// Close releases the underlying document.
func (r *Rasterizer) Close() error {
	return r.doc.Close()
}
