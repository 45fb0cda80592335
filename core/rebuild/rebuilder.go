// Package rebuild constructs a PDF from an ordered sequence of page
// images using gofpdf. Each image becomes exactly one page, sized from
// the image's pixel dimensions, with the image drawn to fill the page.
package rebuild

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pdfpress/core"
	"github.com/gaurav-prasanna/pdfpress/core/raster"
)

// pxToPt is the 96-dpi-to-72-dpi correction applied when converting
// pixel dimensions to page-coordinate points.
const pxToPt = 0.75

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Rebuilder builds image-per-page documents.
type Rebuilder struct{}

// New creates a Rebuilder.
func New() *Rebuilder {
	return &Rebuilder{}
}

// Build produces one PDF page per image, in order. Output page count
// equals len(images). Only JPEG and PNG images are accepted.
func (r *Rebuilder) Build(images []raster.PageImage) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no page images", core.ErrEmbed)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, img := range images {
		format, err := sniffFormat(img.Data)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}

		w := float64(img.Width) * pxToPt
		h := float64(img.Height) * pxToPt
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})

		name := fmt.Sprintf("page_%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: format}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
		pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: serializing: %v", core.ErrEmbed, err)
	}
	return buf.Bytes(), nil
}

// sniffFormat identifies the image encoding from its magic bytes.
func sniffFormat(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "JPEG", nil
	case bytes.HasPrefix(data, pngMagic):
		return "PNG", nil
	default:
		return "", fmt.Errorf("%w: unrecognized image encoding", core.ErrEmbed)
	}
}
