package compress

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/gaurav-prasanna/pdfpress/core"
)

func makePDF(t *testing.T, pages int) []byte {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Cell(40, 10, fmt.Sprintf("page %d", i+1))
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	return buf.Bytes()
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("counting pages: %v", err)
	}
	return n
}

func TestCompressPreservesPageCountAndOrder(t *testing.T) {
	in := makePDF(t, 3)

	var events []core.Progress
	out, err := New().Compress(in, core.Params{Quality: 0.7, Scale: 0.9}, func(p core.Progress) {
		events = append(events, p)
	})
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
	if got := pageCount(t, out); got != 3 {
		t.Fatalf("page count = %d, want 3", got)
	}

	// One rendering event per page, in order, then one building event.
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	for i := 0; i < 3; i++ {
		ev := events[i]
		if ev.Stage != core.StageRendering || ev.Current != i+1 || ev.Total != 3 {
			t.Fatalf("event %d = %+v, want rendering %d/3", i, ev, i+1)
		}
	}
	if events[3].Stage != core.StageBuilding {
		t.Fatalf("final event = %+v, want building", events[3])
	}
}

func pageDims(t *testing.T, data []byte) []types.Dim {
	t.Helper()
	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("reading context: %v", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		t.Fatalf("validating context: %v", err)
	}
	dims, err := ctx.PageDims()
	if err != nil {
		t.Fatalf("page dims: %v", err)
	}
	return dims
}

func TestCompressOutputPagesMatchInputOrder(t *testing.T) {
	// Pages with unique dimensions. Rasterizing at scale s and
	// rebuilding with the 0.75 px-to-pt factor reproduces each page
	// at s times its original size, so output page i must track
	// input page i.
	in := [][2]float64{{200, 300}, {400, 250}, {300, 300}}
	pdf := gofpdf.New("P", "pt", "A4", "")
	for _, d := range in {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: d[0], Ht: d[1]})
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	const scale = 0.5
	out, err := New().Compress(buf.Bytes(), core.Params{Quality: 0.7, Scale: scale}, nil)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}

	dims := pageDims(t, out)
	if len(dims) != len(in) {
		t.Fatalf("page count = %d, want %d", len(dims), len(in))
	}
	for i, d := range dims {
		wantW, wantH := in[i][0]*scale, in[i][1]*scale
		if math.Abs(d.Width-wantW) > 1.5 || math.Abs(d.Height-wantH) > 1.5 {
			t.Fatalf("page %d dims = %.1fx%.1f, want %.1fx%.1f",
				i+1, d.Width, d.Height, wantW, wantH)
		}
	}
}

func TestCompressRejectsBadParams(t *testing.T) {
	in := makePDF(t, 1)
	cases := []core.Params{
		{Quality: 0, Scale: 0.9},
		{Quality: 1.5, Scale: 0.9},
		{Quality: 0.7, Scale: 0},
		{Quality: 0.7, Scale: 2.5},
	}
	for _, p := range cases {
		if _, err := New().Compress(in, p, nil); !errors.Is(err, core.ErrValidation) {
			t.Fatalf("params %+v: err = %v, want ErrValidation", p, err)
		}
	}
}

func TestCompressRejectsGarbageInput(t *testing.T) {
	_, err := New().Compress([]byte("not a pdf"), core.Params{Quality: 0.7, Scale: 0.9}, nil)
	if !errors.Is(err, core.ErrRender) {
		t.Fatalf("err = %v, want ErrRender", err)
	}
}

func TestCompressToTargetNoOpWhenSmallEnough(t *testing.T) {
	in := makePDF(t, 1)
	out, err := CompressToTarget(in, 100, nil)
	if err != nil {
		t.Fatalf("compress to target: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("expected input returned byte-for-byte")
	}
}
