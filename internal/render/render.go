// Package render turns a sheet set into the printable PDF document: one page
// per sheet, title and header at the top, the statements in a bordered grid
// below.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/eventforge/bingo/internal/fileutil"
	"github.com/eventforge/bingo/internal/layout"
	"github.com/eventforge/bingo/internal/pool"
	"github.com/eventforge/bingo/internal/sampler"
)

// ErrRender indicates the output document could not be produced or written.
var ErrRender = errors.New("render: output failed")

const (
	titleRowH = 12.0
	headerH   = 5.5
	footerH   = 8.0
	cellPad   = 1.5
)

// Renderer lays out sheets according to a validated layout configuration.
type Renderer struct {
	cfg *layout.Config
}

// New returns a Renderer for cfg. cfg must have passed Validate.
func New(cfg *layout.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render writes the PDF document for set to w.
func (r *Renderer) Render(w io.Writer, set sampler.SheetSet, p *pool.Pool) error {
	pdf := fpdf.New(r.cfg.Orientation, "mm", r.cfg.PageSize, "")
	margin := r.cfg.MarginMM
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*margin

	for i, sheet := range set {
		pdf.AddPage()

		pdf.SetFont(r.cfg.FontFamily, "B", r.cfg.TitlePt)
		pdf.CellFormat(usableW, titleRowH, p.Title, "", 1, "C", false, 0, "")

		pdf.SetFont(r.cfg.FontFamily, "", r.cfg.HeaderPt)
		pdf.MultiCell(usableW, headerH, p.Header, "", "C", false)
		pdf.Ln(3)

		gridTop := pdf.GetY()
		gridH := pageH - margin - footerH - gridTop
		cellW := usableW / float64(r.cfg.Cols)
		cellH := gridH / float64(r.cfg.Rows)

		pdf.SetFont(r.cfg.FontFamily, "", r.cfg.CellPt)
		for row, statements := range sheet.Grid(r.cfg.Rows, r.cfg.Cols) {
			for col, statement := range statements {
				x := margin + float64(col)*cellW
				y := gridTop + float64(row)*cellH
				r.drawCell(pdf, x, y, cellW, cellH, statement)
			}
		}

		pdf.SetFont(r.cfg.FontFamily, "I", 8)
		pdf.SetXY(margin, pageH-margin-footerH)
		pdf.CellFormat(usableW, footerH, fmt.Sprintf("Sheet %d of %d", i+1, len(set)), "", 0, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// RenderFile renders the document to path through the atomic writer, so a
// failed render leaves no partial artifact behind.
func (r *Renderer) RenderFile(path string, set sampler.SheetSet, p *pool.Pool) error {
	err := fileutil.WriteAtomic(path, 0644, func(w io.Writer) error {
		return r.Render(w, set, p)
	})
	if err != nil && !errors.Is(err, ErrRender) {
		return fmt.Errorf("%w: %s: %v", ErrRender, path, err)
	}
	return err
}

// drawCell draws one bordered grid cell with the statement wrapped and
// vertically centred. Lines that cannot fit the cell height are dropped
// rather than bleeding into the neighbour below.
func (r *Renderer) drawCell(pdf *fpdf.Fpdf, x, y, w, h float64, statement string) {
	pdf.Rect(x, y, w, h, "D")

	lineH := r.cfg.CellPt * 0.45 // pt to mm with ~1.3 line spacing
	lines := pdf.SplitText(statement, w-2*cellPad)
	maxLines := int((h - 2*cellPad) / lineH)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	ty := y + (h-float64(len(lines))*lineH)/2
	for _, line := range lines {
		pdf.SetXY(x+cellPad, ty)
		pdf.CellFormat(w-2*cellPad, lineH, line, "", 0, "C", false, 0, "")
		ty += lineH
	}
}
