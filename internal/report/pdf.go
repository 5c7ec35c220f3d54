package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants, in millimeters on an A4 portrait page.
const (
	pageMargin = 10.0
	lineHeight = 7.0
	fontSize   = 10.0
	fontName   = "Helvetica"
)

// docWriter drives a PDF with a running vertical cursor and manual
// page breaks. When a break happens mid-group the active group header
// is repeated with a "(cont.)" suffix.
type docWriter struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	y     float64
	pageW float64
	pageH float64

	groupHeader string
}

func newDocWriter() *docWriter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(fontName, "", fontSize)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	return &docWriter{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		y:     pageMargin,
		pageW: w,
		pageH: h,
	}
}

func (d *docWriter) printable() float64 {
	return d.pageW - 2*pageMargin
}

// ensure breaks the page if the next block of the given height would
// run past the printable area. Reports whether a break happened.
func (d *docWriter) ensure(height float64) bool {
	if d.y+height <= d.pageH-pageMargin {
		return false
	}
	d.pdf.AddPage()
	d.y = pageMargin
	return true
}

// wrap splits text into lines that fit the given width.
func (d *docWriter) wrap(text string, width float64) []string {
	encoded := d.tr(text)
	split := d.pdf.SplitLines([]byte(encoded), width)
	lines := make([]string, len(split))
	for i, b := range split {
		lines[i] = string(b)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// title writes the document's title line.
func (d *docWriter) title(text string) {
	d.pdf.SetFont(fontName, "", fontSize)
	d.pdf.Text(pageMargin, d.y+lineHeight/2, d.tr(text))
	d.y += lineHeight * 2
}

// header starts a new group: bold line that becomes the repeated
// header for continuation pages. A fresh header after a break is not
// a continuation, so the suffix is not added here.
func (d *docWriter) header(text string) {
	d.groupHeader = text
	d.ensure(lineHeight)
	d.writeHeaderLine(text)
}

func (d *docWriter) writeHeaderLine(text string) {
	d.pdf.SetFont(fontName, "B", fontSize)
	d.pdf.Text(pageMargin, d.y+lineHeight/2, d.tr(text))
	d.pdf.SetFont(fontName, "", fontSize)
	d.y += lineHeight
}

// line writes one word-wrapped body line, breaking pages between
// wrapped segments and repeating the group header after a break.
func (d *docWriter) line(text string) {
	for _, seg := range d.wrap(text, d.printable()) {
		if d.ensure(lineHeight) && d.groupHeader != "" {
			d.writeHeaderLine(d.groupHeader + " (cont.)")
		}
		d.pdf.Text(pageMargin, d.y+lineHeight/2, seg)
		d.y += lineHeight
	}
}

// row writes parallel columns at fixed x-offsets; the tallest column
// determines the vertical advance. A row never splits across pages.
func (d *docWriter) row(cols []string, xs []float64, widths []float64) {
	wrapped := make([][]string, len(cols))
	rows := 0
	for i, col := range cols {
		wrapped[i] = d.wrap(col, widths[i])
		if len(wrapped[i]) > rows {
			rows = len(wrapped[i])
		}
	}

	height := float64(rows) * lineHeight
	if d.ensure(height) && d.groupHeader != "" {
		d.writeHeaderLine(d.groupHeader + " (cont.)")
	}

	for i, lines := range wrapped {
		y := d.y
		for _, seg := range lines {
			d.pdf.Text(xs[i], y+lineHeight/2, seg)
			y += lineHeight
		}
	}
	d.y += height
}

// endGroup closes the active group so later breaks stop repeating its
// header.
func (d *docWriter) endGroup() {
	d.groupHeader = ""
}

// gap advances the cursor without writing.
func (d *docWriter) gap() {
	d.y += lineHeight / 2
}

func (d *docWriter) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
