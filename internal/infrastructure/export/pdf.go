package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sirh-molino/hr-api/internal/core/export"
)

// PDFGenerator renders an export table as a striped-row PDF document with a
// title and generation date header.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Generate(table export.Table, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title in the system's primary red.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(211, 47, 47)
	pdf.CellFormat(0, 10, translate(table.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	generated := fmt.Sprintf("Generado: %s", generatedAt.UTC().Format("2006-01-02"))
	pdf.CellFormat(0, 8, generated, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(table.Headers))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 47, 47)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range table.Headers {
		pdf.CellFormat(colWidth, 8, translate(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range table.Rows {
		if i%2 == 1 {
			pdf.SetFillColor(255, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, translate(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
