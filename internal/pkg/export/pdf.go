package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFTable describes one tabular report page set.
type PDFTable struct {
	Title    string
	Subtitle string
	Header   []string
	// Widths in mm, one per header column.
	Widths []float64
	Rows   [][]string
	// Footer lines printed after the table, e.g. grand totals.
	Footer []string
}

// WritePDF renders the table in landscape A4, repeating the header row on
// every page.
func WritePDF(w io.Writer, table PDFTable) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, table.Title)
	pdf.Ln(10)
	if table.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, table.Subtitle)
		pdf.Ln(9)
	}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range table.Header {
			pdf.CellFormat(table.Widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	writeHeader()

	pdf.SetFont("Helvetica", "", 9)
	_, pageH := pdf.GetPageSize()
	for _, row := range table.Rows {
		if pdf.GetY() > pageH-25 {
			pdf.AddPage()
			writeHeader()
			pdf.SetFont("Helvetica", "", 9)
		}
		for i, cell := range row {
			pdf.CellFormat(table.Widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Footer) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		for _, line := range table.Footer {
			pdf.Cell(0, 7, line)
			pdf.Ln(7)
		}
	}

	return pdf.Output(w)
}
