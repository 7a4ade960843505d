package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/hstraders/interestledger/internal/domain"
)

var pdfColumnWidths = []float64{24, 86, 26, 26, 28}

// WritePDF renders the statement as an A4 portrait document.
func WritePDF(st Statement, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(5, 10, 5)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, tr(st.FirmName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr(st.Title()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for i, h := range []string{"Date", "Narration", "DEBIT (Rs.)", "CREDIT (Rs.)", "Balance (Rs.)"} {
		pdf.CellFormat(pdfColumnWidths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range st.Rows {
		var cells []string
		switch row.Kind {
		case RowOpening:
			cells = []string{row.Date.Format(domain.DisplayLayout), row.Narration, "0.00", "0.00", BalanceLabel(row.Balance)}
		case RowTotal:
			pdf.SetFont("Arial", "B", 9)
			cells = []string{"", row.Narration, row.Debit.StringFixed(2), row.Credit.StringFixed(2), TotalBalanceLabel(row.Balance)}
		default:
			pdf.SetFont("Arial", "", 9)
			cells = []string{row.Date.Format(domain.DisplayLayout), row.Narration, Amount(row.Debit), Amount(row.Credit), BalanceLabel(row.Balance)}
		}

		aligns := []string{"L", "L", "R", "R", "R"}
		for i, c := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(c), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)

		if len(row.Interest) > 0 {
			pdf.SetFont("Arial", "I", 8)
			for _, line := range row.Interest {
				pdf.CellFormat(pdfColumnWidths[0], 5, "", "L", 0, "L", false, 0, "")
				pdf.CellFormat(sum(pdfColumnWidths[1:]), 5, tr(line), "R", 1, "L", false, 0, "")
			}
			pdf.SetFont("Arial", "", 9)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr(st.Footer()), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
