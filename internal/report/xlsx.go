package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hstraders/interestledger/internal/domain"
)

// SheetName is the worksheet the statement is written to.
const SheetName = "Interest Calculation"

var xlsxColumnWidths = map[string]float64{"A": 12, "B": 50, "C": 15, "D": 15, "E": 15}

// WriteXLSX renders the statement as a single-sheet workbook.
func WriteXLSX(st Statement, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, width := range xlsxColumnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	rows := [][]any{
		{st.FirmName},
		{st.Title()},
		{},
		{"Date", "Narration", "DEBIT (Rs.)", "CREDIT (Rs.)", "Balance (Rs.)"},
	}

	for _, row := range st.Rows {
		switch row.Kind {
		case RowOpening:
			rows = append(rows, []any{row.Date.Format(domain.DisplayLayout), row.Narration, "0.00", "0.00", BalanceLabel(row.Balance)})
		case RowTotal:
			rows = append(rows, []any{"", row.Narration, row.Debit.StringFixed(2), row.Credit.StringFixed(2), TotalBalanceLabel(row.Balance)})
		default:
			rows = append(rows, []any{row.Date.Format(domain.DisplayLayout), row.Narration, Amount(row.Debit), Amount(row.Credit), BalanceLabel(row.Balance)})
			for _, line := range row.Interest {
				rows = append(rows, []any{"", "    " + line})
			}
		}
	}

	rows = append(rows, []any{"", st.Footer()})

	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			continue
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
