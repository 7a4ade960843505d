package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hstraders/interestledger/internal/domain"
)

// WriteText renders the statement as an aligned plain-text table.
func WriteText(st Statement, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintln(&b, st.FirmName)
	fmt.Fprintln(&b, st.Title())
	fmt.Fprintln(&b)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tNarration\tDEBIT (Rs.)\tCREDIT (Rs.)\tBalance (Rs.)\t")

	for _, row := range st.Rows {
		switch row.Kind {
		case RowOpening:
			fmt.Fprintf(tw, "%s\t%s\t0.00\t0.00\t%s\t\n", row.Date.Format(domain.DisplayLayout), row.Narration, BalanceLabel(row.Balance))
		case RowTotal:
			fmt.Fprintf(tw, "\t%s\t%s\t%s\t%s\t\n", row.Narration, row.Debit.StringFixed(2), row.Credit.StringFixed(2), TotalBalanceLabel(row.Balance))
		default:
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", row.Date.Format(domain.DisplayLayout), row.Narration, Amount(row.Debit), Amount(row.Credit), BalanceLabel(row.Balance))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	// interest detail is listed after the table so the columns stay aligned
	for _, row := range st.Rows {
		if len(row.Interest) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nInterest Calculation for %s:\n", row.Narration)
		for _, line := range row.Interest {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, st.Footer())

	_, err := io.WriteString(w, b.String())
	return err
}
