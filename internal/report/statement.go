// Package report renders interest calculation results as account statements.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/interest"
)

// RowKind identifies the role of a statement row.
type RowKind string

const (
	RowOpening RowKind = "opening"
	RowDebit   RowKind = "debit"
	RowCredit  RowKind = "credit"
	RowTotal   RowKind = "total"
)

const (
	openingNarration = "<<< Opening Balance >>>"
	totalNarration   = "<<< Account Total >>>"
	chequeMarker     = "CH"
	shortDateLayout  = "02.01.06"
)

// Row is one line of the statement. Debit and Credit are zero when the
// column is empty for the row.
type Row struct {
	Kind      RowKind
	Date      domain.Date
	VoucherNo string
	Narration string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Balance   decimal.Decimal
	// Interest holds one narration per accrual period of a debit row.
	Interest []string
}

// Statement is a printable copy of the party account.
type Statement struct {
	FirmName      string
	PartyName     string
	From          domain.Date
	To            domain.Date
	InterestRate  decimal.Decimal
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	TotalInterest decimal.Decimal
	Rows          []Row
}

// Options control statement presentation.
type Options struct {
	FirmName string
}

// BuildStatement lays out a result as an account copy with a running balance.
func BuildStatement(res *interest.Result, opts Options) Statement {
	firm := opts.FirmName
	if firm == "" {
		firm = domain.DefaultFirmName
	}

	from := res.AsOfDate
	if len(res.AllVouchers) > 0 {
		from = res.AllVouchers[0].VoucherDate
	}

	interestByDebit := make(map[string][]string, len(res.Settlements))
	for _, s := range res.Settlements {
		if !s.InterestTotal.IsPositive() {
			continue
		}
		lines := make([]string, 0, len(s.Periods))
		for _, p := range s.Periods {
			lines = append(lines, p.Narration(res.InterestRate))
		}
		interestByDebit[s.Debit.ID] = lines
	}

	st := Statement{
		FirmName:      firm,
		PartyName:     res.PartyName,
		From:          from,
		To:            res.AsOfDate,
		InterestRate:  res.InterestRate,
		TotalDebit:    res.TotalDebit,
		TotalCredit:   res.TotalCredit,
		TotalInterest: res.TotalInterest,
		Rows:          make([]Row, 0, len(res.AllVouchers)+2),
	}

	st.Rows = append(st.Rows, Row{Kind: RowOpening, Date: from, Narration: openingNarration})

	balance := decimal.Zero
	for _, v := range res.AllVouchers {
		balance = balance.Add(v.SignedAmount())

		row := Row{
			Date:      v.VoucherDate,
			VoucherNo: v.VoucherNo,
			Narration: narrate(v),
			Balance:   balance,
		}
		if v.IsDebit() {
			row.Kind = RowDebit
			row.Debit = v.Amount
			row.Interest = interestByDebit[v.ID]
		} else {
			row.Kind = RowCredit
			row.Credit = v.Amount
		}

		st.Rows = append(st.Rows, row)
	}

	st.Rows = append(st.Rows, Row{
		Kind:      RowTotal,
		Narration: totalNarration,
		Debit:     res.TotalDebit,
		Credit:    res.TotalCredit,
		Balance:   res.Balance(),
	})

	return st
}

// Title is the statement sub-heading.
func (s Statement) Title() string {
	return fmt.Sprintf("Copy of A/C of: %s From %s TO %s",
		s.PartyName, s.From.Format(domain.DisplayLayout), s.To.Format(domain.DisplayLayout))
}

// Footer states the interest receivable.
func (s Statement) Footer() string {
	return fmt.Sprintf("INTEREST @ %s%% is Rs. %s Receivable", s.InterestRate.String(), s.TotalInterest.StringFixed(2))
}

// Closing returns the account-total row balance.
func (s Statement) Closing() decimal.Decimal {
	return s.TotalDebit.Sub(s.TotalCredit)
}

// BalanceLabel renders a balance as "<amount> Dr" or "<amount> Cr".
func BalanceLabel(b decimal.Decimal) string {
	if b.IsNegative() {
		return b.Abs().StringFixed(2) + " Cr"
	}
	return b.StringFixed(2) + " Dr"
}

// TotalBalanceLabel is BalanceLabel except a settled account shows "0.00".
func TotalBalanceLabel(b decimal.Decimal) string {
	if b.IsZero() {
		return "0.00"
	}
	return BalanceLabel(b)
}

// Amount renders a column amount, blank when zero.
func Amount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

// FileName returns the export file name for a party, e.g. "Acme_Interest_2024-03-01.xlsx".
func FileName(party string, on domain.Date, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(party))
	if name == "" {
		name = "ledger"
	}
	return fmt.Sprintf("%s_Interest_%s.%s", name, on.String(), strings.TrimPrefix(ext, "."))
}

// narrate renders "<voucher no> <description> (CH) <dd.mm.yy>".
func narrate(v domain.Voucher) string {
	no := v.VoucherNo
	if no == "" && v.IsCredit() {
		no = chequeMarker
	}

	parts := make([]string, 0, 4)
	if no != "" {
		parts = append(parts, no)
	}
	if d := strings.TrimSpace(v.Description); d != "" {
		parts = append(parts, d)
	}
	if v.IsCredit() {
		parts = append(parts, "("+chequeMarker+")")
	}
	parts = append(parts, v.VoucherDate.Format(shortDateLayout))

	return strings.Join(parts, " ")
}
