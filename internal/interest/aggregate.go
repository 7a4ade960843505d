package interest

import (
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// Aggregate assembles the final Result. It is defined for the empty ledger.
func Aggregate(p Params, l Ledger, alloc Allocations, settlements []Settlement) *Result {
	r := &Result{
		PartyName:     p.PartyName,
		AsOfDate:      p.AsOfDate,
		GracePeriod:   p.GracePeriod,
		InterestRate:  p.InterestRate,
		Settlements:   settlements,
		Credits:       append([]domain.Voucher(nil), l.Credits...),
		AllVouchers:   merge(l),
		TotalDebit:    decimal.Zero,
		TotalCredit:   decimal.Zero,
		TotalInterest: decimal.Zero,
	}

	for i := range l.Debits {
		r.TotalDebit = r.TotalDebit.Add(l.Debits[i].Amount)
	}

	for i := range l.Credits {
		r.TotalCredit = r.TotalCredit.Add(l.Credits[i].Amount)
	}

	for i := range settlements {
		r.TotalInterest = r.TotalInterest.Add(settlements[i].InterestTotal)
	}

	for j, left := range alloc.Unapplied {
		if left.IsPositive() {
			r.UnappliedCredits = append(r.UnappliedCredits, CreditBalance{Credit: l.Credits[j], Unapplied: left})
		}
	}

	return r
}

// merge interleaves the sorted debits and credits by date, breaking ties by
// input position.
func merge(l Ledger) []domain.Voucher {
	out := make([]domain.Voucher, 0, l.Len())
	i, j := 0, 0

	for i < len(l.Debits) && j < len(l.Credits) {
		d, c := l.Debits[i].VoucherDate, l.Credits[j].VoucherDate
		if d.Before(c) || (d.Equal(c) && l.debitPos[i] < l.creditPos[j]) {
			out = append(out, l.Debits[i])
			i++
		} else {
			out = append(out, l.Credits[j])
			j++
		}
	}

	out = append(out, l.Debits[i:]...)
	out = append(out, l.Credits[j:]...)

	return out
}
