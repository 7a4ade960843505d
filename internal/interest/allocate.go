package interest

import (
	"github.com/shopspring/decimal"
)

// Allocations is the outcome of FIFO matching over one ledger.
type Allocations struct {
	// ByDebit[i] holds the allocations for ledger.Debits[i], oldest credit first.
	ByDebit [][]Allocation
	// Unapplied[j] is what remains of ledger.Credits[j].
	Unapplied []decimal.Decimal
}

// Allocate matches credits to debits. Debits are served oldest first; each
// takes from the earliest credits dated strictly after it until covered. A
// credit never settles a debit issued on or after its own date.
func Allocate(l Ledger) Allocations {
	// remaining balance per credit, local to this call
	remaining := make([]decimal.Decimal, len(l.Credits))
	for j := range l.Credits {
		remaining[j] = l.Credits[j].Amount
	}

	byDebit := make([][]Allocation, len(l.Debits))

	for i := range l.Debits {
		debit := &l.Debits[i]
		toCover := debit.Amount

		for j := range l.Credits {
			if !toCover.IsPositive() {
				break
			}

			credit := &l.Credits[j]
			if !credit.VoucherDate.After(debit.VoucherDate) || !remaining[j].IsPositive() {
				continue
			}

			applied := decimal.Min(remaining[j], toCover)
			byDebit[i] = append(byDebit[i], Allocation{Credit: *credit, Applied: applied})

			remaining[j] = remaining[j].Sub(applied)
			toCover = toCover.Sub(applied)
		}
	}

	return Allocations{ByDebit: byDebit, Unapplied: remaining}
}
