package interest

import "github.com/hstraders/interestledger/internal/domain"

// Calculate runs the full pipeline over typed vouchers. It fails only with a
// *domain.ValidationError; configuration in p is trusted.
func Calculate(vouchers []domain.Voucher, p Params) (*Result, error) {
	l, err := NormalizeVouchers(vouchers)
	if err != nil {
		return nil, err
	}
	return Run(l, p), nil
}

// CalculateRaw is Calculate for serialized entries.
func CalculateRaw(raw []RawEntry, p Params) (*Result, error) {
	l, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return Run(l, p), nil
}

// Run allocates, accrues and aggregates an already normalized ledger.
func Run(l Ledger, p Params) *Result {
	alloc := Allocate(l)

	settlements := make([]Settlement, len(l.Debits))
	for i := range l.Debits {
		settlements[i] = Accrue(l.Debits[i], p.GracePeriod, alloc.ByDebit[i], p.AsOfDate, p.InterestRate)
	}

	return Aggregate(p, l, alloc, settlements)
}
