package interest

import (
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// DaysPerYear is the fixed day-count basis, leap years included.
const DaysPerYear = 365

var (
	daysPerYear = decimal.NewFromInt(DaysPerYear)
	hundred     = decimal.NewFromInt(100)
)

// Params are the configuration scalars of one calculation.
type Params struct {
	PartyName    string
	AsOfDate     domain.Date
	GracePeriod  int
	InterestRate decimal.Decimal // annual, percent
}

// Allocation is the part of one credit applied to one debit.
type Allocation struct {
	Credit  domain.Voucher
	Applied decimal.Decimal
}

// Period is an interval over which a debit's principal stayed constant.
type Period struct {
	From      domain.Date
	To        domain.Date
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Days      int
}

// Settlement records how a debit was paid down and the interest it accrued.
type Settlement struct {
	Debit         domain.Voucher
	DueDate       domain.Date
	Allocations   []Allocation
	Periods       []Period
	InterestTotal decimal.Decimal
	// Outstanding is the part of the debit no credit covered.
	Outstanding decimal.Decimal
}

// Settled reports whether the debit was fully covered by credits.
func (s *Settlement) Settled() bool {
	return s.Outstanding.IsZero()
}

// Paid returns the total applied to the debit.
func (s *Settlement) Paid() decimal.Decimal {
	return s.Debit.Amount.Sub(s.Outstanding)
}

// CreditBalance is what is left of a credit after allocation.
type CreditBalance struct {
	Credit    domain.Voucher
	Unapplied decimal.Decimal
}

// Result is the complete output of a calculation.
type Result struct {
	PartyName    string
	AsOfDate     domain.Date
	GracePeriod  int
	InterestRate decimal.Decimal

	Settlements []Settlement
	Credits     []domain.Voucher
	// AllVouchers is every voucher in date order, ties in input order.
	AllVouchers []domain.Voucher
	// UnappliedCredits lists credits with balance left over, in date order.
	UnappliedCredits []CreditBalance

	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	TotalInterest decimal.Decimal
}

// Balance returns the closing party balance; positive means the party owes.
func (r *Result) Balance() decimal.Decimal {
	return r.TotalDebit.Sub(r.TotalCredit)
}

// Outstanding returns the unpaid principal across all debits.
func (r *Result) Outstanding() decimal.Decimal {
	total := decimal.Zero
	for i := range r.Settlements {
		total = total.Add(r.Settlements[i].Outstanding)
	}
	return total
}
