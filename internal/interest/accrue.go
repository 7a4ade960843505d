package interest

import (
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// DueDate returns the date a debit starts accruing interest.
func DueDate(debit domain.Voucher, gracePeriod int) domain.Date {
	return debit.VoucherDate.AddDays(gracePeriod)
}

// Accrue walks a debit's timeline from its due date through each allocated
// payment and, while principal remains, on to asOf. Payments on or before the
// due date reduce principal without opening a period. Zero-day periods are
// never emitted.
func Accrue(debit domain.Voucher, gracePeriod int, allocations []Allocation, asOf domain.Date, rate decimal.Decimal) Settlement {
	due := DueDate(debit, gracePeriod)

	s := Settlement{
		Debit:         debit,
		DueDate:       due,
		Allocations:   allocations,
		InterestTotal: decimal.Zero,
	}

	principal := debit.Amount
	cursor := due

	for _, a := range allocations {
		paidOn := a.Credit.VoucherDate

		if paidOn.After(due) && principal.IsPositive() {
			if paidOn.After(cursor) {
				s.Periods = append(s.Periods, newPeriod(cursor, paidOn, principal, rate))
			}
			cursor = paidOn
		}

		principal = principal.Sub(a.Applied)
	}

	if principal.IsPositive() && asOf.After(cursor) {
		s.Periods = append(s.Periods, newPeriod(cursor, asOf, principal, rate))
	}

	for _, p := range s.Periods {
		s.InterestTotal = s.InterestTotal.Add(p.Interest)
	}

	if principal.IsPositive() {
		s.Outstanding = principal
	} else {
		s.Outstanding = decimal.Zero
	}

	return s
}

func newPeriod(from, to domain.Date, principal, rate decimal.Decimal) Period {
	days := from.DaysUntil(to)
	return Period{
		From:      from,
		To:        to,
		Principal: principal,
		Days:      days,
		Interest:  SimpleInterest(principal, rate, days),
	}
}

// SimpleInterest returns principal × rate% × days/365.
func SimpleInterest(principal, ratePercent decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return principal.
		Mul(ratePercent).
		Mul(decimal.NewFromInt(int64(days))).
		Div(daysPerYear.Mul(hundred))
}
