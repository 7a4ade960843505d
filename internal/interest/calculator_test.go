package interest

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hstraders/interestledger/internal/domain"
)

func debit(id, date string, amount int64) domain.Voucher {
	return domain.Voucher{
		ID:          id,
		VoucherNo:   "SR-" + id,
		VoucherDate: domain.MustParseDate(date),
		Type:        domain.VoucherDebit,
		Amount:      decimal.NewFromInt(amount),
	}
}

func credit(id, date string, amount int64) domain.Voucher {
	return domain.Voucher{
		ID:          id,
		VoucherNo:   "CH",
		VoucherDate: domain.MustParseDate(date),
		Type:        domain.VoucherCredit,
		Amount:      decimal.NewFromInt(amount),
	}
}

func params(asOf string) Params {
	return Params{
		PartyName:    "Shree Traders",
		AsOfDate:     domain.MustParseDate(asOf),
		GracePeriod:  15,
		InterestRate: decimal.NewFromInt(18),
	}
}

func TestCalculate_LongSpanDayCount(t *testing.T) {
	p := params("2024-01-01")
	p.GracePeriod = 0

	res, err := Calculate([]domain.Voucher{debit("1", "1700-01-01", 1000)}, p)
	require.NoError(t, err)
	require.Len(t, res.Settlements, 1)
	require.Len(t, res.Settlements[0].Periods, 1)

	assert.Equal(t, 118338, res.Settlements[0].Periods[0].Days)
}

func TestCalculate_NoPayment(t *testing.T) {
	res, err := Calculate([]domain.Voucher{debit("d1", "2024-01-01", 10000)}, params("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, res.Settlements, 1)

	s := res.Settlements[0]
	assert.Equal(t, "2024-01-16", s.DueDate.String())
	require.Len(t, s.Periods, 1)
	assert.Equal(t, 45, s.Periods[0].Days)
	assert.Equal(t, "2024-01-16", s.Periods[0].From.String())
	assert.Equal(t, "2024-03-01", s.Periods[0].To.String())
	assert.Equal(t, "221.92", s.InterestTotal.StringFixed(2))
	assert.Equal(t, "221.92", res.TotalInterest.StringFixed(2))
	assert.True(t, s.Outstanding.Equal(decimal.NewFromInt(10000)))
}

func TestCalculate_FullPaymentBeforeDueDate(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 10000),
		credit("c1", "2024-01-10", 10000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	s := res.Settlements[0]
	require.Len(t, s.Allocations, 1)
	assert.True(t, s.Allocations[0].Applied.Equal(decimal.NewFromInt(10000)))
	assert.Empty(t, s.Periods)
	assert.True(t, s.InterestTotal.IsZero())
	assert.True(t, s.Settled())
	assert.True(t, res.TotalInterest.IsZero())
}

func TestCalculate_PartialPaymentAfterDueDate(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 10000),
		credit("c1", "2024-02-01", 4000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	s := res.Settlements[0]
	require.Len(t, s.Periods, 2)

	first, second := s.Periods[0], s.Periods[1]
	assert.Equal(t, "2024-01-16", first.From.String())
	assert.Equal(t, "2024-02-01", first.To.String())
	assert.Equal(t, 16, first.Days)
	assert.True(t, first.Principal.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "78.90", first.Interest.StringFixed(2))

	assert.Equal(t, "2024-02-01", second.From.String())
	assert.Equal(t, "2024-03-01", second.To.String())
	assert.Equal(t, 29, second.Days)
	assert.True(t, second.Principal.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, "85.81", second.Interest.StringFixed(2))

	assert.True(t, s.InterestTotal.Equal(first.Interest.Add(second.Interest)))
	assert.Equal(t, "164.71", s.InterestTotal.StringFixed(2))
	assert.True(t, s.Outstanding.Equal(decimal.NewFromInt(6000)))
}

func TestCalculate_PaymentSplitAcrossDebits(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 5000),
		debit("d2", "2024-01-05", 5000),
		credit("c1", "2024-02-01", 7000),
	}, params("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, res.Settlements, 2)

	first, second := res.Settlements[0], res.Settlements[1]
	require.Len(t, first.Allocations, 1)
	assert.True(t, first.Allocations[0].Applied.Equal(decimal.NewFromInt(5000)))
	assert.True(t, first.Settled())

	require.Len(t, second.Allocations, 1)
	assert.True(t, second.Allocations[0].Applied.Equal(decimal.NewFromInt(2000)))
	assert.True(t, second.Outstanding.Equal(decimal.NewFromInt(3000)))

	assert.Empty(t, res.UnappliedCredits)
}

func TestCalculate_PaymentOnDueDate(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 10000),
		credit("c1", "2024-01-16", 4000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	s := res.Settlements[0]
	// no zero-day period at the due date, only the tail on the reduced principal
	require.Len(t, s.Periods, 1)
	assert.Equal(t, "2024-01-16", s.Periods[0].From.String())
	assert.Equal(t, 45, s.Periods[0].Days)
	assert.True(t, s.Periods[0].Principal.Equal(decimal.NewFromInt(6000)))
}

func TestCalculate_TwoPaymentsSameDay(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 10000),
		credit("c1", "2024-02-01", 3000),
		credit("c2", "2024-02-01", 2000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	s := res.Settlements[0]
	require.Len(t, s.Allocations, 2)
	assert.Equal(t, "c1", s.Allocations[0].Credit.ID)
	assert.Equal(t, "c2", s.Allocations[1].Credit.ID)

	require.Len(t, s.Periods, 2)
	assert.True(t, s.Periods[0].Principal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, s.Periods[1].Principal.Equal(decimal.NewFromInt(5000)))
	for _, p := range s.Periods {
		assert.Positive(t, p.Days)
	}
}

func TestCalculate_CreditNeverSettlesLaterOrSameDayDebit(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		credit("c1", "2024-01-10", 5000),
		debit("d1", "2024-01-10", 5000),
		debit("d2", "2024-01-20", 5000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	for _, s := range res.Settlements {
		assert.Empty(t, s.Allocations, "debit %s must not be settled by an earlier or same-day credit", s.Debit.ID)
	}

	require.Len(t, res.UnappliedCredits, 1)
	assert.True(t, res.UnappliedCredits[0].Unapplied.Equal(decimal.NewFromInt(5000)))
}

func TestCalculate_Overpayment(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 1000),
		credit("c1", "2024-01-05", 2500),
	}, params("2024-03-01"))
	require.NoError(t, err)

	assert.True(t, res.Settlements[0].Settled())
	require.Len(t, res.UnappliedCredits, 1)
	assert.True(t, res.UnappliedCredits[0].Unapplied.Equal(decimal.NewFromInt(1500)))
	assert.True(t, res.Balance().Equal(decimal.NewFromInt(-1500)))
}

func TestCalculate_AsOfBeforeDueDate(t *testing.T) {
	res, err := Calculate([]domain.Voucher{debit("d1", "2024-01-01", 10000)}, params("2024-01-10"))
	require.NoError(t, err)

	assert.Empty(t, res.Settlements[0].Periods)
	assert.True(t, res.TotalInterest.IsZero())
}

func TestCalculate_PaymentAfterAsOfDate(t *testing.T) {
	// allocation ignores the as-of date; the period simply runs to the payment
	res, err := Calculate([]domain.Voucher{
		debit("d1", "2024-01-01", 10000),
		credit("c1", "2024-04-01", 10000),
	}, params("2024-03-01"))
	require.NoError(t, err)

	s := res.Settlements[0]
	require.Len(t, s.Periods, 1)
	assert.Equal(t, "2024-04-01", s.Periods[0].To.String())
	assert.True(t, s.Settled())
}

func TestCalculate_EmptyLedger(t *testing.T) {
	res, err := Calculate(nil, params("2024-03-01"))
	require.NoError(t, err)

	assert.True(t, res.TotalDebit.IsZero())
	assert.True(t, res.TotalCredit.IsZero())
	assert.True(t, res.TotalInterest.IsZero())
	assert.Empty(t, res.Settlements)
	assert.Empty(t, res.AllVouchers)
	assert.Empty(t, res.Credits)
}

func TestCalculate_EchoesConfiguration(t *testing.T) {
	p := params("2024-03-01")
	p.GracePeriod = 30
	p.InterestRate = decimal.RequireFromString("12.5")

	res, err := Calculate([]domain.Voucher{debit("d1", "2024-01-01", 100)}, p)
	require.NoError(t, err)

	assert.Equal(t, "Shree Traders", res.PartyName)
	assert.Equal(t, "2024-03-01", res.AsOfDate.String())
	assert.Equal(t, 30, res.GracePeriod)
	assert.True(t, res.InterestRate.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "2024-01-31", res.Settlements[0].DueDate.String())
}

func TestCalculate_AllVouchersChronological(t *testing.T) {
	res, err := Calculate([]domain.Voucher{
		credit("c2", "2024-02-10", 100),
		debit("d2", "2024-01-05", 100),
		credit("c1", "2024-01-05", 100),
		debit("d1", "2024-01-01", 100),
	}, params("2024-03-01"))
	require.NoError(t, err)

	var ids []string
	for _, v := range res.AllVouchers {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"d1", "d2", "c1", "c2"}, ids)
}

func TestCalculate_ValidationError(t *testing.T) {
	bad := debit("d1", "2024-01-01", 100)
	bad.Amount = decimal.Zero

	_, err := Calculate([]domain.Voucher{bad}, params("2024-03-01"))
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Field, "amount")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	input := []domain.Voucher{
		credit("c1", "2024-02-01", 4000),
		debit("d1", "2024-01-01", 10000),
	}
	snapshot := append([]domain.Voucher(nil), input...)

	_, err := Calculate(input, params("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, snapshot, input)
}

func TestCalculate_Idempotent(t *testing.T) {
	input := sampleLedger()

	first, err := Calculate(input, params("2024-06-30"))
	require.NoError(t, err)
	second, err := Calculate(input, params("2024-06-30"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_Invariants(t *testing.T) {
	input := sampleLedger()

	res, err := Calculate(input, params("2024-06-30"))
	require.NoError(t, err)

	applied := map[string]decimal.Decimal{}
	total := decimal.Zero

	for _, s := range res.Settlements {
		sum := decimal.Zero
		for _, p := range s.Periods {
			assert.GreaterOrEqual(t, p.Days, 0)
			assert.False(t, p.Interest.IsNegative())
			assert.True(t, p.Principal.IsPositive())
			assert.False(t, p.To.Before(p.From))
			assert.Equal(t, p.From.DaysUntil(p.To), p.Days)
			sum = sum.Add(p.Interest)
		}
		assert.True(t, sum.Equal(s.InterestTotal), "period interest must add up for %s", s.Debit.ID)
		total = total.Add(s.InterestTotal)

		paid := decimal.Zero
		for _, a := range s.Allocations {
			assert.True(t, a.Credit.VoucherDate.After(s.Debit.VoucherDate))
			assert.True(t, a.Applied.IsPositive())
			assert.True(t, a.Applied.LessThanOrEqual(a.Credit.Amount))
			applied[a.Credit.ID] = applied[a.Credit.ID].Add(a.Applied)
			paid = paid.Add(a.Applied)
		}
		assert.True(t, paid.LessThanOrEqual(s.Debit.Amount))
		assert.True(t, paid.Add(s.Outstanding).Equal(s.Debit.Amount))
	}

	for _, c := range res.Credits {
		assert.True(t, applied[c.ID].LessThanOrEqual(c.Amount), "credit %s over-applied", c.ID)
	}

	assert.True(t, total.Equal(res.TotalInterest))
}

func sampleLedger() []domain.Voucher {
	return []domain.Voucher{
		debit("d1", "2024-01-01", 12500),
		debit("d2", "2024-01-15", 8000),
		credit("c1", "2024-01-20", 6000),
		debit("d3", "2024-02-02", 4300),
		credit("c2", "2024-02-20", 9000),
		credit("c3", "2024-02-20", 1500),
		debit("d4", "2024-03-11", 20000),
		credit("c4", "2024-04-30", 15000),
		credit("c5", "2024-05-15", 25000),
		debit("d5", "2024-06-01", 3000),
	}
}
