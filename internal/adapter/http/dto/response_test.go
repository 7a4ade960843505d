package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/interest"
	"github.com/hstraders/interestledger/internal/report"
)

func sampleResult(t *testing.T) *interest.Result {
	t.Helper()

	res, err := interest.Calculate([]domain.Voucher{
		{ID: "d1", VoucherNo: "SR-1", VoucherDate: domain.NewDate(2024, 1, 1), Type: domain.VoucherDebit, Amount: decimal.NewFromInt(10000)},
		{ID: "c1", VoucherNo: "CHQ-1", VoucherDate: domain.NewDate(2024, 2, 1), Type: domain.VoucherCredit, Amount: decimal.NewFromInt(12000)},
	}, interest.Params{
		PartyName:    "Gupta Fabrics",
		AsOfDate:     domain.NewDate(2024, 3, 1),
		GracePeriod:  15,
		InterestRate: decimal.NewFromInt(18),
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	return res
}

func TestVoucherFromDomain(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := &domain.Voucher{
		ID:          "01HV",
		VoucherNo:   "SR-1",
		VoucherDate: domain.NewDate(2024, 1, 1),
		Type:        domain.VoucherDebit,
		Amount:      decimal.RequireFromString("99.95"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := VoucherFromDomain(v)
	if resp.ID != "01HV" || resp.Type != "debit" || !resp.Amount.Equal(v.Amount) {
		t.Fatalf("unexpected response: %+v", resp)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["voucher_date"] != "2024-01-01" {
		t.Fatalf("expected plain calendar date, got %v", decoded["voucher_date"])
	}
}

func TestSettingsFromDomain_OmitsZeroUpdatedAt(t *testing.T) {
	s := domain.DefaultSettings()

	resp := SettingsFromDomain(&s)
	if resp.UpdatedAt != nil {
		t.Fatalf("expected no updated_at for unsaved settings, got %v", resp.UpdatedAt)
	}
	if resp.DefaultGracePeriod != 15 || !resp.DefaultInterestRate.Equal(decimal.NewFromInt(18)) {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
}

func TestCalculationFromResult(t *testing.T) {
	resp := CalculationFromResult(sampleResult(t))

	if len(resp.Settlements) != 1 {
		t.Fatalf("expected 1 settlement, got %d", len(resp.Settlements))
	}

	s := resp.Settlements[0]
	if !s.Settled || !s.Outstanding.IsZero() {
		t.Fatalf("expected debit to be settled, got %+v", s)
	}
	if len(s.Allocations) != 1 || s.Allocations[0].CreditID != "c1" || !s.Allocations[0].Applied.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("unexpected allocations: %+v", s.Allocations)
	}
	if len(s.Periods) != 1 {
		t.Fatalf("expected a single period, got %+v", s.Periods)
	}
	if want := "16/01/2024 to 01/02/2024: 10000.00 × 18% × 16/365 = 78.90"; s.Periods[0].Narration != want {
		t.Fatalf("expected narration %q, got %q", want, s.Periods[0].Narration)
	}

	if len(resp.UnappliedCredits) != 1 || !resp.UnappliedCredits[0].Unapplied.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected 2000 unapplied, got %+v", resp.UnappliedCredits)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(-2000)) {
		t.Fatalf("expected balance -2000, got %s", resp.Balance)
	}
	if len(resp.AllVouchers) != 2 || resp.AllVouchers[0].ID != "d1" {
		t.Fatalf("expected vouchers in date order, got %+v", resp.AllVouchers)
	}
	if resp.TotalInterest.StringFixed(2) != "78.90" {
		t.Fatalf("expected total interest 78.90, got %s", resp.TotalInterest.StringFixed(2))
	}
}

func TestStatementFromReport(t *testing.T) {
	st := report.BuildStatement(sampleResult(t), report.Options{FirmName: "H.S. TRADERS"})

	resp := StatementFromReport(st)

	if resp.Title != "Copy of A/C of: Gupta Fabrics From 01/01/2024 TO 01/03/2024" {
		t.Fatalf("unexpected title %q", resp.Title)
	}
	if len(resp.Rows) != len(st.Rows) {
		t.Fatalf("expected %d rows, got %d", len(st.Rows), len(resp.Rows))
	}

	opening := resp.Rows[0]
	if opening.Kind != "opening" || opening.Balance != "0.00 Dr" || opening.Debit != "" {
		t.Fatalf("unexpected opening row: %+v", opening)
	}

	total := resp.Rows[len(resp.Rows)-1]
	if total.Kind != "total" || total.Balance != "2000.00 Cr" {
		t.Fatalf("unexpected total row: %+v", total)
	}
	if resp.Footer != "INTEREST @ 18% is Rs. 78.90 Receivable" {
		t.Fatalf("unexpected footer %q", resp.Footer)
	}
}
