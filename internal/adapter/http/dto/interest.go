package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/interest"
	"github.com/hstraders/interestledger/internal/report"
)

// CalculationResponse is the full result of an interest calculation.
type CalculationResponse struct {
	PartyName        string                    `json:"party_name"`
	AsOfDate         domain.Date               `json:"as_of_date"`
	GracePeriod      int                       `json:"grace_period"`
	InterestRate     decimal.Decimal           `json:"interest_rate"`
	TotalDebit       decimal.Decimal           `json:"total_debit"`
	TotalCredit      decimal.Decimal           `json:"total_credit"`
	TotalInterest    decimal.Decimal           `json:"total_interest"`
	Balance          decimal.Decimal           `json:"balance"`
	Outstanding      decimal.Decimal           `json:"outstanding"`
	Settlements      []SettlementResponse      `json:"settlements"`
	Credits          []*VoucherResponse        `json:"credits"`
	AllVouchers      []*VoucherResponse        `json:"all_vouchers"`
	UnappliedCredits []UnappliedCreditResponse `json:"unapplied_credits"`
}

// SettlementResponse describes how one debit was paid and what it accrued.
type SettlementResponse struct {
	Debit         *VoucherResponse     `json:"debit"`
	DueDate       domain.Date          `json:"due_date"`
	Allocations   []AllocationResponse `json:"allocations"`
	Periods       []PeriodResponse     `json:"periods"`
	InterestTotal decimal.Decimal      `json:"interest_total"`
	Outstanding   decimal.Decimal      `json:"outstanding"`
	Settled       bool                 `json:"settled"`
}

// AllocationResponse is the part of a credit applied to a debit.
type AllocationResponse struct {
	CreditID    string          `json:"credit_id"`
	VoucherNo   string          `json:"voucher_no"`
	VoucherDate domain.Date     `json:"voucher_date"`
	Applied     decimal.Decimal `json:"applied"`
}

// PeriodResponse is one constant-principal accrual interval.
type PeriodResponse struct {
	FromDate  domain.Date     `json:"from_date"`
	ToDate    domain.Date     `json:"to_date"`
	Principal decimal.Decimal `json:"principal"`
	Days      int             `json:"days"`
	Interest  decimal.Decimal `json:"interest"`
	Narration string          `json:"narration"`
}

// UnappliedCreditResponse is a credit with balance left after allocation.
type UnappliedCreditResponse struct {
	CreditID  string          `json:"credit_id"`
	VoucherNo string          `json:"voucher_no"`
	Unapplied decimal.Decimal `json:"unapplied"`
}

// CalculationFromResult converts a calculation result to a response.
func CalculationFromResult(res *interest.Result) *CalculationResponse {
	resp := &CalculationResponse{
		PartyName:        res.PartyName,
		AsOfDate:         res.AsOfDate,
		GracePeriod:      res.GracePeriod,
		InterestRate:     res.InterestRate,
		TotalDebit:       res.TotalDebit,
		TotalCredit:      res.TotalCredit,
		TotalInterest:    res.TotalInterest,
		Balance:          res.Balance(),
		Outstanding:      res.Outstanding(),
		Settlements:      make([]SettlementResponse, len(res.Settlements)),
		Credits:          valuesToResponses(res.Credits),
		AllVouchers:      valuesToResponses(res.AllVouchers),
		UnappliedCredits: make([]UnappliedCreditResponse, len(res.UnappliedCredits)),
	}

	for i := range res.Settlements {
		resp.Settlements[i] = settlementFromDomain(&res.Settlements[i], res.InterestRate)
	}

	for i, c := range res.UnappliedCredits {
		resp.UnappliedCredits[i] = UnappliedCreditResponse{
			CreditID:  c.Credit.ID,
			VoucherNo: c.Credit.VoucherNo,
			Unapplied: c.Unapplied,
		}
	}

	return resp
}

func settlementFromDomain(s *interest.Settlement, rate decimal.Decimal) SettlementResponse {
	debit := s.Debit
	out := SettlementResponse{
		Debit:         VoucherFromDomain(&debit),
		DueDate:       s.DueDate,
		Allocations:   make([]AllocationResponse, len(s.Allocations)),
		Periods:       make([]PeriodResponse, len(s.Periods)),
		InterestTotal: s.InterestTotal,
		Outstanding:   s.Outstanding,
		Settled:       s.Settled(),
	}

	for i, a := range s.Allocations {
		out.Allocations[i] = AllocationResponse{
			CreditID:    a.Credit.ID,
			VoucherNo:   a.Credit.VoucherNo,
			VoucherDate: a.Credit.VoucherDate,
			Applied:     a.Applied,
		}
	}

	for i, p := range s.Periods {
		out.Periods[i] = PeriodResponse{
			FromDate:  p.From,
			ToDate:    p.To,
			Principal: p.Principal,
			Days:      p.Days,
			Interest:  p.Interest,
			Narration: p.Narration(rate),
		}
	}

	return out
}

func valuesToResponses(vouchers []domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i := range vouchers {
		result[i] = VoucherFromDomain(&vouchers[i])
	}
	return result
}

// StatementResponse is an account statement ready for display.
type StatementResponse struct {
	FirmName      string                 `json:"firm_name"`
	PartyName     string                 `json:"party_name"`
	Title         string                 `json:"title"`
	From          domain.Date            `json:"from"`
	To            domain.Date            `json:"to"`
	InterestRate  decimal.Decimal        `json:"interest_rate"`
	TotalDebit    decimal.Decimal        `json:"total_debit"`
	TotalCredit   decimal.Decimal        `json:"total_credit"`
	TotalInterest decimal.Decimal        `json:"total_interest"`
	Footer        string                 `json:"footer"`
	Rows          []StatementRowResponse `json:"rows"`
}

// StatementRowResponse is one statement line with its display strings.
type StatementRowResponse struct {
	Kind      string      `json:"kind"`
	Date      domain.Date `json:"date"`
	VoucherNo string      `json:"voucher_no"`
	Narration string      `json:"narration"`
	Debit     string      `json:"debit"`
	Credit    string      `json:"credit"`
	Balance   string      `json:"balance"`
	Interest  []string    `json:"interest,omitempty"`
}

// StatementFromReport converts a statement to a response.
func StatementFromReport(st report.Statement) *StatementResponse {
	resp := &StatementResponse{
		FirmName:      st.FirmName,
		PartyName:     st.PartyName,
		Title:         st.Title(),
		From:          st.From,
		To:            st.To,
		InterestRate:  st.InterestRate,
		TotalDebit:    st.TotalDebit,
		TotalCredit:   st.TotalCredit,
		TotalInterest: st.TotalInterest,
		Footer:        st.Footer(),
		Rows:          make([]StatementRowResponse, len(st.Rows)),
	}

	for i, row := range st.Rows {
		resp.Rows[i] = StatementRowResponse{
			Kind:      string(row.Kind),
			Date:      row.Date,
			VoucherNo: row.VoucherNo,
			Narration: row.Narration,
			Debit:     report.Amount(row.Debit),
			Credit:    report.Amount(row.Credit),
			Balance:   balanceLabel(row),
			Interest:  row.Interest,
		}
	}

	return resp
}

func balanceLabel(row report.Row) string {
	if row.Kind == report.RowTotal {
		return report.TotalBalanceLabel(row.Balance)
	}
	return report.BalanceLabel(row.Balance)
}
