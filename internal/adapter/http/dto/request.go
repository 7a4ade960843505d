package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/usecase"
)

// CreateVoucherRequest represents a request to create a voucher.
type CreateVoucherRequest struct {
	VoucherNo   string          `json:"voucher_no"`
	VoucherDate domain.Date     `json:"voucher_date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVoucherRequest) ToUseCaseInput() usecase.CreateVoucherInput {
	return usecase.CreateVoucherInput{
		VoucherNo:   r.VoucherNo,
		VoucherDate: r.VoucherDate,
		Description: r.Description,
		Type:        voucherType(r.Type),
		Amount:      r.Amount,
	}
}

// UpdateVoucherRequest represents a request to replace a voucher's fields.
type UpdateVoucherRequest struct {
	VoucherNo   string          `json:"voucher_no"`
	VoucherDate domain.Date     `json:"voucher_date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input for the voucher with the given ID.
func (r *UpdateVoucherRequest) ToUseCaseInput(id string) usecase.UpdateVoucherInput {
	return usecase.UpdateVoucherInput{
		ID:          id,
		VoucherNo:   r.VoucherNo,
		VoucherDate: r.VoucherDate,
		Description: r.Description,
		Type:        voucherType(r.Type),
		Amount:      r.Amount,
	}
}

// ImportVouchersRequest represents a request to create many vouchers at once.
type ImportVouchersRequest struct {
	Vouchers []CreateVoucherRequest `json:"vouchers"`
}

// ToUseCaseInput converts to use case input.
func (r *ImportVouchersRequest) ToUseCaseInput() []usecase.CreateVoucherInput {
	inputs := make([]usecase.CreateVoucherInput, len(r.Vouchers))
	for i := range r.Vouchers {
		inputs[i] = r.Vouchers[i].ToUseCaseInput()
	}
	return inputs
}

// UpdateSettingsRequest represents a partial settings update. Omitted fields
// keep their saved values.
type UpdateSettingsRequest struct {
	PartyName           *string          `json:"party_name,omitempty"`
	Currency            *string          `json:"currency,omitempty"`
	FirmName            *string          `json:"firm_name,omitempty"`
	DefaultInterestRate *decimal.Decimal `json:"default_interest_rate,omitempty"`
	DefaultGracePeriod  *int             `json:"default_grace_period,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSettingsRequest) ToUseCaseInput() usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		PartyName:           r.PartyName,
		Currency:            r.Currency,
		FirmName:            r.FirmName,
		DefaultInterestRate: r.DefaultInterestRate,
		DefaultGracePeriod:  r.DefaultGracePeriod,
	}
}

// CalculateRequest represents calculation parameters. Omitted fields fall
// back to today and the saved settings.
type CalculateRequest struct {
	AsOfDate     domain.Date      `json:"as_of_date"`
	GracePeriod  *int             `json:"grace_period,omitempty"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CalculateRequest) ToUseCaseInput() usecase.CalculateInput {
	return usecase.CalculateInput{
		AsOfDate:     r.AsOfDate,
		GracePeriod:  r.GracePeriod,
		InterestRate: r.InterestRate,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func voucherType(s string) domain.VoucherType {
	return domain.VoucherType(strings.ToLower(strings.TrimSpace(s)))
}
