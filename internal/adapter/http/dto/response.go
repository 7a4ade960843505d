package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// VoucherResponse represents a voucher in API responses.
type VoucherResponse struct {
	ID          string          `json:"id"`
	VoucherNo   string          `json:"voucher_no"`
	VoucherDate domain.Date     `json:"voucher_date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VoucherFromDomain converts a domain voucher to a response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:          v.ID,
		VoucherNo:   v.VoucherNo,
		VoucherDate: v.VoucherDate,
		Description: v.Description,
		Type:        string(v.Type),
		Amount:      v.Amount,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// ListVouchersResponse represents a page of vouchers.
type ListVouchersResponse struct {
	Vouchers []*VoucherResponse `json:"vouchers"`
	Sort     string             `json:"sort"`
	Dir      string             `json:"dir"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// SettingsResponse represents the ledger settings in API responses.
type SettingsResponse struct {
	PartyName           string          `json:"party_name"`
	Currency            string          `json:"currency"`
	FirmName            string          `json:"firm_name"`
	DefaultInterestRate decimal.Decimal `json:"default_interest_rate"`
	DefaultGracePeriod  int             `json:"default_grace_period"`
	UpdatedAt           *time.Time      `json:"updated_at,omitempty"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s *domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		PartyName:           s.PartyName,
		Currency:            s.Currency,
		FirmName:            s.FirmName,
		DefaultInterestRate: s.DefaultInterestRate,
		DefaultGracePeriod:  s.DefaultGracePeriod,
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
