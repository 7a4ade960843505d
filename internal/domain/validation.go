package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxVoucherNoLength   = 64
	MaxDescriptionLength = 500
	MaxPartyNameLength   = 255
	MaxGracePeriodDays   = 3650
	MaxInterestRate      = "100"
	MaxVoucherAmount     = "1000000000000" // 1 trillion
	MoneyScale           = 2
)

// ValidateVoucherNo validates a voucher number. Duplicates are allowed.
func ValidateVoucherNo(no string) error {
	no = strings.TrimSpace(no)

	if no == "" {
		return NewValidationError("voucher_no", "voucher number is required")
	}

	if utf8.RuneCountInString(no) > MaxVoucherNoLength {
		return NewValidationError("voucher_no", fmt.Sprintf("exceeds %d characters", MaxVoucherNoLength))
	}

	return nil
}

// ValidateDescription validates the optional free-text description.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("exceeds %d characters", MaxDescriptionLength))
	}
	return nil
}

// ValidateAmount validates a voucher amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount", "amount must be positive")
	}

	maxAmount, _ := decimal.NewFromString(MaxVoucherAmount)
	if amount.GreaterThan(maxAmount) {
		return NewValidationError("amount", fmt.Sprintf("maximum amount is %s", MaxVoucherAmount))
	}

	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return NewValidationError("amount", fmt.Sprintf("at most %d decimal places", MoneyScale))
	}

	return nil
}

// ValidateVoucherDate validates that the date is set.
func ValidateVoucherDate(d Date) error {
	if d.IsZero() {
		return NewValidationError("voucher_date", "voucher date is required")
	}
	return nil
}

// ValidateVoucherType validates the voucher type.
func ValidateVoucherType(t VoucherType) error {
	if !t.Valid() {
		return NewValidationError("type", fmt.Sprintf("must be %q or %q", VoucherDebit, VoucherCredit))
	}
	return nil
}

// ValidateVoucher validates every user-supplied field of a voucher.
func ValidateVoucher(v *Voucher) error {
	if err := ValidateVoucherNo(v.VoucherNo); err != nil {
		return err
	}

	if err := ValidateVoucherDate(v.VoucherDate); err != nil {
		return err
	}

	if err := ValidateVoucherType(v.Type); err != nil {
		return err
	}

	if err := ValidateAmount(v.Amount); err != nil {
		return err
	}

	return ValidateDescription(v.Description)
}

// ValidatePartyName validates the counterparty name. A missing name is a
// configuration problem rather than bad input.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return NewConfigurationError("party_name", "party name is required")
	}

	if utf8.RuneCountInString(name) > MaxPartyNameLength {
		return NewValidationError("party_name", fmt.Sprintf("exceeds %d characters", MaxPartyNameLength))
	}

	return nil
}

// ValidateGracePeriod validates a grace period in days.
func ValidateGracePeriod(days int) error {
	if days < 0 {
		return NewValidationError("grace_period", "must not be negative")
	}

	if days > MaxGracePeriodDays {
		return NewValidationError("grace_period", fmt.Sprintf("must not exceed %d days", MaxGracePeriodDays))
	}

	return nil
}

// ValidateInterestRate validates an annual interest rate in percent.
func ValidateInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return NewValidationError("interest_rate", "must not be negative")
	}

	maxRate, _ := decimal.NewFromString(MaxInterestRate)
	if rate.GreaterThan(maxRate) {
		return NewValidationError("interest_rate", fmt.Sprintf("must not exceed %s%%", MaxInterestRate))
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
