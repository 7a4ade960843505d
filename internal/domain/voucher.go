package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType distinguishes invoices from payments.
type VoucherType string

const (
	// VoucherDebit is an invoice or bill owed by the party.
	VoucherDebit VoucherType = "debit"
	// VoucherCredit is a payment received from the party.
	VoucherCredit VoucherType = "credit"
)

// ParseVoucherType parses a voucher type, ignoring case and surrounding whitespace.
func ParseVoucherType(s string) (VoucherType, error) {
	switch VoucherType(strings.ToLower(strings.TrimSpace(s))) {
	case VoucherDebit:
		return VoucherDebit, nil
	case VoucherCredit:
		return VoucherCredit, nil
	default:
		return "", fmt.Errorf("unknown voucher type %q", s)
	}
}

// Valid reports whether t is debit or credit.
func (t VoucherType) Valid() bool {
	return t == VoucherDebit || t == VoucherCredit
}

// Voucher is a single ledger entry for the party.
type Voucher struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ID          string
	VoucherNo   string
	Description string
	Type        VoucherType
	VoucherDate Date
	Amount      decimal.Decimal
}

// IsDebit reports whether the voucher is an invoice.
func (v *Voucher) IsDebit() bool {
	return v.Type == VoucherDebit
}

// IsCredit reports whether the voucher is a payment.
func (v *Voucher) IsCredit() bool {
	return v.Type == VoucherCredit
}

// SignedAmount returns the amount as it moves the party balance:
// positive for debits, negative for credits.
func (v *Voucher) SignedAmount() decimal.Decimal {
	if v.IsCredit() {
		return v.Amount.Neg()
	}
	return v.Amount
}

// VoucherSortKey is a column vouchers can be listed by.
type VoucherSortKey string

const (
	SortByDate        VoucherSortKey = "voucherDate"
	SortByNo          VoucherSortKey = "voucherNo"
	SortByDescription VoucherSortKey = "description"
	SortByType        VoucherSortKey = "type"
	SortByAmount      VoucherSortKey = "amount"
)

// VoucherSort orders a voucher listing. The zero value is newest first.
type VoucherSort struct {
	Key       VoucherSortKey
	Ascending bool
}

// ParseVoucherSort parses a sort key and an "asc"/"desc" direction.
// Empty values select voucherDate descending.
func ParseVoucherSort(key, direction string) (VoucherSort, error) {
	s := VoucherSort{Key: SortByDate}

	switch k := VoucherSortKey(strings.TrimSpace(key)); k {
	case "":
	case SortByDate, SortByNo, SortByDescription, SortByType, SortByAmount:
		s.Key = k
	default:
		return VoucherSort{}, NewValidationError("sort", fmt.Sprintf("unknown sort key %q", key))
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "desc":
	case "asc":
		s.Ascending = true
	default:
		return VoucherSort{}, NewValidationError("dir", fmt.Sprintf("direction must be asc or desc, got %q", direction))
	}

	return s, nil
}
