package interest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// RawEntry is a voucher as it arrives from loosely typed storage: dates and
// types are strings and the amount may be a JSON number or a numeric string.
type RawEntry struct {
	ID          string      `json:"id"          yaml:"id"`
	VoucherNo   string      `json:"voucherNo"   yaml:"voucherNo"`
	VoucherDate string      `json:"voucherDate" yaml:"voucherDate"`
	Description string      `json:"description" yaml:"description"`
	Type        string      `json:"type"        yaml:"type"`
	Amount      json.Number `json:"amount"      yaml:"amount"`
}

// Ledger is a validated voucher set split by type, each side sorted by date.
type Ledger struct {
	Debits  []domain.Voucher
	Credits []domain.Voucher

	// input positions, used to keep ties stable when merging
	debitPos  []int
	creditPos []int
}

// Len returns the number of vouchers in the ledger.
func (l Ledger) Len() int {
	return len(l.Debits) + len(l.Credits)
}

// Normalize parses raw entries into a Ledger. Entries without an ID get a
// positional one so credits stay distinguishable.
func Normalize(raw []RawEntry) (Ledger, error) {
	vouchers := make([]domain.Voucher, 0, len(raw))

	for i, r := range raw {
		v, err := parseRaw(i, r)
		if err != nil {
			return Ledger{}, err
		}
		vouchers = append(vouchers, v)
	}

	return NormalizeVouchers(vouchers)
}

// NormalizeVouchers validates typed vouchers and builds a Ledger. The input
// slice is not modified.
func NormalizeVouchers(vouchers []domain.Voucher) (Ledger, error) {
	var l Ledger

	for i := range vouchers {
		v := vouchers[i]
		if err := checkVoucher(i, &v); err != nil {
			return Ledger{}, err
		}

		if v.IsDebit() {
			l.Debits = append(l.Debits, v)
			l.debitPos = append(l.debitPos, i)
		} else {
			l.Credits = append(l.Credits, v)
			l.creditPos = append(l.creditPos, i)
		}
	}

	sortByDate(l.Debits, l.debitPos)
	sortByDate(l.Credits, l.creditPos)

	return l, nil
}

func parseRaw(i int, r RawEntry) (domain.Voucher, error) {
	date, err := domain.ParseDate(r.VoucherDate)
	if err != nil {
		return domain.Voucher{}, entryError(i, r.ID, "voucherDate", err.Error())
	}

	typ, err := domain.ParseVoucherType(r.Type)
	if err != nil {
		return domain.Voucher{}, entryError(i, r.ID, "type", err.Error())
	}

	if r.Amount == "" {
		return domain.Voucher{}, entryError(i, r.ID, "amount", "amount is required")
	}

	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return domain.Voucher{}, entryError(i, r.ID, "amount", fmt.Sprintf("not a number: %q", r.Amount))
	}

	id := r.ID
	if id == "" {
		id = "#" + strconv.Itoa(i+1)
	}

	return domain.Voucher{
		ID:          id,
		VoucherNo:   r.VoucherNo,
		VoucherDate: date,
		Description: r.Description,
		Type:        typ,
		Amount:      amount,
	}, nil
}

func checkVoucher(i int, v *domain.Voucher) error {
	if v.VoucherDate.IsZero() {
		return entryError(i, v.ID, "voucherDate", "date is required")
	}

	if !v.Type.Valid() {
		return entryError(i, v.ID, "type", fmt.Sprintf("unknown voucher type %q", v.Type))
	}

	if v.Amount.Sign() <= 0 {
		return entryError(i, v.ID, "amount", fmt.Sprintf("must be positive, got %s", v.Amount))
	}

	return nil
}

func entryError(i int, id, field, msg string) error {
	name := fmt.Sprintf("entries[%d].%s", i, field)
	if id != "" {
		name = fmt.Sprintf("entries[%d](%s).%s", i, id, field)
	}
	return domain.NewValidationError(name, msg)
}

// sortByDate stable-sorts vouchers ascending by date, permuting pos alongside.
func sortByDate(vouchers []domain.Voucher, pos []int) {
	sort.Stable(byDate{vouchers: vouchers, pos: pos})
}

type byDate struct {
	vouchers []domain.Voucher
	pos      []int
}

func (b byDate) Len() int { return len(b.vouchers) }

func (b byDate) Less(i, j int) bool {
	return b.vouchers[i].VoucherDate.Before(b.vouchers[j].VoucherDate)
}

func (b byDate) Swap(i, j int) {
	b.vouchers[i], b.vouchers[j] = b.vouchers[j], b.vouchers[i]
	b.pos[i], b.pos[j] = b.pos[j], b.pos[i]
}
