package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/postgres/generated"
	"github.com/hstraders/interestledger/internal/usecase"
)

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	queries *generated.Queries
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return newVoucherRepository(pool)
}

func newVoucherRepository(db generated.DBTX) *VoucherRepository {
	return &VoucherRepository{queries: generated.New(db)}
}

// Create inserts a new voucher.
func (r *VoucherRepository) Create(ctx context.Context, voucher *domain.Voucher) error {
	return createVoucher(ctx, r.queries, voucher)
}

// CreateTx inserts a new voucher inside tx.
func (r *VoucherRepository) CreateTx(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	queries, err := queriesFor(tx)
	if err != nil {
		return err
	}
	return createVoucher(ctx, queries, voucher)
}

func createVoucher(ctx context.Context, queries *generated.Queries, voucher *domain.Voucher) error {
	_, err := queries.CreateVoucher(ctx, generated.CreateVoucherParams{
		ID:          voucher.ID,
		VoucherNo:   voucher.VoucherNo,
		VoucherDate: dateToPgDate(voucher.VoucherDate),
		Description: voucher.Description,
		Type:        string(voucher.Type),
		Amount:      decimalToNumeric(voucher.Amount),
		CreatedAt:   timeToPgTimestamptz(voucher.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(voucher.UpdatedAt),
	})

	return err
}

// GetByID retrieves a voucher by ID.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	row, err := r.queries.GetVoucherByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	return rowToVoucher(row), nil
}

// Update replaces the editable fields of a voucher.
func (r *VoucherRepository) Update(ctx context.Context, voucher *domain.Voucher) error {
	n, err := r.queries.UpdateVoucher(ctx, generated.UpdateVoucherParams{
		ID:          voucher.ID,
		VoucherNo:   voucher.VoucherNo,
		VoucherDate: dateToPgDate(voucher.VoucherDate),
		Description: voucher.Description,
		Type:        string(voucher.Type),
		Amount:      decimalToNumeric(voucher.Amount),
		UpdatedAt:   timeToPgTimestamptz(voucher.UpdatedAt),
	})
	if err != nil {
		return err
	}

	if n == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

// Delete removes a voucher.
func (r *VoucherRepository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeleteVoucher(ctx, id)
	if err != nil {
		return err
	}

	if n == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

// List lists vouchers in the given order with pagination.
func (r *VoucherRepository) List(ctx context.Context, sort domain.VoucherSort, limit, offset int) ([]*domain.Voucher, error) {
	rows, err := r.queries.ListVouchers(ctx, generated.ListVouchersParams{
		SortKey:   string(sort.Key),
		Ascending: sort.Ascending,
		RowLimit:  int32(limit),
		RowOffset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToVouchers(rows), nil
}

// ListAll returns every voucher ordered by voucher date, then creation time.
func (r *VoucherRepository) ListAll(ctx context.Context) ([]*domain.Voucher, error) {
	rows, err := r.queries.ListAllVouchers(ctx)
	if err != nil {
		return nil, err
	}

	return rowsToVouchers(rows), nil
}

// Count returns the number of stored vouchers.
func (r *VoucherRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountVouchers(ctx)
}

func rowsToVouchers(rows []generated.Voucher) []*domain.Voucher {
	vouchers := make([]*domain.Voucher, 0, len(rows))
	for _, row := range rows {
		vouchers = append(vouchers, rowToVoucher(row))
	}

	return vouchers
}

func rowToVoucher(row generated.Voucher) *domain.Voucher {
	return &domain.Voucher{
		ID:          row.ID,
		VoucherNo:   row.VoucherNo,
		VoucherDate: pgDateToDate(row.VoucherDate),
		Description: row.Description,
		Type:        domain.VoucherType(row.Type),
		Amount:      numericToDecimal(row.Amount),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
