package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
)

// VoucherUseCase handles voucher business logic.
type VoucherUseCase struct {
	txManager   TransactionManager
	voucherRepo VoucherRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(
	txManager TransactionManager,
	voucherRepo VoucherRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *VoucherUseCase {
	return &VoucherUseCase{
		txManager:   txManager,
		voucherRepo: voucherRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateVoucherInput represents input for creating a voucher.
type CreateVoucherInput struct {
	VoucherNo   string
	VoucherDate domain.Date
	Description string
	Type        domain.VoucherType
	Amount      decimal.Decimal
}

// CreateVoucher validates and stores a new voucher.
func (uc *VoucherUseCase) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.Voucher, error) {
	now := time.Now().UTC()

	voucher := &domain.Voucher{
		VoucherNo:   strings.TrimSpace(input.VoucherNo),
		VoucherDate: input.VoucherDate,
		Description: strings.TrimSpace(input.Description),
		Type:        input.Type,
		Amount:      input.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := domain.ValidateVoucher(voucher); err != nil {
		return nil, err
	}

	voucher.ID = uc.idGen.Generate()

	opCtx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	if err := uc.retrier.Retry(opCtx, func() error {
		return uc.voucherRepo.Create(opCtx, voucher)
	}); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersCreated.Inc()
	}

	return voucher, nil
}

// GetVoucher retrieves a voucher by ID.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	return uc.voucherRepo.GetByID(ctx, id)
}

// UpdateVoucherInput represents input for replacing a voucher's fields.
type UpdateVoucherInput struct {
	ID          string
	VoucherNo   string
	VoucherDate domain.Date
	Description string
	Type        domain.VoucherType
	Amount      decimal.Decimal
}

// UpdateVoucher replaces every editable field of an existing voucher.
func (uc *VoucherUseCase) UpdateVoucher(ctx context.Context, input UpdateVoucherInput) (*domain.Voucher, error) {
	existing, err := uc.voucherRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.VoucherNo = strings.TrimSpace(input.VoucherNo)
	updated.VoucherDate = input.VoucherDate
	updated.Description = strings.TrimSpace(input.Description)
	updated.Type = input.Type
	updated.Amount = input.Amount
	updated.UpdatedAt = time.Now().UTC()

	if err := domain.ValidateVoucher(&updated); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	if err := uc.retrier.Retry(opCtx, func() error {
		return uc.voucherRepo.Update(opCtx, &updated)
	}); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersUpdated.Inc()
	}

	return &updated, nil
}

// DeleteVoucher removes a voucher by ID.
func (uc *VoucherUseCase) DeleteVoucher(ctx context.Context, id string) error {
	opCtx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	if err := uc.retrier.Retry(opCtx, func() error {
		return uc.voucherRepo.Delete(opCtx, id)
	}); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersDeleted.Inc()
	}

	return nil
}

// ListVouchersInput represents input for listing vouchers.
type ListVouchersInput struct {
	Sort   domain.VoucherSort
	Limit  int
	Offset int
}

// ListVouchers lists vouchers in the requested order with pagination.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, input ListVouchersInput) ([]*domain.Voucher, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	if input.Sort.Key == "" {
		input.Sort.Key = domain.SortByDate
	}

	return uc.voucherRepo.List(ctx, input.Sort, limit, offset)
}

// ImportVouchers validates every input and stores them in one transaction.
// Nothing is stored when any input is invalid.
func (uc *VoucherUseCase) ImportVouchers(ctx context.Context, inputs []CreateVoucherInput) ([]*domain.Voucher, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("vouchers", "at least one voucher is required")
	}
	if len(inputs) > MaxImportBatch {
		return nil, domain.NewValidationError("vouchers", fmt.Sprintf("at most %d vouchers per import", MaxImportBatch))
	}

	now := time.Now().UTC()
	vouchers := make([]*domain.Voucher, len(inputs))
	for i, input := range inputs {
		v := &domain.Voucher{
			VoucherNo:   strings.TrimSpace(input.VoucherNo),
			VoucherDate: input.VoucherDate,
			Description: strings.TrimSpace(input.Description),
			Type:        input.Type,
			Amount:      input.Amount,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := domain.ValidateVoucher(v); err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				return nil, domain.NewValidationError(fmt.Sprintf("vouchers[%d].%s", i, vErr.Field), vErr.Message)
			}
			return nil, err
		}
		vouchers[i] = v
	}

	for _, v := range vouchers {
		v.ID = uc.idGen.Generate()
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	err := uc.retrier.Retry(txCtx, func() error {
		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		for _, v := range vouchers {
			if err := uc.voucherRepo.CreateTx(txCtx, tx, v); err != nil {
				return err
			}
		}

		return tx.Commit(txCtx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersCreated.Add(float64(len(vouchers)))
	}

	return vouchers, nil
}
