package usecase

import (
	"context"
	"time"

	"github.com/hstraders/interestledger/internal/domain"
)

// VoucherRepository defines data access for vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) error
	CreateTx(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
	Update(ctx context.Context, voucher *domain.Voucher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, sort domain.VoucherSort, limit, offset int) ([]*domain.Voucher, error)
	// ListAll returns every voucher ordered by voucher date, then creation time.
	ListAll(ctx context.Context) ([]*domain.Voucher, error)
}

// SettingsRepository defines data access for the ledger settings.
type SettingsRepository interface {
	// Get returns domain.ErrSettingsNotFound until settings are first saved.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

// SettingsCache caches the ledger settings.
type SettingsCache interface {
	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context) (*domain.Settings, error)
	Set(ctx context.Context, settings *domain.Settings, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// SettingsProvider resolves the settings a calculation runs with.
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key whose request failed so it can be retried.
	Release(ctx context.Context, key string) error
}
