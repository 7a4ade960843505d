package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/postgres/generated"
)

// SettingsRepository implements usecase.SettingsRepository on the single-row settings table.
type SettingsRepository struct {
	queries *generated.Queries
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return newSettingsRepository(pool)
}

func newSettingsRepository(db generated.DBTX) *SettingsRepository {
	return &SettingsRepository{queries: generated.New(db)}
}

// Get returns the saved settings or domain.ErrSettingsNotFound.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	row, err := r.queries.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}

		return nil, err
	}

	return &domain.Settings{
		PartyName:           row.PartyName,
		Currency:            row.Currency,
		FirmName:            row.FirmName,
		DefaultInterestRate: numericToDecimal(row.DefaultInterestRate),
		DefaultGracePeriod:  int(row.DefaultGracePeriod),
		UpdatedAt:           row.UpdatedAt.Time,
	}, nil
}

// Save inserts or replaces the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	return r.queries.UpsertSettings(ctx, generated.UpsertSettingsParams{
		PartyName:           settings.PartyName,
		Currency:            settings.Currency,
		FirmName:            settings.FirmName,
		DefaultInterestRate: decimalToNumeric(settings.DefaultInterestRate),
		DefaultGracePeriod:  int32(settings.DefaultGracePeriod),
		UpdatedAt:           timeToPgTimestamptz(settings.UpdatedAt),
	})
}
