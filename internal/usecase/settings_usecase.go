package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// SettingsUseCase reads and updates the ledger settings through a read-through cache.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
	cache        SettingsCache
	cacheTTL     time.Duration
	retrier      Retrier
	logger       zerolog.Logger
}

// NewSettingsUseCase creates a new SettingsUseCase. cache may be nil.
func NewSettingsUseCase(
	settingsRepo SettingsRepository,
	cache SettingsCache,
	cacheTTL time.Duration,
	retrier Retrier,
	logger zerolog.Logger,
) *SettingsUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultSettingsCacheTTL
	}
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		retrier:      retrier,
		logger:       logger,
	}
}

// GetSettings returns the saved settings, or the defaults when nothing was saved yet.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn().Err(err).Msg("settings cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}

	uc.storeInCache(ctx, settings)

	return settings, nil
}

// UpdateSettingsInput represents a settings update. Nil fields keep their current value.
type UpdateSettingsInput struct {
	PartyName           *string
	Currency            *string
	FirmName            *string
	DefaultInterestRate *decimal.Decimal
	DefaultGracePeriod  *int
}

// UpdateSettings validates and saves a settings update.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	current, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		defaults := domain.DefaultSettings()
		current = &defaults
	} else if err != nil {
		return nil, err
	}

	updated := *current
	if input.PartyName != nil {
		updated.PartyName = strings.TrimSpace(*input.PartyName)
	}
	if input.Currency != nil {
		updated.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.FirmName != nil {
		updated.FirmName = strings.TrimSpace(*input.FirmName)
	}
	if input.DefaultInterestRate != nil {
		updated.DefaultInterestRate = *input.DefaultInterestRate
	}
	if input.DefaultGracePeriod != nil {
		updated.DefaultGracePeriod = *input.DefaultGracePeriod
	}

	if err := validateSettingsUpdate(&updated); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	opCtx, cancel := context.WithTimeout(ctx, DefaultOperationTimeout)
	defer cancel()

	if err := uc.retrier.Retry(opCtx, func() error {
		return uc.settingsRepo.Save(opCtx, &updated)
	}); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx); err != nil {
			uc.logger.Warn().Err(err).Msg("settings cache invalidation failed")
		}
	}
	uc.storeInCache(ctx, &updated)

	uc.logger.Info().
		Str("party_name", updated.PartyName).
		Str("interest_rate", updated.DefaultInterestRate.String()).
		Int("grace_period", updated.DefaultGracePeriod).
		Msg("settings updated")

	return &updated, nil
}

func (uc *SettingsUseCase) storeInCache(ctx context.Context, settings *domain.Settings) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, settings, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Msg("settings cache write failed")
	}
}

func validateSettingsUpdate(s *domain.Settings) error {
	if err := domain.ValidatePartyName(s.PartyName); err != nil {
		return err
	}
	if s.Currency == "" {
		return domain.NewValidationError("currency", "currency is required")
	}
	if err := domain.ValidateGracePeriod(s.DefaultGracePeriod); err != nil {
		return err
	}
	return domain.ValidateInterestRate(s.DefaultInterestRate)
}
