package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/interest"
	"github.com/hstraders/interestledger/internal/report"
)

// InterestUseCase runs interest calculations over the stored ledger.
type InterestUseCase struct {
	voucherRepo VoucherRepository
	settings    SettingsProvider
	metrics     *metrics.Metrics
	logger      zerolog.Logger
	today       func() domain.Date
}

// NewInterestUseCase creates a new InterestUseCase.
func NewInterestUseCase(
	voucherRepo VoucherRepository,
	settings SettingsProvider,
	metrics *metrics.Metrics,
	logger zerolog.Logger,
) *InterestUseCase {
	return &InterestUseCase{
		voucherRepo: voucherRepo,
		settings:    settings,
		metrics:     metrics,
		logger:      logger,
		today:       domain.Today,
	}
}

// WithClock overrides the source of the default as-of date.
func (uc *InterestUseCase) WithClock(today func() domain.Date) *InterestUseCase {
	uc.today = today
	return uc
}

// CalculateInput represents input for a calculation. Zero or nil fields fall
// back to today and the saved settings.
type CalculateInput struct {
	AsOfDate     domain.Date
	GracePeriod  *int
	InterestRate *decimal.Decimal
}

// Calculate computes interest for every stored voucher.
func (uc *InterestUseCase) Calculate(ctx context.Context, input CalculateInput) (*interest.Result, error) {
	start := time.Now()

	res, err := uc.calculate(ctx, input)
	if err != nil {
		uc.recordError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CalculationsTotal.Inc()
		uc.metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	}

	uc.logger.Info().
		Str("party_name", res.PartyName).
		Str("as_of", res.AsOfDate.String()).
		Int("debits", len(res.Settlements)).
		Int("credits", len(res.Credits)).
		Str("total_interest", res.TotalInterest.StringFixed(2)).
		Str("balance", res.Balance().StringFixed(2)).
		Dur("took", time.Since(start)).
		Msg("interest calculated")

	return res, nil
}

// Statement computes interest and lays the result out as a statement.
func (uc *InterestUseCase) Statement(ctx context.Context, input CalculateInput) (report.Statement, *interest.Result, error) {
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return report.Statement{}, nil, err
	}

	res, err := uc.Calculate(ctx, input)
	if err != nil {
		return report.Statement{}, nil, err
	}

	return report.BuildStatement(res, report.Options{FirmName: settings.FirmName}), res, nil
}

// Snapshot calculates interest as of today and publishes the receivable gauges.
func (uc *InterestUseCase) Snapshot(ctx context.Context) error {
	res, err := uc.Calculate(ctx, CalculateInput{})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.SnapshotRuns.WithLabelValues("failed").Inc()
		}
		return err
	}

	if uc.metrics != nil {
		uc.metrics.InterestReceivable.Set(res.TotalInterest.InexactFloat64())
		uc.metrics.OutstandingBalance.Set(res.Outstanding().InexactFloat64())
		uc.metrics.UnappliedCredits.Set(totalUnapplied(res).InexactFloat64())
		uc.metrics.SnapshotRuns.WithLabelValues("ok").Inc()
	}

	return nil
}

func (uc *InterestUseCase) calculate(ctx context.Context, input CalculateInput) (*interest.Result, error) {
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidatePartyName(settings.PartyName); err != nil {
		return nil, err
	}

	params, err := uc.resolveParams(settings, input)
	if err != nil {
		return nil, err
	}

	stored, err := uc.voucherRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, domain.ErrNoVouchers
	}

	vouchers := make([]domain.Voucher, len(stored))
	for i, v := range stored {
		vouchers[i] = *v
	}

	return interest.Calculate(vouchers, params)
}

func (uc *InterestUseCase) resolveParams(settings *domain.Settings, input CalculateInput) (interest.Params, error) {
	params := interest.Params{
		PartyName:    settings.PartyName,
		AsOfDate:     input.AsOfDate,
		GracePeriod:  settings.DefaultGracePeriod,
		InterestRate: settings.DefaultInterestRate,
	}

	if params.AsOfDate.IsZero() {
		params.AsOfDate = uc.today()
	}
	if input.GracePeriod != nil {
		params.GracePeriod = *input.GracePeriod
	}
	if input.InterestRate != nil {
		params.InterestRate = *input.InterestRate
	}

	if err := domain.ValidateGracePeriod(params.GracePeriod); err != nil {
		return interest.Params{}, err
	}
	if err := domain.ValidateInterestRate(params.InterestRate); err != nil {
		return interest.Params{}, err
	}

	return params, nil
}

func (uc *InterestUseCase) recordError(err error) {
	kind := errorKind(err)

	if uc.metrics != nil {
		uc.metrics.CalculationErrors.WithLabelValues(kind).Inc()
	}

	event := uc.logger.Warn()
	if kind == "internal" {
		event = uc.logger.Error()
	}
	event.Err(err).Str("kind", kind).Msg("interest calculation failed")
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConfiguration):
		return "configuration"
	case errors.Is(err, domain.ErrNoVouchers):
		return "no_vouchers"
	default:
		return "internal"
	}
}

func totalUnapplied(res *interest.Result) decimal.Decimal {
	total := decimal.Zero
	for _, c := range res.UnappliedCredits {
		total = total.Add(c.Unapplied)
	}
	return total
}
