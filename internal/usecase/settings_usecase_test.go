package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/usecase"
	"github.com/hstraders/interestledger/internal/usecase/mocks"
)

func TestSettingsUseCase_GetSettings_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettingsRepository(ctrl)
	cache := mocks.NewMockSettingsCache(ctrl)
	cache.EXPECT().Get(gomock.Any()).Return(&domain.Settings{PartyName: "ACME"}, nil)

	uc := usecase.NewSettingsUseCase(repo, cache, time.Minute, passthroughRetrier(ctrl), zerolog.Nop())

	s, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PartyName != "ACME" {
		t.Errorf("expected cached party, got %q", s.PartyName)
	}
}

func TestSettingsUseCase_GetSettings_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &domain.Settings{PartyName: "ACME", DefaultGracePeriod: 30, DefaultInterestRate: decimal.NewFromInt(12)}

	repo := mocks.NewMockSettingsRepository(ctrl)
	cache := mocks.NewMockSettingsCache(ctrl)
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any()).Return(nil, nil),
		repo.EXPECT().Get(gomock.Any()).Return(stored, nil),
		cache.EXPECT().Set(gomock.Any(), stored, time.Minute).Return(nil),
	)

	uc := usecase.NewSettingsUseCase(repo, cache, time.Minute, passthroughRetrier(ctrl), zerolog.Nop())

	s, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DefaultGracePeriod != 30 {
		t.Errorf("expected grace 30, got %d", s.DefaultGracePeriod)
	}
}

func TestSettingsUseCase_GetSettings_CacheErrorFallsBackToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettingsRepository(ctrl)
	cache := mocks.NewMockSettingsCache(ctrl)
	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	repo.EXPECT().Get(gomock.Any()).Return(&domain.Settings{PartyName: "ACME"}, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	uc := usecase.NewSettingsUseCase(repo, cache, time.Minute, passthroughRetrier(ctrl), zerolog.Nop())

	s, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PartyName != "ACME" {
		t.Errorf("expected party from repository, got %q", s.PartyName)
	}
}

func TestSettingsUseCase_GetSettings_DefaultsWhenNeverSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettingsRepository(ctrl)
	repo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrSettingsNotFound)

	uc := usecase.NewSettingsUseCase(repo, nil, 0, passthroughRetrier(ctrl), zerolog.Nop())

	s, err := uc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PartyName != "" {
		t.Errorf("expected no party, got %q", s.PartyName)
	}
	if s.DefaultGracePeriod != domain.DefaultGracePeriodDays {
		t.Errorf("expected default grace %d, got %d", domain.DefaultGracePeriodDays, s.DefaultGracePeriod)
	}
	if !s.DefaultInterestRate.Equal(decimal.NewFromInt(18)) {
		t.Errorf("expected default rate 18, got %s", s.DefaultInterestRate)
	}
}

func TestSettingsUseCase_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettingsRepository(ctrl)
	cache := mocks.NewMockSettingsCache(ctrl)

	repo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrSettingsNotFound)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.Settings) error {
		if s.PartyName != "ACME TRADING" {
			t.Errorf("expected trimmed party name, got %q", s.PartyName)
		}
		return nil
	})
	cache.EXPECT().Delete(gomock.Any()).Return(nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), 5*time.Minute).Return(nil)

	uc := usecase.NewSettingsUseCase(repo, cache, 0, passthroughRetrier(ctrl), zerolog.Nop())

	party := "  ACME TRADING "
	grace := 30
	s, err := uc.UpdateSettings(context.Background(), usecase.UpdateSettingsInput{
		PartyName:          &party,
		DefaultGracePeriod: &grace,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.DefaultGracePeriod != 30 {
		t.Errorf("expected grace 30, got %d", s.DefaultGracePeriod)
	}
	if !s.DefaultInterestRate.Equal(decimal.NewFromInt(18)) {
		t.Errorf("expected untouched default rate, got %s", s.DefaultInterestRate)
	}
	if s.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestSettingsUseCase_UpdateSettings_Invalid(t *testing.T) {
	blank := "   "
	negative := -1
	highRate := decimal.NewFromInt(101)
	party := "ACME"

	tests := []struct {
		name  string
		input usecase.UpdateSettingsInput
		want  error
	}{
		{"blank party name", usecase.UpdateSettingsInput{PartyName: &blank}, domain.ErrConfiguration},
		{"negative grace period", usecase.UpdateSettingsInput{PartyName: &party, DefaultGracePeriod: &negative}, domain.ErrValidation},
		{"rate above limit", usecase.UpdateSettingsInput{PartyName: &party, DefaultInterestRate: &highRate}, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockSettingsRepository(ctrl)
			repo.EXPECT().Get(gomock.Any()).Return(nil, domain.ErrSettingsNotFound)

			uc := usecase.NewSettingsUseCase(repo, nil, 0, passthroughRetrier(ctrl), zerolog.Nop())

			_, err := uc.UpdateSettings(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
