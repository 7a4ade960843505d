package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application defaults used until settings are saved.
const (
	DefaultGracePeriodDays = 15
	DefaultInterestRate    = "18"
	DefaultCurrency        = "INR"
	DefaultFirmName        = "H.S. TRADERS"
)

// Settings is the single-party configuration of the ledger.
type Settings struct {
	UpdatedAt           time.Time
	PartyName           string
	Currency            string
	FirmName            string
	DefaultInterestRate decimal.Decimal
	DefaultGracePeriod  int
}

// DefaultSettings returns settings with no party and the stock grace period and rate.
func DefaultSettings() Settings {
	return Settings{
		Currency:            DefaultCurrency,
		FirmName:            DefaultFirmName,
		DefaultInterestRate: decimal.RequireFromString(DefaultInterestRate),
		DefaultGracePeriod:  DefaultGracePeriodDays,
	}
}

// Validate checks that the settings are complete enough to run a calculation.
func (s Settings) Validate() error {
	if err := ValidatePartyName(s.PartyName); err != nil {
		return err
	}

	if err := ValidateGracePeriod(s.DefaultGracePeriod); err != nil {
		return NewConfigurationError("default_grace_period", err.Error())
	}

	if err := ValidateInterestRate(s.DefaultInterestRate); err != nil {
		return NewConfigurationError("default_interest_rate", err.Error())
	}

	return nil
}
