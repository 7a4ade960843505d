package interest

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/domain"
)

// Narration describes how the period's interest was computed, e.g.
// "16/01/2024 to 01/02/2024: 10000.00 × 18% × 16/365 = 78.90".
// Amounts are rounded for display only.
func (p Period) Narration(ratePercent decimal.Decimal) string {
	return fmt.Sprintf("%s to %s: %s × %s%% × %d/%d = %s",
		p.From.Format(domain.DisplayLayout),
		p.To.Format(domain.DisplayLayout),
		p.Principal.StringFixed(2),
		ratePercent.String(),
		p.Days,
		DaysPerYear,
		p.Interest.StringFixed(2),
	)
}
