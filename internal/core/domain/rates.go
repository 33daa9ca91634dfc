package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
)

// RateSnapshot is a single fetched exchange-rate mapping, cached for the
// process lifetime. Rates are units of foreign currency per 1 unit of the
// base currency, so foreign amounts convert to base by division.
type RateSnapshot struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"` // keyed by uppercase currency code
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// ToBase converts an amount in the given currency to the snapshot's base
// currency. The base currency converts to itself without a rate lookup.
// A currency with no usable rate returns apperrors.ErrUnknownCurrency.
func (s *RateSnapshot) ToBase(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == strings.ToUpper(s.Base) {
		return amount, nil
	}

	rate, ok := s.Rates[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no rate for %q against %s", apperrors.ErrUnknownCurrency, code, s.Base)
	}

	return amount.Div(rate), nil
}
