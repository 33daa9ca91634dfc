package repositories

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// CurrencyRepository defines persistence operations for currencies.
type CurrencyRepository interface {
	// SaveCurrency inserts a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// FindCurrencies lists all known currencies.
	FindCurrencies(ctx context.Context) ([]domain.Currency, error)
}
