package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// CurrencySvcFacade defines operations for managing currencies.
type CurrencySvcFacade interface {
	// CreateCurrency adds a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its 3-letter code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies lists all known currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
