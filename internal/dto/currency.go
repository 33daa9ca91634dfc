package dto

import "github.com/spendtrack/spendtrack_backend/internal/core/domain"

// CreateCurrencyRequest defines the data needed to add a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Symbol       string `json:"symbol" binding:"required,max=8"`
	Name         string `json:"name" binding:"required,max=100"`
}

// CurrencyResponse is the public representation of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse converts a domain.Currency to its public representation.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// ToListCurrenciesResponse converts a slice of domain.Currency to responses.
func ToListCurrenciesResponse(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = ToCurrencyResponse(&currencies[i])
	}
	return out
}
