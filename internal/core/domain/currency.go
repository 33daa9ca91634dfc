package domain

// Currency represents a currency known to the application.
// Expenses reference currencies by their 3-letter code.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217 style code, e.g. "INR"
	Symbol       string `json:"symbol"`       // e.g. "₹"
	Name         string `json:"name"`         // e.g. "Indian Rupee"
	AuditFields
}
