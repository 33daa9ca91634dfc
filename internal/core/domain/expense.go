package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense owned by a user.
// Amount is kept in the currency it was spent in; reports normalize it
// to the base currency on the fly.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	OwnerUserID  string          `json:"ownerUserID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"` // 3-letter code, stored uppercase
	Date         time.Time       `json:"date"`         // calendar date, no time-of-day semantics
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// MonthKey returns the YYYY-MM bucket key for the expense's date.
func (e *Expense) MonthKey() string {
	return e.Date.Format("2006-01")
}
