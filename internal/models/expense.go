package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense row as stored in the database.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	OwnerUserID  string          `db:"owner_user_id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Date         time.Time       `db:"date"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
