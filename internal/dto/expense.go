package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
// Date is a calendar date without time-of-day semantics. Amount is a pointer
// so that a zero amount stays representable: required on a pointer checks
// presence, not non-zeroness.
type CreateExpenseRequest struct {
	Description string           `json:"description" binding:"required,max=500"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Currency    string           `json:"currency" binding:"required,currencycode"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateExpenseRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" binding:"omitempty,currencycode"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// ExpenseResponse is the public representation of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        string          `json:"date"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to its public representation.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Amount:      e.Amount,
		Currency:    e.CurrencyCode,
		Date:        e.Date.Format("2006-01-02"),
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to the list response.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: out}
}
