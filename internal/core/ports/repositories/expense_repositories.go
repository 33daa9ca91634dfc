package repositories

import (
	"context"
	"time"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// ListExpensesFilter narrows the expenses returned by FindExpensesByOwner.
// Search matches the description, the amount rendered as text, and the date
// rendered as YYYY-MM-DD, all case-insensitively. Zero values mean "no
// filter": an empty Search matches everything and a non-positive Limit
// returns all rows. Paged callers supply their own Limit.
type ListExpensesFilter struct {
	Search string
	Limit  int
	Offset int
}

// ExpenseRepository defines persistence operations for expenses.
// This is the Expense Store collaborator of the reporting core: reports only
// ever need FindExpensesByOwner.
type ExpenseRepository interface {
	// SaveExpense inserts a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves an expense by ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// FindExpensesByOwner lists a user's expenses, optionally filtered.
	FindExpensesByOwner(ctx context.Context, ownerUserID string, filter ListExpensesFilter) ([]domain.Expense, error)

	// UpdateExpense updates an existing expense's mutable fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// MarkExpenseDeleted soft deletes an expense.
	MarkExpenseDeleted(ctx context.Context, expenseID string, deletedAt time.Time, deletedBy string) error
}
