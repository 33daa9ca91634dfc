package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

// ExpenseSvcFacade defines the expense management operations.
// All operations are scoped to the requesting user: an expense is only ever
// visible to its owner.
type ExpenseSvcFacade interface {
	// CreateExpense records a new expense for the user.
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// GetExpenseByID retrieves one of the user's expenses.
	GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error)

	// ListExpenses lists the user's expenses with optional search and paging.
	ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.Expense, error)

	// UpdateExpense updates one of the user's expenses.
	UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense soft deletes one of the user's expenses.
	DeleteExpense(ctx context.Context, userID string, expenseID string) error
}
