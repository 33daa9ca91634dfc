package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
)

const dateLayout = "2006-01-02"

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo     portsrepo.ExpenseRepository
	currencyService portssvc.CurrencySvcFacade
}

// NewExpenseService creates a new expense service. The currency service is
// used to reject expenses in currencies the application does not know.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, currencyService portssvc.CurrencySvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:     expenseRepo,
		currencyService: currencyService,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) validateCurrency(ctx context.Context, code string) (string, error) {
	code = strings.ToUpper(code)
	if _, err := s.currencyService.GetCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, code)
		}
		return "", fmt.Errorf("failed to validate currency %q: %w", code, err)
	}
	return code, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	currencyCode, err := s.validateCurrency(ctx, req.Currency)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		OwnerUserID:  userID,
		Description:  req.Description,
		Amount:       *req.Amount,
		CurrencyCode: currencyCode,
		Date:         date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("currency", expense.CurrencyCode),
	)
	return &expense, nil
}

// getOwnedExpense fetches an expense and verifies it belongs to the user.
// A foreign expense is reported as not found rather than forbidden to avoid
// leaking the existence of other users' records.
func (s *expenseService) getOwnedExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense.OwnerUserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error) {
	return s.getOwnedExpense(ctx, userID, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpensesByOwner(ctx, userID, portsrepo.ListExpensesFilter{
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.getOwnedExpense(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Currency != nil {
		currencyCode, err := s.validateCurrency(ctx, *req.Currency)
		if err != nil {
			return nil, err
		}
		expense.CurrencyCode = currencyCode
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		expense.Date = date
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense in service: %w", err)
	}

	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	if _, err := s.getOwnedExpense(ctx, userID, expenseID); err != nil {
		return err
	}

	if err := s.expenseRepo.MarkExpenseDeleted(ctx, expenseID, time.Now(), userID); err != nil {
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
