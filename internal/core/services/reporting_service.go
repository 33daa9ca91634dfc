package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portsrepo "github.com/spendtrack/spendtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
)

// reportMoneyPlaces is the number of decimal places report figures are
// rounded to, half away from zero.
const reportMoneyPlaces = 2

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepository
	rateProvider portssvc.RateProviderSvc
	baseCurrency string
	strictMode   bool
}

// ReportingOption configures the reporting service.
type ReportingOption func(*reportingService)

// WithBaseCurrency sets the currency all report figures are expressed in.
func WithBaseCurrency(code string) ReportingOption {
	return func(s *reportingService) { s.baseCurrency = code }
}

// WithStrictCurrencyMode makes reports fail on an unconvertible currency
// instead of valuing the record at zero.
func WithStrictCurrencyMode(strict bool) ReportingOption {
	return func(s *reportingService) { s.strictMode = strict }
}

// NewReportingService creates a new reporting service. By default reports
// are expressed in INR and unconvertible currencies are tolerated.
func NewReportingService(expenseRepo portsrepo.ExpenseRepository, rateProvider portssvc.RateProviderSvc, opts ...ReportingOption) portssvc.ReportingSvcFacade {
	s := &reportingService{
		expenseRepo:  expenseRepo,
		rateProvider: rateProvider,
		baseCurrency: "INR",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadReportInputs fetches the user's expenses and a single rate snapshot
// shared by every conversion in the report. A rate fetch failure aborts the
// whole report.
func (s *reportingService) loadReportInputs(ctx context.Context, userID string) ([]domain.Expense, *domain.RateSnapshot, error) {
	expenses, err := s.expenseRepo.FindExpensesByOwner(ctx, userID, portsrepo.ListExpensesFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load expenses for report: %w", err)
	}

	snapshot, err := s.rateProvider.GetRates(ctx, s.baseCurrency)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rates for report: %w", err)
	}
	return expenses, snapshot, nil
}

// normalize converts one expense to the base currency. In lenient mode an
// expense whose currency has no usable rate counts as zero and is logged;
// in strict mode it fails the report.
func (s *reportingService) normalize(ctx context.Context, snapshot *domain.RateSnapshot, expense domain.Expense) (decimal.Decimal, error) {
	converted, err := snapshot.ToBase(expense.Amount, expense.CurrencyCode)
	if err == nil {
		return converted, nil
	}
	if !errors.Is(err, apperrors.ErrUnknownCurrency) {
		return decimal.Zero, err
	}
	if s.strictMode {
		return decimal.Zero, fmt.Errorf("expense %s: %w", expense.ExpenseID, err)
	}
	s.LogWarn(ctx, "No exchange rate for expense currency, counting as zero",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("currency", expense.CurrencyCode),
		slog.String("base", snapshot.Base),
	)
	return decimal.Zero, nil
}

func (s *reportingService) Summary(ctx context.Context, userID string) (*domain.ReportSummary, error) {
	expenses, snapshot, err := s.loadReportInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReportSummary{
		BaseCurrency:   s.baseCurrency,
		TotalSpent:     decimal.Zero,
		AverageExpense: decimal.Zero,
		MaxExpense:     decimal.Zero,
	}
	if len(expenses) == 0 {
		return summary, nil
	}

	total := decimal.Zero
	max := decimal.Zero
	for _, expense := range expenses {
		converted, err := s.normalize(ctx, snapshot, expense)
		if err != nil {
			return nil, err
		}
		total = total.Add(converted)
		if converted.GreaterThan(max) {
			max = converted
		}
	}

	count := decimal.NewFromInt(int64(len(expenses)))
	summary.TotalSpent = total.Round(reportMoneyPlaces)
	summary.AverageExpense = total.Div(count).Round(reportMoneyPlaces)
	summary.MaxExpense = max.Round(reportMoneyPlaces)
	return summary, nil
}

func (s *reportingService) Monthly(ctx context.Context, userID string) (domain.MonthlyBreakdown, error) {
	expenses, snapshot, err := s.loadReportInputs(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		converted, err := s.normalize(ctx, snapshot, expense)
		if err != nil {
			return nil, err
		}
		month := expense.MonthKey()
		totals[month] = totals[month].Add(converted)
	}

	breakdown := make(domain.MonthlyBreakdown, len(totals))
	for month, total := range totals {
		breakdown[month] = total.Round(reportMoneyPlaces)
	}
	return breakdown, nil
}
