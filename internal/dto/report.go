package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// ReportSummaryResponse represents the spending summary report response.
// All amounts are in the base currency, rounded to 2 decimal places.
type ReportSummaryResponse struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	AverageExpense decimal.Decimal `json:"average_expense"`
	MaxExpense     decimal.Decimal `json:"max_expense"`
}

// MonthlyReportResponse represents the monthly breakdown report response,
// keyed by YYYY-MM month.
type MonthlyReportResponse struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Months       map[string]decimal.Decimal `json:"months"`
}

// ToReportSummaryResponse converts a domain summary to a DTO response.
func ToReportSummaryResponse(summary *domain.ReportSummary) ReportSummaryResponse {
	return ReportSummaryResponse{
		BaseCurrency:   summary.BaseCurrency,
		TotalSpent:     summary.TotalSpent,
		AverageExpense: summary.AverageExpense,
		MaxExpense:     summary.MaxExpense,
	}
}

// ToMonthlyReportResponse converts a domain monthly breakdown to a DTO response.
func ToMonthlyReportResponse(breakdown domain.MonthlyBreakdown, baseCurrency string) MonthlyReportResponse {
	return MonthlyReportResponse{
		BaseCurrency: baseCurrency,
		Months:       breakdown,
	}
}
