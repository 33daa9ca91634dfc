package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReportSummary holds the headline figures of a user's spending, all in the
// base currency and rounded to 2 decimal places.
type ReportSummary struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	AverageExpense decimal.Decimal `json:"averageExpense"`
	MaxExpense     decimal.Decimal `json:"maxExpense"`
}

// MonthlyBreakdown maps a YYYY-MM month key to the summed base-currency
// amount for that month, rounded to 2 decimal places.
type MonthlyBreakdown map[string]decimal.Decimal

// SortedKeys returns the month keys in ascending order. The YYYY-MM format
// makes lexicographic order chronological.
func (m MonthlyBreakdown) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
