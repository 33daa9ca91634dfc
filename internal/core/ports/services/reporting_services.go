package services

import (
	"context"

	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

// RateProviderSvc supplies exchange-rate snapshots for a base currency.
// Implementations cache the snapshot per base for the process lifetime; a
// failed fetch is never cached.
type RateProviderSvc interface {
	GetRates(ctx context.Context, base string) (*domain.RateSnapshot, error)
}

// ReportingSvcFacade produces base-currency-normalized spending reports.
// A report that cannot obtain rates fails with apperrors.ErrRateFetch; a
// report containing a record in an unconvertible currency still succeeds in
// lenient mode, with that record valued at zero.
type ReportingSvcFacade interface {
	// Summary returns total, average and max spending in the base currency.
	Summary(ctx context.Context, userID string) (*domain.ReportSummary, error)

	// Monthly returns per-month spending totals in the base currency.
	Monthly(ctx context.Context, userID string) (domain.MonthlyBreakdown, error)
}
