package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
)

func snapshot(rates map[string]string) *domain.RateSnapshot {
	m := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		m[code] = decimal.RequireFromString(rate)
	}
	return &domain.RateSnapshot{
		Base:      "INR",
		Rates:     m,
		FetchedAt: time.Now(),
	}
}

func TestRateSnapshot_ToBase(t *testing.T) {
	snap := snapshot(map[string]string{"INR": "1", "USD": "80", "EUR": "90"})

	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
		wantErr  error
	}{
		{
			name:     "base currency is identity",
			amount:   "123.45",
			currency: "INR",
			want:     "123.45",
		},
		{
			name:     "base currency is case insensitive",
			amount:   "100",
			currency: "inr",
			want:     "100",
		},
		{
			name:     "foreign currency converts by division",
			amount:   "80",
			currency: "USD",
			want:     "1",
		},
		{
			name:     "lowercase foreign code is uppercased before lookup",
			amount:   "90",
			currency: "eur",
			want:     "1",
		},
		{
			name:     "fractional result",
			amount:   "40",
			currency: "USD",
			want:     "0.5",
		},
		{
			name:     "unknown currency",
			amount:   "10",
			currency: "XYZ",
			wantErr:  apperrors.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := snap.ToBase(decimal.RequireFromString(tt.amount), tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestRateSnapshot_ToBase_ZeroRate(t *testing.T) {
	// A zero or negative rate would make the division blow up or flip sign;
	// it is treated the same as a missing entry.
	snap := snapshot(map[string]string{"BAD": "0"})

	_, err := snap.ToBase(decimal.NewFromInt(10), "BAD")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestRateSnapshot_ToBase_EmptyRates(t *testing.T) {
	snap := &domain.RateSnapshot{Base: "INR", Rates: map[string]decimal.Decimal{}}

	_, err := snap.ToBase(decimal.NewFromInt(10), "USD")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	// The base currency never needs a lookup
	got, err := snap.ToBase(decimal.NewFromInt(10), "INR")
	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(10)))
}

func TestExpense_MonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-05", "2024-01"},
		{"2024-12-31", "2024-12"},
		{"1999-07-01", "1999-07"},
	}

	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		assert.NoError(t, err)
		e := domain.Expense{Date: date}
		assert.Equal(t, tt.want, e.MonthKey())
	}
}

func TestMonthlyBreakdown_SortedKeys(t *testing.T) {
	b := domain.MonthlyBreakdown{
		"2024-02": decimal.NewFromInt(1),
		"2023-12": decimal.NewFromInt(2),
		"2024-01": decimal.NewFromInt(3),
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, b.SortedKeys())
}
