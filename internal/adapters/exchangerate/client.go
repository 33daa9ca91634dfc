// Package exchangerate fetches currency exchange-rate snapshots from a
// remote rate service and caches them for the process lifetime.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	"github.com/spendtrack/spendtrack_backend/internal/core/domain"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
)

// Client fetches rate snapshots from an exchangerate-api style endpoint
// (GET {baseURL}/{base} returning {"base": ..., "rates": {code: rate}}).
//
// The first successful fetch per base currency is cached for the lifetime of
// the process and never refreshed. A singleflight group collapses concurrent
// first fetches so at most one outbound call happens per base. Failures are
// not cached.
type Client struct {
	baseURL    string
	httpClient *http.Client

	group     singleflight.Group
	mu        sync.RWMutex
	snapshots map[string]*domain.RateSnapshot
}

// Ensure Client implements the rate provider port
var _ portssvc.RateProviderSvc = (*Client)(nil)

// NewClient creates a Client. timeout bounds each outbound fetch.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		snapshots:  make(map[string]*domain.RateSnapshot),
	}
}

// GetRates returns the cached snapshot for the base currency, fetching it on
// first use. The cache is keyed by base so distinct bases never share data.
func (c *Client) GetRates(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	key := strings.ToUpper(strings.TrimSpace(base))
	if len(key) != 3 {
		return nil, fmt.Errorf("%w: invalid base currency %q", apperrors.ErrValidation, base)
	}

	c.mu.RLock()
	snap := c.snapshots[key]
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have populated the cache while we waited.
		c.mu.RLock()
		cached := c.snapshots[key]
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		fetched, err := c.fetch(ctx, key)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshots[key] = fetched
		c.mu.Unlock()

		middleware.GetLoggerFromCtx(ctx).Info("Exchange rate snapshot cached",
			slog.String("base", key),
			slog.Int("rate_count", len(fetched.Rates)),
		)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.RateSnapshot), nil
}

type ratesPayload struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) fetch(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	url := c.baseURL + "/" + base

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrRateFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from rate service", apperrors.ErrRateFetch, resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrRateFetch, err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate service returned no rates", apperrors.ErrRateFetch)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}

	return &domain.RateSnapshot{
		Base:      base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}
