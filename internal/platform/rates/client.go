package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client fetches exchange rates from an open exchange-rate HTTP API. The
// endpoint is expected to answer GET {baseURL}/latest?base={ISO} with a
// JSON body carrying a "rates" object keyed by ISO code.
type Client struct {
	baseURL    string
	baseCode   string
	httpClient *http.Client
}

// NewClient creates a rate provider client. baseCode is the currency the
// returned rates are expressed against, e.g. "USD".
func NewClient(baseURL, baseCode string) *Client {
	return &Client{
		baseURL:    baseURL,
		baseCode:   baseCode,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portssvc.ExchangeRateProvider = (*Client)(nil)

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the current rate for the given ISO 4217 code.
func (c *Client) FetchRate(ctx context.Context, isoCode string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s", c.baseURL, url.QueryEscape(c.baseCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate provider returned status %s", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := body.Rates[isoCode]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate provider has no rate for %s", isoCode)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("rate provider returned non-positive rate for %s", isoCode)
	}

	return rate, nil
}
