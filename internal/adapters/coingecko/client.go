package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"konvert/internal/domain/rates"
	"konvert/internal/metrics"
	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

// DefaultBaseURL is the CoinGecko simple price endpoint
const DefaultBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// Config contains CoinGecko client configuration
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

// Client fetches current exchange rates from CoinGecko.
// Every call issues a fresh request, nothing is cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a new CoinGecko client
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		log: log.With("component", "coingecko_client"),
	}
}

// Fetch requests rates for all asset/currency pairs in one call.
// Identifiers are lower-cased because the provider is case-sensitive.
// A failed fetch surfaces immediately, no retry.
func (c *Client) Fetch(ctx context.Context, assets []string, vsCurrencies []string) (quote rates.Quote, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordQuoteFetch(time.Since(start), err)
	}()

	query := url.Values{}
	query.Set("ids", strings.ToLower(strings.Join(assets, ",")))
	query.Set("vs_currencies", strings.ToLower(strings.Join(vsCurrencies, ",")))

	reqURL := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create CoinGecko request")
	}

	req.Header.Set("User-Agent", "konvert-bot/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrQuoteUnavailable, "CoinGecko request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Wrapf(errors.ErrQuoteUnavailable,
			"CoinGecko returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, errors.Wrapf(errors.ErrQuoteUnavailable, "decode CoinGecko response: %v", err)
	}

	c.log.Debugw("Fetched quote",
		"assets", fmt.Sprintf("%v", assets),
		"vs_currencies", fmt.Sprintf("%v", vsCurrencies),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return quote, nil
}
