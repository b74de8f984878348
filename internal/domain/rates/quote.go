package rates

import (
	"context"
	"strings"

	"konvert/pkg/errors"
)

// Quote maps asset id to a map of currency code to rate, e.g.
// {"bitcoin": {"usd": 50000}}. Quotes are ephemeral: fetched fresh per
// conversion, never cached.
type Quote map[string]map[string]float64

// Rate returns the rate for an asset/currency pair.
// Fails with errors.ErrMissingRate when the pair is absent from the quote.
func (q Quote) Rate(asset, vsCurrency string) (float64, error) {
	asset = strings.ToLower(asset)
	vsCurrency = strings.ToLower(vsCurrency)

	byCurrency, ok := q[asset]
	if !ok {
		return 0, errors.Wrapf(errors.ErrMissingRate, "asset %q", asset)
	}
	rate, ok := byCurrency[vsCurrency]
	if !ok {
		return 0, errors.Wrapf(errors.ErrMissingRate, "pair %q/%q", asset, vsCurrency)
	}
	return rate, nil
}

// Source fetches current exchange rates from a quote provider
type Source interface {
	Fetch(ctx context.Context, assets []string, vsCurrencies []string) (Quote, error)
}
