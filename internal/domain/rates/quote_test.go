package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konvert/pkg/errors"
)

func TestQuoteRate(t *testing.T) {
	quote := Quote{"bitcoin": {"usd": 50000}}

	rate, err := quote.Rate("bitcoin", "usd")
	require.NoError(t, err)
	assert.Equal(t, float64(50000), rate)

	// Lookup normalizes case
	rate, err = quote.Rate("Bitcoin", "USD")
	require.NoError(t, err)
	assert.Equal(t, float64(50000), rate)
}

func TestQuoteRateMissing(t *testing.T) {
	quote := Quote{"bitcoin": {"usd": 50000}}

	_, err := quote.Rate("ethereum", "usd")
	assert.True(t, errors.Is(err, errors.ErrMissingRate))

	_, err = quote.Rate("bitcoin", "eur")
	assert.True(t, errors.Is(err, errors.ErrMissingRate))

	_, err = Quote{}.Rate("bitcoin", "usd")
	assert.True(t, errors.Is(err, errors.ErrMissingRate))
}
