package deposit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

func TestFixed(t *testing.T) {
	svc := NewService(logger.Get())

	// 1000 USDT for 90 days at 14.92% -> 1000 * 0.1492 * (90/365)
	res, err := svc.Fixed(decimal.NewFromInt(1000), "USDT", 90)
	require.NoError(t, err)

	assert.Equal(t, 0.1492, res.APR)
	assert.Equal(t, "36.79", res.Income.StringFixed(2))
	assert.Equal(t, "1036.79", res.Total.StringFixed(2))
}

func TestFixedAllTerms(t *testing.T) {
	svc := NewService(logger.Get())
	amount := decimal.NewFromInt(100)

	for _, currency := range []string{"USDT", "BTC", "ETH"} {
		for _, term := range []int{30, 90, 180, 360} {
			res, err := svc.Fixed(amount, currency, term)
			require.NoError(t, err, "%s/%d", currency, term)
			assert.True(t, res.Income.IsPositive(), "%s/%d income", currency, term)
			assert.True(t, res.Total.GreaterThan(amount), "%s/%d total", currency, term)
		}
	}
}

func TestFixedNoRateForTerm(t *testing.T) {
	svc := NewService(logger.Get())

	_, err := svc.Fixed(decimal.NewFromInt(1000), "USDT", 45)
	assert.True(t, errors.Is(err, errors.ErrNoRateForTerm))

	_, err = svc.Fixed(decimal.NewFromInt(1000), "DOGE", 90)
	assert.True(t, errors.Is(err, errors.ErrNoRateForTerm))
}

func TestFlexible(t *testing.T) {
	svc := NewService(logger.Get())

	// 500 BTC at 1.56% -> income 7.80, total 507.80
	res := svc.Flexible(decimal.NewFromInt(500), "BTC")

	assert.Equal(t, 0.0156, res.APR)
	assert.Equal(t, "7.80", res.Income.StringFixed(2))
	assert.Equal(t, "507.80", res.Total.StringFixed(2))
}

func TestFlexibleDefaultRate(t *testing.T) {
	// Unknown currency falls back to the default rate
	svc := NewService(logger.Get())

	res := svc.Flexible(decimal.NewFromInt(100), "DOGE")

	assert.Equal(t, 0.05, res.APR)
	assert.Equal(t, "5.00", res.Income.StringFixed(2))
}
