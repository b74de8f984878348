package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konvert/pkg/errors"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"100", "100", true},
		{"0.5", "0.5", true},
		{"12,5", "12.5", true}, // comma as decimal separator
		{" 42 ", "42", true},
		{"0", "", false},
		{"-10", "", false},
		{"abc", "", false},
		{"", "", false},
		{"10 usd", "", false},
	}

	for _, tt := range tests {
		amount, err := ParseAmount(tt.input)
		if !tt.ok {
			assert.True(t, errors.Is(err, errors.ErrInvalidAmount), "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, amount.String(), "input %q", tt.input)
	}
}

func TestParseFiat(t *testing.T) {
	for _, input := range []string{"usd", "USD", "Usd", " eur ", "UAH"} {
		_, err := ParseFiat(input)
		assert.NoError(t, err, "input %q", input)
	}

	fiat, err := ParseFiat("EUR")
	require.NoError(t, err)
	assert.Equal(t, "eur", fiat)

	_, err = ParseFiat("gbp")
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection))
}

func TestParseCrypto(t *testing.T) {
	id, err := ParseCrypto("BTC")
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", id)

	id, err = ParseCrypto("eth")
	require.NoError(t, err)
	assert.Equal(t, "ethereum", id)

	id, err = ParseCrypto(" usdt ")
	require.NoError(t, err)
	assert.Equal(t, "tether", id)

	_, err = ParseCrypto("DOGE")
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection))
}

func TestParseDepositCurrency(t *testing.T) {
	code, err := ParseDepositCurrency("usdt")
	require.NoError(t, err)
	assert.Equal(t, "USDT", code)

	_, err = ParseDepositCurrency("EUR")
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection))
}

func TestParseTermDays(t *testing.T) {
	days, err := ParseTermDays("90 days")
	require.NoError(t, err)
	assert.Equal(t, 90, days)

	days, err = ParseTermDays("30")
	require.NoError(t, err)
	assert.Equal(t, 30, days)

	_, err = ParseTermDays("soon")
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection))

	_, err = ParseTermDays("")
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection))
}
