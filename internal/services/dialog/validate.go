package dialog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"konvert/internal/domain/currency"
	"konvert/internal/domain/deposit"
	"konvert/pkg/errors"
)

// ParseAmount parses a user-entered amount. Comma is accepted as the
// decimal separator. The amount must be strictly positive.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(errors.ErrInvalidAmount, "%q", text)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, errors.Wrapf(errors.ErrInvalidAmount, "%q is not positive", text)
	}
	return amount, nil
}

// ParseFiat validates a fiat code against the supported set and returns
// its provider form.
func ParseFiat(text string) (string, error) {
	if !currency.IsFiat(text) {
		return "", errors.Wrapf(errors.ErrInvalidSelection, "unknown fiat %q", text)
	}
	return currency.NormalizeFiat(text), nil
}

// ParseCrypto validates a crypto symbol and resolves it to the provider
// asset id.
func ParseCrypto(text string) (string, error) {
	id, ok := currency.ResolveCrypto(text)
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidSelection, "unknown crypto %q", text)
	}
	return id, nil
}

// ParseDepositCurrency validates a deposit currency choice
func ParseDepositCurrency(text string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(text))
	if !deposit.IsCurrency(code) {
		return "", errors.Wrapf(errors.ErrInvalidSelection, "unknown deposit currency %q", text)
	}
	return code, nil
}

// ParseTermDays parses the leading integer token of a term answer
// ("90 days" yields 90).
func ParseTermDays(text string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0, errors.Wrapf(errors.ErrInvalidSelection, "empty term")
	}

	days, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidSelection, "term %q", text)
	}
	return days, nil
}
