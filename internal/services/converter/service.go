package converter

import (
	"context"

	"github.com/shopspring/decimal"

	"konvert/internal/domain/currency"
	"konvert/internal/domain/rates"
	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

// Service computes currency conversions against a live quote source.
// Amounts are decimals; provider rates arrive as floats and are converted
// once at the boundary.
type Service struct {
	source rates.Source
	log    *logger.Logger
}

// NewService creates a new conversion service
func NewService(source rates.Source, log *logger.Logger) *Service {
	return &Service{
		source: source,
		log:    log.With("service", "converter"),
	}
}

// FiatToCrypto converts a fiat amount into a crypto asset.
// The provider rate means "1 crypto unit = rate fiat units".
func (s *Service) FiatToCrypto(ctx context.Context, amount decimal.Decimal, fiat, crypto string) (decimal.Decimal, error) {
	quote, err := s.source.Fetch(ctx, []string{crypto}, []string{fiat})
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, err := quote.Rate(crypto, fiat)
	if err != nil {
		return decimal.Decimal{}, err
	}

	rateDec := decimal.NewFromFloat(rate)
	if rateDec.IsZero() {
		return decimal.Decimal{}, errors.Wrapf(errors.ErrMissingRate, "zero rate for %q/%q", crypto, fiat)
	}

	return amount.Div(rateDec), nil
}

// CryptoToFiat converts a crypto amount into a fiat currency
func (s *Service) CryptoToFiat(ctx context.Context, amount decimal.Decimal, crypto, fiat string) (decimal.Decimal, error) {
	quote, err := s.source.Fetch(ctx, []string{crypto}, []string{fiat})
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, err := quote.Rate(crypto, fiat)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return amount.Mul(decimal.NewFromFloat(rate)), nil
}

// FiatToFiat converts between two fiat currencies, pivoting through a stable
// asset the provider quotes against both. One fetch covers both legs.
func (s *Service) FiatToFiat(ctx context.Context, amount decimal.Decimal, fromFiat, toFiat string) (decimal.Decimal, error) {
	quote, err := s.source.Fetch(ctx, []string{currency.PivotAsset}, []string{fromFiat, toFiat})
	if err != nil {
		return decimal.Decimal{}, err
	}

	fromRate, err := quote.Rate(currency.PivotAsset, fromFiat)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toRate, err := quote.Rate(currency.PivotAsset, toFiat)
	if err != nil {
		return decimal.Decimal{}, err
	}

	fromDec := decimal.NewFromFloat(fromRate)
	if fromDec.IsZero() {
		return decimal.Decimal{}, errors.Wrapf(errors.ErrMissingRate, "zero rate for %q", fromFiat)
	}

	inPivot := amount.Div(fromDec)
	return inPivot.Mul(decimal.NewFromFloat(toRate)), nil
}

// CryptoToCrypto converts between two crypto assets, pivoting through a
// reference fiat. One fetch covers both assets.
func (s *Service) CryptoToCrypto(ctx context.Context, amount decimal.Decimal, fromCrypto, toCrypto string) (decimal.Decimal, error) {
	quote, err := s.source.Fetch(ctx, []string{fromCrypto, toCrypto}, []string{currency.PivotFiat})
	if err != nil {
		return decimal.Decimal{}, err
	}

	fromRate, err := quote.Rate(fromCrypto, currency.PivotFiat)
	if err != nil {
		return decimal.Decimal{}, err
	}
	toRate, err := quote.Rate(toCrypto, currency.PivotFiat)
	if err != nil {
		return decimal.Decimal{}, err
	}

	toDec := decimal.NewFromFloat(toRate)
	if toDec.IsZero() {
		return decimal.Decimal{}, errors.Wrapf(errors.ErrMissingRate, "zero rate for %q", toCrypto)
	}

	inFiat := amount.Mul(decimal.NewFromFloat(fromRate))
	return inFiat.Div(toDec), nil
}
