package currency

import "strings"

// Quote provider identifiers are lower case; display codes are upper case.

// Fiats is the supported fiat set, in provider form
var Fiats = []string{"usd", "eur", "uah"}

// cryptoSymbols maps provider asset id to display symbol
var cryptoSymbols = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"tether":   "USDT",
}

// cryptoIDs is the reverse mapping, display symbol to provider asset id
var cryptoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
}

// Pivot identifiers for indirect conversions
const (
	// PivotAsset prices fiat-to-fiat conversions (provider quotes it against fiats directly)
	PivotAsset = "tether"

	// PivotFiat prices crypto-to-crypto conversions
	PivotFiat = "usd"
)

// IsFiat reports whether code belongs to the supported fiat set, case-insensitive
func IsFiat(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, f := range Fiats {
		if f == code {
			return true
		}
	}
	return false
}

// NormalizeFiat returns the provider form of a fiat code
func NormalizeFiat(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ResolveCrypto maps a display symbol to its provider asset id, case-insensitive
func ResolveCrypto(symbol string) (string, bool) {
	id, ok := cryptoIDs[strings.ToUpper(strings.TrimSpace(symbol))]
	return id, ok
}

// SymbolFor returns the display symbol for a provider asset id
func SymbolFor(assetID string) string {
	if sym, ok := cryptoSymbols[strings.ToLower(assetID)]; ok {
		return sym
	}
	return strings.ToUpper(assetID)
}

// FiatCodes returns the fiat option list in display form
func FiatCodes() []string {
	codes := make([]string, len(Fiats))
	for i, f := range Fiats {
		codes[i] = strings.ToUpper(f)
	}
	return codes
}

// CryptoCodes returns the crypto option list in display form
func CryptoCodes() []string {
	return []string{"BTC", "ETH", "USDT"}
}
