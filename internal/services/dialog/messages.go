package dialog

import (
	"fmt"
	"strings"

	"konvert/internal/domain/currency"
	"konvert/internal/domain/deposit"
)

// Main menu button labels. Mode selection matches on the exact label.
const (
	labelFiatToCrypto   = "Fiat ➝ Crypto"
	labelCryptoToFiat   = "Crypto ➝ Fiat"
	labelFiatToFiat     = "Fiat ➝ Fiat"
	labelCryptoToCrypto = "Crypto ➝ Crypto"
	labelDeposit        = "Crypto deposit calculator"

	labelContinue = "🔄 Continue"
	labelStop     = "⏹ Stop"

	labelPlanFixed    = "Fixed"
	labelPlanFlexible = "Flexible"
)

const (
	msgMainMenu        = "👋 Welcome! Choose a conversion mode or the calculator:"
	msgChooseMode      = "Choose a mode:"
	msgEnterFiatAmount = "Enter the amount in fiat (number only):"
	msgEnterCryptoAmt  = "Enter the amount in crypto (number only):"
	msgSourceFiat      = "Choose the source fiat currency:"
	msgTargetFiat      = "Choose the target fiat currency:"
	msgSourceCrypto    = "Choose the source cryptocurrency:"
	msgTargetCrypto    = "Choose the target cryptocurrency:"

	msgDepositAmount   = "Enter the deposit amount (for example: 1000):"
	msgDepositCurrency = "Choose the deposit currency:"
	msgDepositType     = "Choose the deposit type:"
	msgDepositTerm     = "Choose the deposit term:"

	msgInvalidAmount    = "⚠️ Enter a positive number"
	msgPickFiatButton   = "⚠️ Choose a currency from the buttons."
	msgPickCryptoButton = "⚠️ Choose a cryptocurrency from the buttons."
	msgPickTermButton   = "⚠️ Choose a term from the buttons."
	msgNoRateForTerm    = "⚠️ No rate is defined for that term."
	msgRatesUnavailable = "⚠️ Exchange rates are temporarily unavailable. Please try again."

	msgGoodbye = "✅ Thanks for using the bot! Send /start to begin again."
)

func mainMenuOptions() []string {
	return []string{
		labelFiatToCrypto,
		labelCryptoToFiat,
		labelFiatToFiat,
		labelCryptoToCrypto,
		labelDeposit,
	}
}

func continueOptions() []string {
	return []string{labelContinue, labelStop}
}

func fiatOptions() []string {
	return currency.FiatCodes()
}

func cryptoOptions() []string {
	return currency.CryptoCodes()
}

func depositCurrencyOptions() []string {
	return append([]string(nil), deposit.Currencies...)
}

func depositTypeOptions() []string {
	return []string{labelPlanFixed, labelPlanFlexible}
}

func depositTermOptions() []string {
	opts := make([]string, len(deposit.Terms))
	for i, t := range deposit.Terms {
		opts[i] = fmt.Sprintf("%d days", t)
	}
	return opts
}

func helpText() string {
	return "📖 How to use:\n\n" +
		"1️⃣ Pick a mode from the menu:\n" +
		"   • " + labelFiatToCrypto + "\n" +
		"   • " + labelCryptoToFiat + "\n" +
		"   • " + labelFiatToFiat + "\n" +
		"   • " + labelCryptoToCrypto + "\n" +
		"   • " + labelDeposit + "\n\n" +
		"2️⃣ Enter a number (the amount).\n" +
		"3️⃣ Pick a currency or plan with the buttons.\n\n" +
		"💱 Fiat: " + strings.Join(currency.FiatCodes(), ", ") + "\n" +
		"💰 Crypto: " + strings.Join(currency.CryptoCodes(), ", ")
}
