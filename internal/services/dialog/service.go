package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"konvert/internal/domain/currency"
	"konvert/internal/domain/deposit"
	"konvert/internal/domain/session"
	"konvert/internal/metrics"
	depositservice "konvert/internal/services/deposit"
	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

// Converter computes currency conversions
type Converter interface {
	FiatToCrypto(ctx context.Context, amount decimal.Decimal, fiat, crypto string) (decimal.Decimal, error)
	CryptoToFiat(ctx context.Context, amount decimal.Decimal, crypto, fiat string) (decimal.Decimal, error)
	FiatToFiat(ctx context.Context, amount decimal.Decimal, fromFiat, toFiat string) (decimal.Decimal, error)
	CryptoToCrypto(ctx context.Context, amount decimal.Decimal, fromCrypto, toCrypto string) (decimal.Decimal, error)
}

// DepositCalculator computes deposit income
type DepositCalculator interface {
	Flexible(amount decimal.Decimal, currency string) depositservice.Result
	Fixed(amount decimal.Decimal, currency string, termDays int) (depositservice.Result, error)
}

// Service drives the per-user dialogue state machine. One entry point,
// Handle, maps (current state, input) to the next state and an outbound
// action. Messages from the same user are serialized by a per-user lock;
// different users proceed independently.
type Service struct {
	sessions  session.Store
	converter Converter
	deposits  DepositCalculator
	log       *logger.Logger

	mu        sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewService creates a new dialogue service
func NewService(sessions session.Store, conv Converter, dep DepositCalculator, log *logger.Logger) *Service {
	return &Service{
		sessions:  sessions,
		converter: conv,
		deposits:  dep,
		log:       log.With("service", "dialog"),
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// Handle processes one inbound message and returns the outbound action.
// Never returns an error: user mistakes re-prompt, provider failures
// surface as a notice with the state preserved.
func (s *Service) Handle(ctx context.Context, userID int64, text string) Action {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	text = strings.TrimSpace(text)

	sess, err := s.sessions.GetOrCreate(ctx, userID)
	if err != nil {
		s.log.Errorw("Failed to load session", "telegram_id", userID, "error", err)
		return Result(msgRatesUnavailable, nil)
	}

	metrics.MessagesHandled.WithLabelValues(string(sess.State)).Inc()

	// Global inputs work from any state.
	switch text {
	case "/start":
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgMainMenu, mainMenuOptions())

	case "/help":
		return Result(helpText(), nil)

	case labelStop, "/stop":
		if err := s.sessions.Delete(ctx, userID); err != nil {
			s.log.Errorw("Failed to delete session", "telegram_id", userID, "error", err)
		}
		return Result(msgGoodbye, nil)

	case labelContinue:
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgChooseMode, mainMenuOptions())
	}

	switch sess.State {
	case session.StateChoosingMode:
		return s.handleChoosingMode(ctx, sess, text)
	case session.StateEnteringAmount:
		return s.handleEnteringAmount(ctx, sess, text)
	case session.StateChoosingSourceFiat:
		return s.handleChoosingSourceFiat(ctx, sess, text)
	case session.StateChoosingTargetFiat:
		return s.handleChoosingTargetFiat(ctx, sess, text)
	case session.StateChoosingPayoutFiat:
		return s.handleChoosingPayoutFiat(ctx, sess, text)
	case session.StateChoosingSourceCrypto:
		return s.handleChoosingSourceCrypto(ctx, sess, text)
	case session.StateChoosingTargetCrypto:
		return s.handleChoosingTargetCrypto(ctx, sess, text)
	case session.StateDepositAmount:
		return s.handleDepositAmount(ctx, sess, text)
	case session.StateDepositCurrency:
		return s.handleDepositCurrency(ctx, sess, text)
	case session.StateDepositType:
		return s.handleDepositType(ctx, sess, text)
	case session.StateDepositTerm:
		return s.handleDepositTerm(ctx, sess, text)
	default:
		s.log.Warnw("Session in unknown state, resetting",
			"telegram_id", userID, "state", sess.State)
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgMainMenu, mainMenuOptions())
	}
}

// handleChoosingMode starts a conversion or deposit flow from the main menu
func (s *Service) handleChoosingMode(ctx context.Context, sess *session.Session, text string) Action {
	switch text {
	case labelFiatToCrypto:
		sess.Mode = session.ModeFiatToCrypto
		sess.State = session.StateEnteringAmount
		s.save(ctx, sess)
		return Prompt(msgEnterFiatAmount, nil)

	case labelCryptoToFiat:
		sess.Mode = session.ModeCryptoToFiat
		sess.State = session.StateEnteringAmount
		s.save(ctx, sess)
		return Prompt(msgEnterCryptoAmt, nil)

	case labelFiatToFiat:
		sess.Mode = session.ModeFiatToFiat
		sess.State = session.StateEnteringAmount
		s.save(ctx, sess)
		return Prompt(msgEnterFiatAmount, nil)

	case labelCryptoToCrypto:
		sess.Mode = session.ModeCryptoToCrypto
		sess.State = session.StateEnteringAmount
		s.save(ctx, sess)
		return Prompt(msgEnterCryptoAmt, nil)

	case labelDeposit:
		sess.State = session.StateDepositAmount
		s.save(ctx, sess)
		return Prompt(msgDepositAmount, nil)

	default:
		return Prompt(msgMainMenu, mainMenuOptions())
	}
}

// handleEnteringAmount stores the amount and routes to the first currency
// selection step of the chosen mode
func (s *Service) handleEnteringAmount(ctx context.Context, sess *session.Session, text string) Action {
	amount, err := ParseAmount(text)
	if err != nil {
		return Prompt(msgInvalidAmount, nil)
	}

	sess.Amount = amount

	switch sess.Mode {
	case session.ModeFiatToCrypto, session.ModeFiatToFiat:
		sess.State = session.StateChoosingSourceFiat
		s.save(ctx, sess)
		return Prompt(msgSourceFiat, fiatOptions())

	case session.ModeCryptoToFiat, session.ModeCryptoToCrypto:
		sess.State = session.StateChoosingSourceCrypto
		s.save(ctx, sess)
		return Prompt(msgSourceCrypto, cryptoOptions())

	default:
		// No mode set, the flow was never started properly
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgMainMenu, mainMenuOptions())
	}
}

// handleChoosingSourceFiat stores the source fiat and routes by mode
func (s *Service) handleChoosingSourceFiat(ctx context.Context, sess *session.Session, text string) Action {
	fiat, err := ParseFiat(text)
	if err != nil {
		return Prompt(msgPickFiatButton, fiatOptions())
	}

	sess.SourceFiat = fiat

	switch sess.Mode {
	case session.ModeFiatToCrypto:
		sess.State = session.StateChoosingSourceCrypto
		s.save(ctx, sess)
		return Prompt(msgTargetCrypto, cryptoOptions())

	case session.ModeFiatToFiat:
		sess.State = session.StateChoosingTargetFiat
		s.save(ctx, sess)
		return Prompt(msgTargetFiat, fiatOptions())

	default:
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgMainMenu, mainMenuOptions())
	}
}

// handleChoosingSourceCrypto handles the crypto selection step. For
// fiat-to-crypto this is the terminal step; for the other crypto modes it
// stores the source asset and advances.
func (s *Service) handleChoosingSourceCrypto(ctx context.Context, sess *session.Session, text string) Action {
	cryptoID, err := ParseCrypto(text)
	if err != nil {
		return Prompt(msgPickCryptoButton, cryptoOptions())
	}

	switch sess.Mode {
	case session.ModeFiatToCrypto:
		result, err := s.converter.FiatToCrypto(ctx, sess.Amount, sess.SourceFiat, cryptoID)
		metrics.RecordConversion(string(sess.Mode), err)
		if err != nil {
			return s.providerFailure(sess, err, cryptoOptions())
		}

		msg := fmt.Sprintf("%s %s = %s %s",
			sess.Amount, strings.ToUpper(sess.SourceFiat),
			result.StringFixed(6), currency.SymbolFor(cryptoID))
		sess.Reset()
		s.save(ctx, sess)
		return Result(msg, continueOptions())

	case session.ModeCryptoToFiat:
		sess.SourceCrypto = cryptoID
		sess.State = session.StateChoosingPayoutFiat
		s.save(ctx, sess)
		return Prompt(msgTargetFiat, fiatOptions())

	case session.ModeCryptoToCrypto:
		sess.SourceCrypto = cryptoID
		sess.State = session.StateChoosingTargetCrypto
		s.save(ctx, sess)
		return Prompt(msgTargetCrypto, cryptoOptions())

	default:
		sess.Reset()
		s.save(ctx, sess)
		return Prompt(msgMainMenu, mainMenuOptions())
	}
}

// handleChoosingTargetFiat completes a fiat-to-fiat conversion
func (s *Service) handleChoosingTargetFiat(ctx context.Context, sess *session.Session, text string) Action {
	toFiat, err := ParseFiat(text)
	if err != nil {
		return Prompt(msgPickFiatButton, fiatOptions())
	}

	result, err := s.converter.FiatToFiat(ctx, sess.Amount, sess.SourceFiat, toFiat)
	metrics.RecordConversion(string(sess.Mode), err)
	if err != nil {
		return s.providerFailure(sess, err, fiatOptions())
	}

	msg := fmt.Sprintf("%s %s = %s %s",
		sess.Amount, strings.ToUpper(sess.SourceFiat),
		result.StringFixed(2), strings.ToUpper(toFiat))
	sess.Reset()
	s.save(ctx, sess)
	return Result(msg, continueOptions())
}

// handleChoosingPayoutFiat completes a crypto-to-fiat conversion
func (s *Service) handleChoosingPayoutFiat(ctx context.Context, sess *session.Session, text string) Action {
	fiat, err := ParseFiat(text)
	if err != nil {
		return Prompt(msgPickFiatButton, fiatOptions())
	}

	result, err := s.converter.CryptoToFiat(ctx, sess.Amount, sess.SourceCrypto, fiat)
	metrics.RecordConversion(string(sess.Mode), err)
	if err != nil {
		return s.providerFailure(sess, err, fiatOptions())
	}

	msg := fmt.Sprintf("%s %s = %s %s",
		sess.Amount, currency.SymbolFor(sess.SourceCrypto),
		result.StringFixed(2), strings.ToUpper(fiat))
	sess.Reset()
	s.save(ctx, sess)
	return Result(msg, continueOptions())
}

// handleChoosingTargetCrypto completes a crypto-to-crypto conversion
func (s *Service) handleChoosingTargetCrypto(ctx context.Context, sess *session.Session, text string) Action {
	toCrypto, err := ParseCrypto(text)
	if err != nil {
		return Prompt(msgPickCryptoButton, cryptoOptions())
	}

	result, err := s.converter.CryptoToCrypto(ctx, sess.Amount, sess.SourceCrypto, toCrypto)
	metrics.RecordConversion(string(sess.Mode), err)
	if err != nil {
		return s.providerFailure(sess, err, cryptoOptions())
	}

	msg := fmt.Sprintf("%s %s = %s %s",
		sess.Amount, currency.SymbolFor(sess.SourceCrypto),
		result.StringFixed(6), currency.SymbolFor(toCrypto))
	sess.Reset()
	s.save(ctx, sess)
	return Result(msg, continueOptions())
}

// handleDepositAmount stores the deposit amount
func (s *Service) handleDepositAmount(ctx context.Context, sess *session.Session, text string) Action {
	amount, err := ParseAmount(text)
	if err != nil {
		return Prompt(msgInvalidAmount, nil)
	}

	sess.Deposit.Amount = amount
	sess.State = session.StateDepositCurrency
	s.save(ctx, sess)
	return Prompt(msgDepositCurrency, depositCurrencyOptions())
}

// handleDepositCurrency stores the deposit currency
func (s *Service) handleDepositCurrency(ctx context.Context, sess *session.Session, text string) Action {
	code, err := ParseDepositCurrency(text)
	if err != nil {
		return Prompt(msgPickFiatButton, depositCurrencyOptions())
	}

	sess.Deposit.Currency = code
	sess.State = session.StateDepositType
	s.save(ctx, sess)
	return Prompt(msgDepositType, depositTypeOptions())
}

// handleDepositType either advances to term selection (fixed plan) or
// computes the flexible yield right away
func (s *Service) handleDepositType(ctx context.Context, sess *session.Session, text string) Action {
	switch text {
	case labelPlanFixed:
		sess.Deposit.Plan = deposit.PlanFixed
		sess.State = session.StateDepositTerm
		s.save(ctx, sess)
		return Prompt(msgDepositTerm, depositTermOptions())

	case labelPlanFlexible:
		sess.Deposit.Plan = deposit.PlanFlexible
		res := s.deposits.Flexible(sess.Deposit.Amount, sess.Deposit.Currency)

		msg := fmt.Sprintf(
			"Flexible deposit (%s):\nAmount: %s %s\nRate: %.2f%% per year\nYearly income: %s %s\nTotal: %s %s",
			sess.Deposit.Currency,
			sess.Deposit.Amount, sess.Deposit.Currency,
			res.APR*100,
			res.Income.StringFixed(2), sess.Deposit.Currency,
			res.Total.StringFixed(2), sess.Deposit.Currency)
		sess.Reset()
		s.save(ctx, sess)
		return Result(msg, continueOptions())

	default:
		return Prompt(msgDepositType, depositTypeOptions())
	}
}

// handleDepositTerm completes a fixed-term deposit calculation
func (s *Service) handleDepositTerm(ctx context.Context, sess *session.Session, text string) Action {
	termDays, err := ParseTermDays(text)
	if err != nil {
		return Prompt(msgPickTermButton, depositTermOptions())
	}

	res, err := s.deposits.Fixed(sess.Deposit.Amount, sess.Deposit.Currency, termDays)
	if err != nil {
		if errors.Is(err, errors.ErrNoRateForTerm) {
			return Prompt(msgNoRateForTerm, depositTermOptions())
		}
		s.log.Errorw("Deposit calculation failed",
			"telegram_id", sess.TelegramID, "error", err)
		return Prompt(msgPickTermButton, depositTermOptions())
	}

	sess.Deposit.TermDays = termDays

	msg := fmt.Sprintf(
		"Fixed deposit %s for %d days at %.2f%% per year:\nIncome: %s %s\nTotal: %s %s",
		sess.Deposit.Currency, termDays, res.APR*100,
		res.Income.StringFixed(2), sess.Deposit.Currency,
		res.Total.StringFixed(2), sess.Deposit.Currency)
	sess.Reset()
	s.save(ctx, sess)
	return Result(msg, continueOptions())
}

// providerFailure reports a quote failure and keeps the session where it
// was, so the user can retry the same selection
func (s *Service) providerFailure(sess *session.Session, err error, options []string) Action {
	s.log.Warnw("Quote provider failure",
		"telegram_id", sess.TelegramID,
		"state", sess.State,
		"mode", sess.Mode,
		"error", err,
	)
	return Prompt(msgRatesUnavailable, options)
}

func (s *Service) save(ctx context.Context, sess *session.Session) {
	sess.Touch()
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.log.Errorw("Failed to save session", "telegram_id", sess.TelegramID, "error", err)
	}
}

func (s *Service) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
