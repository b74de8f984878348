package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"konvert/internal/domain/deposit"
)

// State represents the current step of the dialogue
type State string

const (
	// StateChoosingMode is the initial and terminal state
	StateChoosingMode State = "choosing_mode"

	StateEnteringAmount     State = "entering_amount"
	StateChoosingSourceFiat State = "choosing_source_fiat"

	// StateChoosingTargetFiat completes a fiat-to-fiat conversion.
	// StateChoosingPayoutFiat completes a crypto-to-fiat conversion.
	// Both share the fiat validator but run different completion actions,
	// so they are kept as distinct states.
	StateChoosingTargetFiat State = "choosing_target_fiat"
	StateChoosingPayoutFiat State = "choosing_payout_fiat"

	StateChoosingSourceCrypto State = "choosing_source_crypto"
	StateChoosingTargetCrypto State = "choosing_target_crypto"

	StateDepositAmount   State = "deposit_amount"
	StateDepositCurrency State = "deposit_currency"
	StateDepositType     State = "deposit_type"
	StateDepositTerm     State = "deposit_term"
)

// Mode is the conversion flow chosen from the main menu
type Mode string

const (
	ModeFiatToCrypto   Mode = "fiat_to_crypto"
	ModeCryptoToFiat   Mode = "crypto_to_fiat"
	ModeFiatToFiat     Mode = "fiat_to_fiat"
	ModeCryptoToCrypto Mode = "crypto_to_crypto"
)

// DepositSelections accumulates deposit calculator answers
type DepositSelections struct {
	Amount   decimal.Decimal
	Currency string
	Plan     deposit.Plan
	TermDays int
}

// Session holds the per-user dialogue state. Fields beyond State are only
// meaningful when the preceding transitions guarantee they were set.
type Session struct {
	TelegramID int64
	State      State
	Mode       Mode

	Amount       decimal.Decimal
	SourceFiat   string
	SourceCrypto string

	Deposit DepositSelections

	StartedAt time.Time
	UpdatedAt time.Time
}

// New creates a session at the initial state
func New(telegramID int64) *Session {
	now := time.Now()
	return &Session{
		TelegramID: telegramID,
		State:      StateChoosingMode,
		StartedAt:  now,
		UpdatedAt:  now,
	}
}

// Reset returns the session to the initial state and clears all selections.
// Called when a flow completes or a new one begins.
func (s *Session) Reset() {
	s.State = StateChoosingMode
	s.Mode = ""
	s.Amount = decimal.Decimal{}
	s.SourceFiat = ""
	s.SourceCrypto = ""
	s.Deposit = DepositSelections{}
	s.UpdatedAt = time.Now()
}

// Touch updates the last interaction time
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// Store keeps one session slot per user
type Store interface {
	// Get retrieves a session, errors.ErrNotFound when absent
	Get(ctx context.Context, telegramID int64) (*Session, error)

	// GetOrCreate retrieves a session, creating one at the initial state
	GetOrCreate(ctx context.Context, telegramID int64) (*Session, error)

	// Save stores a session
	Save(ctx context.Context, s *Session) error

	// Delete removes a session
	Delete(ctx context.Context, telegramID int64) error
}
