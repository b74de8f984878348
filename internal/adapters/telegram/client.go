package telegram

import (
	"context"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

// Config contains Telegram bot configuration
type Config struct {
	Token          string
	Debug          bool
	UpdateTimeout  int // Update timeout in seconds
	HTTPTimeout    time.Duration
	RateLimitRate  int // Messages per second
	RateLimitBurst int
}

// Bot wraps the Telegram Bot API with polling and rate-limited sends
type Bot struct {
	api           *tgbotapi.BotAPI
	log           *logger.Logger
	rateLimiter   *rate.Limiter
	updateTimeout int
	msgHandler    func(tgbotapi.Update)
	mu            sync.RWMutex
	running       bool
}

// NewBot creates a new Telegram bot instance
func NewBot(cfg Config, log *logger.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "telegram bot token is required")
	}

	if cfg.UpdateTimeout == 0 {
		cfg.UpdateTimeout = 60
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.RateLimitRate == 0 {
		cfg.RateLimitRate = 20 // Conservative, Telegram limit is 30
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 30
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	api.Debug = cfg.Debug

	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		log:           log.With("component", "telegram_bot"),
		rateLimiter:   rate.NewLimiter(rate.Limit(cfg.RateLimitRate), cfg.RateLimitBurst),
		updateTimeout: cfg.UpdateTimeout,
	}, nil
}

// SetMessageHandler registers a handler for incoming updates
func (b *Bot) SetMessageHandler(handler func(tgbotapi.Update)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgHandler = handler
}

// Start begins polling for updates until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return errors.New("bot is already running")
	}
	b.running = true
	b.mu.Unlock()

	b.log.Infow("Starting Telegram bot in polling mode...")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout

	updates := b.api.GetUpdatesChan(u)

	b.log.Infow("Telegram bot started, waiting for updates")

	for {
		select {
		case <-ctx.Done():
			b.log.Infow("Telegram bot stopping (context cancelled)")
			b.Stop()
			return nil

		case update := <-updates:
			// Handle in a goroutine so slow quote fetches don't block
			// other users; per-user ordering is enforced downstream
			go b.handleUpdate(update)
		}
	}
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	b.api.StopReceivingUpdates()
	b.running = false
	b.log.Infow("Telegram bot stopped")
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	b.mu.RLock()
	handler := b.msgHandler
	b.mu.RUnlock()

	if handler != nil {
		handler(update)
		return
	}

	if update.Message != nil {
		b.log.Debugw("Received message (no handler registered)",
			"update_id", update.UpdateID,
			"from_id", update.Message.From.ID,
		)
	}
}

// SendReply sends a text message with a reply keyboard built from options.
// Empty options remove the previous keyboard.
func (b *Bot) SendReply(ctx context.Context, chatID int64, text string, options []string) error {
	if err := b.rateLimiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limiter wait failed")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if len(options) > 0 {
		msg.ReplyMarkup = replyKeyboard(options)
	} else {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	start := time.Now()

	_, err := b.api.Send(msg)
	if err != nil {
		b.log.Errorw("Failed to send message",
			"chat_id", chatID,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return errors.Wrap(err, "failed to send message")
	}

	b.log.Debugw("Message sent",
		"chat_id", chatID,
		"buttons", len(options),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
