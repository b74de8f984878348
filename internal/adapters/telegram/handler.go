package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"konvert/internal/services/dialog"
	"konvert/pkg/logger"
)

// Dialog is the conversational core handling one message at a time
type Dialog interface {
	Handle(ctx context.Context, userID int64, text string) dialog.Action
}

// Handler routes Telegram updates into the dialogue service and sends
// the resulting action back to the chat
type Handler struct {
	bot    *Bot
	dialog Dialog
	log    *logger.Logger
}

// NewHandler creates a new telegram handler
func NewHandler(bot *Bot, d Dialog, log *logger.Logger) *Handler {
	return &Handler{
		bot:    bot,
		dialog: d,
		log:    log.With("component", "telegram_handler"),
	}
}

// Register sets the handler as the bot's update handler
func (h *Handler) Register() {
	h.bot.SetMessageHandler(h.HandleUpdate)
}

// HandleUpdate processes a single incoming update
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	ctx := context.Background()

	userID := msg.From.ID
	chatID := msg.Chat.ID

	h.log.Debugw("Processing message",
		"telegram_id", userID,
		"username", msg.From.UserName,
		"text", msg.Text,
	)

	action := h.dialog.Handle(ctx, userID, msg.Text)

	switch action.Kind {
	case dialog.KindNoOp:
		return

	case dialog.KindPrompt, dialog.KindResult:
		if err := h.bot.SendReply(ctx, chatID, action.Text, action.Options); err != nil {
			h.log.Errorw("Failed to send reply",
				"telegram_id", userID,
				"chat_id", chatID,
				"error", err,
			)
		}
	}
}
