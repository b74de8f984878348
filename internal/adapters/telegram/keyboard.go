package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// replyKeyboard builds a reply keyboard from a flat option list.
// Short labels (currency codes) pack three per row, medium ones two,
// long menu entries get a row each.
func replyKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	perRow := rowWidth(options)

	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton

	for _, opt := range options {
		row = append(row, tgbotapi.NewKeyboardButton(opt))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func rowWidth(options []string) int {
	longest := 0
	for _, opt := range options {
		if len(opt) > longest {
			longest = len(opt)
		}
	}

	switch {
	case longest <= 4:
		return 3
	case longest <= 12:
		return 2
	default:
		return 1
	}
}
