package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowWidth(t *testing.T) {
	assert.Equal(t, 3, rowWidth([]string{"USD", "EUR", "UAH"}))
	assert.Equal(t, 3, rowWidth([]string{"BTC", "ETH", "USDT"}))
	assert.Equal(t, 2, rowWidth([]string{"30 days", "90 days", "180 days"}))
	assert.Equal(t, 1, rowWidth([]string{"Crypto deposit calculator"}))
}

func TestReplyKeyboardChunksRows(t *testing.T) {
	kb := replyKeyboard([]string{"USD", "EUR", "UAH", "BTC"})

	assert.True(t, kb.ResizeKeyboard)
	assert.Len(t, kb.Keyboard, 2)
	assert.Len(t, kb.Keyboard[0], 3)
	assert.Len(t, kb.Keyboard[1], 1)
	assert.Equal(t, "USD", kb.Keyboard[0][0].Text)
	assert.Equal(t, "BTC", kb.Keyboard[1][0].Text)
}

func TestReplyKeyboardLongLabelsOnePerRow(t *testing.T) {
	opts := []string{"Fiat ➝ Crypto", "Crypto ➝ Fiat", "Crypto deposit calculator"}
	kb := replyKeyboard(opts)

	assert.Len(t, kb.Keyboard, 3)
	for i, row := range kb.Keyboard {
		assert.Len(t, row, 1)
		assert.Equal(t, opts[i], row[0].Text)
	}
}
