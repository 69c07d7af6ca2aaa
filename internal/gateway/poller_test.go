package gateway

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/recondesk/lookup-bot/internal/bot"
)

func TestMapUpdatesKeepsNonMessageUpdates(t *testing.T) {
	raw := []tgbotapi.Update{
		{UpdateID: 5, Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 11},
			Text: "/num 9876543210",
		}},
		{UpdateID: 6}, // e.g. an edited_message update
		{UpdateID: 7, Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 12},
		}},
	}

	got := mapUpdates(raw)
	assert.Equal(t, []bot.Update{
		{ID: 5, ChatID: 11, Text: "/num 9876543210"},
		{ID: 6},
		{ID: 7, ChatID: 12},
	}, got)
}
