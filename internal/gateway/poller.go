package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/recondesk/lookup-bot/internal/bot"
)

// pollWait is the server-side long-poll wait in seconds. The poller's own
// client timeout must outlive it, so the Poller keeps a separate BotAPI from
// the Gateway's 30-second one.
const (
	pollWait        = 30
	pollHTTPTimeout = 50 * time.Second
)

// Poller fetches updates through Telegram's getUpdates long poll.
type Poller struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewPoller(token string, logger *slog.Logger) (*Poller, error) {
	if logger == nil {
		logger = slog.Default()
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: pollHTTPTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create poller: %w", err)
	}
	return &Poller{
		api:    api,
		logger: logger.With(slog.String("component", "poller")),
	}, nil
}

// Fetch returns updates at or after offset in arrival order. Updates that
// carry no text message are included with empty Text so the caller's cursor
// still advances past them.
func (p *Poller) Fetch(offset int) ([]bot.Update, error) {
	raw, err := p.api.GetUpdates(tgbotapi.UpdateConfig{Offset: offset, Timeout: pollWait})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	return mapUpdates(raw), nil
}

func mapUpdates(raw []tgbotapi.Update) []bot.Update {
	updates := make([]bot.Update, 0, len(raw))
	for _, u := range raw {
		update := bot.Update{ID: u.UpdateID}
		if u.Message != nil && u.Message.Chat != nil {
			update.ChatID = u.Message.Chat.ID
			update.Text = u.Message.Text
		}
		updates = append(updates, update)
	}
	return updates
}
