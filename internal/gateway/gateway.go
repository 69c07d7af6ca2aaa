// Package gateway wraps the Telegram Bot API: outbound messages, message
// deletion, document upload, and the long-poll update source.
package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sendTimeout = 30 * time.Second

// Gateway sends, deletes, and uploads through one bot account.
type Gateway struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

func New(token string, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: sendTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Gateway{
		api:    api,
		logger: logger.With(slog.String("component", "gateway")),
	}, nil
}

// Username returns the bot account name Telegram authorized.
func (g *Gateway) Username() string {
	return g.api.Self.UserName
}

// SendMessage sends plain text and returns the platform message id.
func (g *Gateway) SendMessage(chatID int64, text string) (int, error) {
	sent, err := g.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return sent.MessageID, nil
}

// DeleteMessage removes a message. Callers treat failures as best-effort.
func (g *Gateway) DeleteMessage(chatID int64, messageID int) error {
	if _, err := g.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// SendDocument uploads the file at path as a document with a caption and
// returns the platform message id of the upload.
func (g *Gateway) SendDocument(chatID int64, path, caption string) (int, error) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	sent, err := g.api.Send(doc)
	if err != nil {
		return 0, fmt.Errorf("send document: %w", err)
	}
	return sent.MessageID, nil
}
