package bot

import (
	"log/slog"
	"time"
)

const pollRetryDelay = 5 * time.Second

// Run drives the long-poll loop forever. The cursor is advanced to
// update_id+1 as each update is received, before it is dispatched: updates
// already fetched are never retried, only the next poll reflects new ones.
// The cursor lives in this frame only; a restart resumes from whatever the
// platform still retains.
func (b *Bot) Run() {
	b.logger.Info("bot is running")
	cursor := 0
	for {
		updates, err := b.source.Fetch(cursor)
		if err != nil {
			b.logger.Error("poll failed", slog.Any("error", err))
			time.Sleep(b.retryDelay)
			continue
		}
		cursor = b.consume(cursor, updates)
	}
}

// consume dispatches one batch in arrival order and returns the advanced
// cursor. Updates without text still move the cursor past themselves.
func (b *Bot) consume(cursor int, updates []Update) int {
	for _, u := range updates {
		cursor = u.ID + 1
		if u.Text == "" {
			continue
		}
		b.handleText(u.ChatID, u.Text)
	}
	return cursor
}
