package bot

import (
	"context"

	"github.com/recondesk/lookup-bot/internal/report"
)

// Update is one inbound chat message, reduced to what dispatch needs.
// Non-text updates arrive with an empty Text so the loop still advances the
// cursor past them.
type Update struct {
	ID     int
	ChatID int64
	Text   string
}

// Source fetches updates newer than offset, blocking up to the platform's
// long-poll wait.
type Source interface {
	Fetch(offset int) ([]Update, error)
}

// Messenger sends and deletes plain chat messages.
type Messenger interface {
	SendMessage(chatID int64, text string) (int, error)
	DeleteMessage(chatID int64, messageID int) error
}

// Deliverer uploads a report artifact and schedules its later removal.
type Deliverer interface {
	Deliver(chatID int64, filename, content string) (int, error)
	ScheduleDelete(chatID int64, messageID int)
}

// Lookup is the set of remote lookups the dispatcher can issue.
type Lookup interface {
	Mobile(ctx context.Context, number string) (report.Result, error)
	Aadhaar(ctx context.Context, id string) (report.Result, error)
	GST(ctx context.Context, gstin string) (report.Result, error)
	IFSC(ctx context.Context, code string) (report.Result, error)
	UPI(ctx context.Context, id string) (report.Result, error)
	Fam(ctx context.Context, id string) (report.Result, error)
	Vehicle(ctx context.Context, reg string) (report.Result, error)
}
