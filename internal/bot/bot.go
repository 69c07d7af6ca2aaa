// Package bot dispatches chat commands: it classifies incoming text, runs the
// matching remote lookup, and delivers the rendered report as a self-deleting
// file.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recondesk/lookup-bot/internal/identify"
	"github.com/recondesk/lookup-bot/internal/lookup"
	"github.com/recondesk/lookup-bot/internal/report"
)

const (
	helpText = "🔍 Lookup Bot\n\n" +
		"📱 Mobile: /num 9876543210\n" +
		"🆔 Aadhaar: /aadhaar 123456789012\n" +
		"🏢 GST: /gst 24ABCDE1234F1Z5\n" +
		"🏦 IFSC: /ifsc SBIN0000000\n" +
		"💸 UPI: /upi username@bank\n" +
		"👨‍👩‍👧‍👦 FAM: /fam username@fam\n" +
		"🚗 Vehicle: /vehicle GJ01AB1234\n\n" +
		"📄 Note: Result file auto-deletes in 60 seconds"

	loadingText     = "🔍 Fetching details… please wait ⏳"
	noRecordText    = "⚠️ No record found"
	serverErrorText = "⚠️ Server error, please try again"
)

type command struct {
	name      string
	kind      identify.Kind
	noun      string // argument noun for usage errors
	example   string
	format    string
	hint      string // "looks like" line for bare-text hints
	noRecord  string // overrides noRecordText when set
	uppercase bool   // argument is validated and sent upper-cased
	validate  func(string) bool
	fetch     func(ctx context.Context, l Lookup, arg string) (report.Result, error)
	render    func(arg string, rec report.Result) string
	filename  func(arg string, t time.Time) string
}

var commands = []command{
	{
		name: "num", kind: identify.Mobile,
		noun: "mobile number", example: "/num 9876543210",
		format:   "10 digits, starts with 6-9",
		hint:     "📱 Looks like you entered a mobile number!",
		validate: identify.IsMobile,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.Mobile(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.Common(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "aadhaar", kind: identify.Aadhaar,
		noun: "Aadhaar number", example: "/aadhaar 123456789012",
		format:   "12 digits, no spaces",
		hint:     "🆔 Looks like you entered an Aadhaar number!",
		validate: identify.IsAadhaar,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.Aadhaar(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.Common(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "gst", kind: identify.GST,
		noun: "GSTIN", example: "/gst 24ABCDE1234F1Z5",
		format:    "24ABCDE1234F1Z5",
		hint:      "🏢 Looks like you entered a GSTIN!",
		uppercase: true,
		validate:  identify.IsGSTIN,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.GST(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.GST(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "ifsc", kind: identify.IFSC,
		noun: "IFSC code", example: "/ifsc SBIN0000000",
		format:    "SBIN0000000 (11 chars, 5th char=0)",
		hint:      "🏦 Looks like you entered an IFSC code!",
		uppercase: true,
		validate:  identify.IsIFSC,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.IFSC(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.IFSC(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "upi", kind: identify.UPI,
		noun: "UPI ID", example: "/upi username@bank",
		format:   "Must contain @ symbol",
		hint:     "💸 Looks like you entered a UPI ID!",
		validate: identify.IsUPI,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.UPI(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.UPI(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "fam", kind: identify.Fam,
		noun: "FAM ID", example: "/fam username@fam",
		format:   "Must end with @fam",
		hint:     "👨‍👩‍👧‍👦 Looks like you entered a FAM ID!",
		validate: identify.IsFamID,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.Fam(ctx, arg)
		},
		render:   func(_ string, rec report.Result) string { return report.Fam(rec) },
		filename: func(_ string, t time.Time) string { return report.Filename(t) },
	},
	{
		name: "vehicle", kind: identify.Vehicle,
		noun: "vehicle number", example: "/vehicle GJ01AB1234",
		format:    "XX##XXX####",
		hint:      "🚗 Looks like you entered a vehicle number!",
		noRecord:  "⚠️ No record found for this vehicle",
		uppercase: true,
		validate:  identify.IsVehicle,
		fetch: func(ctx context.Context, l Lookup, arg string) (report.Result, error) {
			return l.Vehicle(ctx, arg)
		},
		render:   report.Vehicle,
		filename: report.VehicleFilename,
	},
}

func commandByName(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func commandForKind(kind identify.Kind) (command, bool) {
	for _, c := range commands {
		if c.kind == kind {
			return c, true
		}
	}
	return command{}, false
}

// Bot wires the dispatcher to its collaborators.
type Bot struct {
	source     Source
	messenger  Messenger
	artifacts  Deliverer
	lookups    Lookup
	logger     *slog.Logger
	retryDelay time.Duration
}

func New(source Source, messenger Messenger, artifacts Deliverer, lookups Lookup, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		source:     source,
		messenger:  messenger,
		artifacts:  artifacts,
		lookups:    lookups,
		logger:     logger.With(slog.String("component", "bot")),
		retryDelay: pollRetryDelay,
	}
}

func (b *Bot) handleText(chatID int64, text string) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return
	}
	log := b.logger.With(
		slog.String("dispatch_id", uuid.NewString()),
		slog.Int64("chat_id", chatID),
	)

	if strings.EqualFold(raw, "/start") {
		b.send(chatID, helpText, log)
		return
	}

	if !strings.HasPrefix(raw, "/") {
		b.handleBareText(chatID, raw, log)
		return
	}

	// Only "/cmd arg" shapes dispatch; a bare "/cmd" or an unknown command is
	// dropped without a reply so the bot stays quiet in shared chats.
	name, arg, hasArg := splitCommand(raw)
	if !hasArg {
		return
	}
	cmd, ok := commandByName(name)
	if !ok {
		return
	}
	b.dispatch(chatID, cmd, arg, log)
}

// handleBareText suggests the matching command for unprefixed text that looks
// like a supported identifier. Anything else is dropped silently.
func (b *Bot) handleBareText(chatID int64, raw string, log *slog.Logger) {
	cmd, ok := commandForKind(identify.Classify(raw))
	if !ok {
		return
	}
	hint := fmt.Sprintf("%s\n\n💡 Please use:\n/%s %s\n\n📝 Example: /%s %s",
		cmd.hint, cmd.name, raw, cmd.name, raw)
	b.send(chatID, hint, log)
}

func (b *Bot) dispatch(chatID int64, cmd command, arg string, log *slog.Logger) {
	log = log.With(slog.String("command", cmd.name))

	if arg == "" {
		b.send(chatID, fmt.Sprintf("❌ Please provide %s\n💡 Example: %s", cmd.noun, cmd.example), log)
		return
	}
	if cmd.uppercase {
		arg = strings.ToUpper(arg)
	}
	if !cmd.validate(arg) {
		b.send(chatID, fmt.Sprintf("❌ Invalid %s!\n\n💡 Example: %s\n📌 Format: %s",
			cmd.noun, cmd.example, cmd.format), log)
		return
	}

	loadingID, err := b.messenger.SendMessage(chatID, loadingText)
	if err != nil {
		log.Error("send loading message failed", slog.Any("error", err))
		return
	}

	rec, err := cmd.fetch(context.Background(), b.lookups, arg)
	if errors.Is(err, lookup.ErrNoRecord) {
		b.deleteMessage(chatID, loadingID, log)
		msg := cmd.noRecord
		if msg == "" {
			msg = noRecordText
		}
		b.send(chatID, msg, log)
		return
	}
	if err != nil {
		log.Error("lookup failed", slog.Any("error", err))
		b.deleteMessage(chatID, loadingID, log)
		b.send(chatID, serverErrorText, log)
		return
	}

	content := cmd.render(arg, rec)
	filename := cmd.filename(arg, time.Now())
	fileMsgID, err := b.artifacts.Deliver(chatID, filename, content)
	if err != nil {
		log.Error("deliver report failed", slog.Any("error", err))
		b.deleteMessage(chatID, loadingID, log)
		b.send(chatID, serverErrorText, log)
		return
	}
	b.deleteMessage(chatID, loadingID, log)
	b.artifacts.ScheduleDelete(chatID, fileMsgID)
	log.Info("report delivered", slog.String("filename", filename))
}

func (b *Bot) send(chatID int64, text string, log *slog.Logger) {
	if _, err := b.messenger.SendMessage(chatID, text); err != nil {
		log.Error("send message failed", slog.Any("error", err))
	}
}

func (b *Bot) deleteMessage(chatID int64, messageID int, log *slog.Logger) {
	if err := b.messenger.DeleteMessage(chatID, messageID); err != nil {
		log.Debug("delete message failed", slog.Any("error", err))
	}
}

// splitCommand splits "/cmd arg" into the lower-cased command name and the
// trimmed argument. hasArg is false when no space follows the command, which
// callers treat as not-a-command.
func splitCommand(raw string) (name, arg string, hasArg bool) {
	idx := strings.Index(raw, " ")
	if idx < 0 {
		return "", "", false
	}
	return strings.ToLower(raw[1:idx]), strings.TrimSpace(raw[idx+1:]), true
}
