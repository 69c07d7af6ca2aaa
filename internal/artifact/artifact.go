// Package artifact manages the ephemeral report file: local write, upload,
// immediate local removal, and the delayed remote delete.
package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Messenger is the slice of the messaging gateway the lifecycle needs.
type Messenger interface {
	SendDocument(chatID int64, path, caption string) (int, error)
	DeleteMessage(chatID int64, messageID int) error
}

// DeleteDelay is how long an uploaded report stays in the chat.
const DeleteDelay = 60 * time.Second

// Config tunes the manager; zero values take the defaults.
type Config struct {
	Delay time.Duration // remote delete delay, default DeleteDelay
	Dir   string        // scratch dir for report files, default os.TempDir()
}

// Manager delivers report files and schedules their removal from the chat.
type Manager struct {
	messenger Messenger
	delay     time.Duration
	dir       string
	logger    *slog.Logger
	wg        sync.WaitGroup
}

func New(messenger Messenger, cfg Config, logger *slog.Logger) *Manager {
	if cfg.Delay <= 0 {
		cfg.Delay = DeleteDelay
	}
	if cfg.Dir == "" {
		cfg.Dir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		messenger: messenger,
		delay:     cfg.Delay,
		dir:       cfg.Dir,
		logger:    logger.With(slog.String("component", "artifact")),
	}
}

// Deliver writes content to a local file, uploads it as a document, and
// removes the local copy before returning, whether or not the upload
// succeeded. It returns the message id of the uploaded artifact.
func (m *Manager) Deliver(chatID int64, filename, content string) (int, error) {
	path := filepath.Join(m.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return 0, fmt.Errorf("write report file: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			m.logger.Warn("remove local report failed", slog.String("path", path), slog.Any("error", err))
		}
	}()

	caption := fmt.Sprintf("✅ File Generated Successfully\n📂 %s\n⏳ This message will auto-delete in %ds",
		filename, int(m.delay/time.Second))
	messageID, err := m.messenger.SendDocument(chatID, path, caption)
	if err != nil {
		return 0, fmt.Errorf("upload report: %w", err)
	}
	return messageID, nil
}

// ScheduleDelete removes the uploaded report message after the configured
// delay. It returns immediately; the deletion runs on its own goroutine,
// cannot be cancelled, and its failure is not retried.
func (m *Manager) ScheduleDelete(chatID int64, messageID int) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		time.Sleep(m.delay)
		if err := m.messenger.DeleteMessage(chatID, messageID); err != nil {
			m.logger.Debug("scheduled delete failed",
				slog.Int64("chat_id", chatID), slog.Int("message_id", messageID), slog.Any("error", err))
		}
	}()
}

// Wait blocks until every scheduled deletion has run.
func (m *Manager) Wait() {
	m.wg.Wait()
}
