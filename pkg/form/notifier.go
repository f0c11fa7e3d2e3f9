package form

import (
	"context"
	"log/slog"
	"sync"
)

// Notifier delivers the success notification after an accepted submit.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

// LogNotifier writes the notification to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs message at info level.
func (n LogNotifier) Notify(ctx context.Context, message string) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "form accepted", "notification", message)
	return nil
}

// RecordingNotifier keeps every notification; transports use it to render
// the success banner after the submit returns.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

// Notify records message.
func (n *RecordingNotifier) Notify(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

// Messages returns a copy of the recorded notifications.
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// Notifiers fans a notification out in order, stopping at the first error.
type Notifiers []Notifier

// Notify calls every notifier.
func (ns Notifiers) Notify(ctx context.Context, message string) error {
	for _, n := range ns {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, message); err != nil {
			return err
		}
	}
	return nil
}
