// Package notify carries transient user-facing notifications (the toast
// messages of the front-end) away from the state that produced them.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

func Success(ctx context.Context, n Notifier, message string) {
	if n == nil {
		return
	}
	n.Notify(ctx, Notification{Level: LevelSuccess, Message: message, At: time.Now()})
}

func Error(ctx context.Context, n Notifier, message string) {
	if n == nil {
		return
	}
	n.Notify(ctx, Notification{Level: LevelError, Message: message, At: time.Now()})
}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = Func(func(context.Context, Notification) {})

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	logger *logging.Logger
}

func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	if n.Level == LevelError {
		l.logger.WarnContext(ctx, n.Message, "notification", string(n.Level))
		return
	}
	l.logger.InfoContext(ctx, n.Message, "notification", string(n.Level))
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.items))
	for _, item := range r.items {
		if item.Level == level {
			out = append(out, item.Message)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, item := range m {
		if item != nil {
			item.Notify(ctx, n)
		}
	}
}
