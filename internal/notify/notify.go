// Package notify implements the console's transient notification bus: a
// queue of short-lived messages that expire on their own. Rendering is
// someone else's job; this layer only holds the live list.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays active unless the caller
// asks otherwise.
const DefaultTTL = 5 * time.Second

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is one live entry of the bus. ID is a time-based value,
// strictly increasing within a session, so no two live entries collide.
type Notification struct {
	ID       int64
	Message  string
	Severity Severity
}

// Bus is an in-memory notification queue. Publishing is fire-and-forget:
// removal is scheduled immediately and cannot be cancelled or paused.
// A Bus is safe for concurrent use and is meant to be injected into each
// store at construction, never shared as a package global.
type Bus struct {
	mu     sync.Mutex
	active []Notification
	lastID int64
	logger *slog.Logger
}

// NewBus creates a notification bus. A nil logger falls back to the
// process default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

// Publish enqueues a notification and schedules its removal after ttl.
// A non-positive ttl uses DefaultTTL.
func (b *Bus) Publish(message string, severity Severity, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	b.mu.Lock()
	id := time.Now().UnixNano()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	b.active = append(b.active, Notification{ID: id, Message: message, Severity: severity})
	b.mu.Unlock()

	b.logger.Debug("notification published", "id", id, "severity", string(severity), "message", message)

	time.AfterFunc(ttl, func() { b.Remove(id) })
}

// Success publishes with SeveritySuccess and the default TTL.
func (b *Bus) Success(message string) { b.Publish(message, SeveritySuccess, DefaultTTL) }

// Error publishes with SeverityError and the default TTL.
func (b *Bus) Error(message string) { b.Publish(message, SeverityError, DefaultTTL) }

// Warning publishes with SeverityWarning and the default TTL.
func (b *Bus) Warning(message string) { b.Publish(message, SeverityWarning, DefaultTTL) }

// Info publishes with SeverityInfo and the default TTL.
func (b *Bus) Info(message string) { b.Publish(message, SeverityInfo, DefaultTTL) }

// Active returns a snapshot of the live notifications, oldest first.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.active))
	copy(out, b.active)
	return out
}

// Remove drops a notification by id. Removing an id that already expired
// is a no-op.
func (b *Bus) Remove(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.active {
		if n.ID == id {
			b.active = append(b.active[:i], b.active[i+1:]...)
			return
		}
	}
}
