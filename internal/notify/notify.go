// Package notify is the process-wide toast bus. Notifications stack, each
// one expires independently after its duration, and there is no queuing or
// throttling.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultDuration is how long a notification stays active when the caller
// does not pick one.
const DefaultDuration = 3 * time.Second

// Notification is one active toast.
type Notification struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"duration"`
}

// Sink observes every notification as it is shown.
type Sink func(Notification)

// Bus holds the active notifications.
type Bus struct {
	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
	sink   Sink
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{timers: make(map[string]*time.Timer)}
}

// SetSink registers an observer for shown notifications.
func (b *Bus) SetSink(sink Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = sink
}

// Show displays a notification for the default duration.
func (b *Bus) Show(message string, severity Severity) Notification {
	return b.ShowFor(message, severity, DefaultDuration)
}

// ShowFor displays a notification that removes itself after d.
func (b *Bus) ShowFor(message string, severity Severity, d time.Duration) Notification {
	if d <= 0 {
		d = DefaultDuration
	}
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Duration: d,
	}

	b.mu.Lock()
	b.active = append(b.active, n)
	b.timers[n.ID] = time.AfterFunc(d, func() { b.Dismiss(n.ID) })
	sink := b.sink
	b.mu.Unlock()

	if sink != nil {
		sink(n)
	}
	return n
}

// Dismiss removes a notification before its timer fires.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}
	for i, n := range b.active {
		if n.ID == id {
			b.active = append(b.active[:i], b.active[i+1:]...)
			break
		}
	}
}

// Active returns a snapshot of the notifications currently shown.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.active))
	copy(out, b.active)
	return out
}

// Close stops all pending expiry timers and clears the bus.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
	b.active = nil
}
