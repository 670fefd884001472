// Package checkin drives gate operations: the time-gated check-in window,
// QR scan acquisition, and the explicit scan submit.
package checkin

import (
	"fmt"
	"time"

	"eventhub-client/internal/models"
)

// Lead is how long before the start time the check-in window opens.
const Lead = time.Hour

// WindowState is where the wall clock sits relative to a check-in window.
type WindowState string

const (
	// Upcoming means the window has not opened; check-in is disabled and a
	// countdown is shown.
	Upcoming WindowState = "upcoming"
	// Active means check-in controls are enabled.
	Active WindowState = "active"
	// Ended means the event or showtime is over.
	Ended WindowState = "ended"
)

// Window is the span during which check-in is allowed: one hour before the
// start through the end.
type Window struct {
	WindowStart time.Time
	Start       time.Time
	End         time.Time
}

// NewWindow derives the check-in window from a start/end pair.
func NewWindow(start, end time.Time) Window {
	return Window{
		WindowStart: start.Add(-Lead),
		Start:       start,
		End:         end,
	}
}

// EventWindow derives the window from the event's own times. It reports
// false when the event has no usable times.
func EventWindow(ev *models.Event) (Window, bool) {
	if ev == nil || ev.StartTime.IsZero() || ev.EndTime.IsZero() {
		return Window{}, false
	}
	return NewWindow(ev.StartTime, ev.EndTime), true
}

// ShowtimeWindow derives the window from a showtime.
func ShowtimeWindow(st models.ShowtimeRef) (Window, bool) {
	if st.StartTime.IsZero() || st.EndTime.IsZero() {
		return Window{}, false
	}
	return NewWindow(st.StartTime, st.EndTime), true
}

// StateAt reports the window state at the given instant. Both boundaries
// are inclusive: the window is active exactly from WindowStart through End.
func (w Window) StateAt(now time.Time) WindowState {
	if now.Before(w.WindowStart) {
		return Upcoming
	}
	if now.After(w.End) {
		return Ended
	}
	return Active
}

// Countdown formats the time remaining until target as HH:MM:SS, clamped at
// zero once the target has passed.
func Countdown(now, target time.Time) string {
	remaining := target.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
