package checkin

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/models"
	"eventhub-client/internal/session"
)

// Backend is the slice of the API a check-in station needs.
type Backend interface {
	SearchEvents(ctx context.Context, params api.EventSearchParams) (*models.EventPage, error)
	AssignedEvents(ctx context.Context, userID string) ([]int, error)
	TicketsWithShowtimes(ctx context.Context, eventID int) ([]models.TicketOption, error)
	EventTickets(ctx context.Context, eventID int) ([]models.TicketResponse, error)
	EventCheckInLogs(ctx context.Context, eventID int) ([]models.CheckInLog, error)
	ScanTicket(ctx context.Context, ticketCode, gate, deviceID, staffID string) (*models.TicketResponse, error)
}

// Station is one gate's check-in state: the selected event and showtime,
// the attendee roster, the scan history, and the pending ticket code field
// that a scan or manual entry fills before an explicit submit.
type Station struct {
	backend  Backend
	staff    *session.Session
	gate     string
	deviceID string

	mu               sync.Mutex
	busy             bool
	event            *models.Event
	showtimes        []models.ShowtimeRef
	selectedShowtime int
	ticketCode       string
	tickets          []models.TicketResponse
	logs             []models.CheckInLog
}

// NewStation creates a station operated by the given staff session.
func NewStation(backend Backend, staff *session.Session, gate, deviceID string) *Station {
	if deviceID == "" {
		deviceID = "Device-" + staff.UserID
	}
	return &Station{
		backend:  backend,
		staff:    staff,
		gate:     gate,
		deviceID: deviceID,
	}
}

// VisibleEvents returns the published events this operator may run check-in
// for: admins see everything, organizers their own events, staff only the
// events they are assigned to.
func (s *Station) VisibleEvents(ctx context.Context) ([]models.Event, error) {
	page, err := s.backend.SearchEvents(ctx, api.EventSearchParams{Status: models.EventPublished, Size: 100})
	if err != nil {
		return nil, err
	}
	published := page.Content

	switch {
	case s.staff.HasRole("ROLE_ADMIN"):
		return published, nil
	case s.staff.HasRole("ROLE_ORGANIZER"):
		var own []models.Event
		for _, ev := range published {
			if ev.OrganizerID == s.staff.UserID {
				own = append(own, ev)
			}
		}
		return own, nil
	default:
		assigned, err := s.backend.AssignedEvents(ctx, s.staff.UserID)
		if err != nil {
			return nil, err
		}
		assignedSet := make(map[int]bool, len(assigned))
		for _, id := range assigned {
			assignedSet[id] = true
		}
		var visible []models.Event
		for _, ev := range published {
			if assignedSet[ev.ID] {
				visible = append(visible, ev)
			}
		}
		return visible, nil
	}
}

// SelectEvent loads the showtimes, roster and scan history for an event and
// makes it the station's current event. A single showtime is auto-selected.
func (s *Station) SelectEvent(ctx context.Context, ev *models.Event) error {
	options, err := s.backend.TicketsWithShowtimes(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("failed to load showtimes: %w", err)
	}
	showtimes := extractShowtimes(options)

	s.mu.Lock()
	s.event = ev
	s.showtimes = showtimes
	s.selectedShowtime = 0
	if len(showtimes) == 1 {
		s.selectedShowtime = showtimes[0].ID
	}
	s.ticketCode = ""
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh reloads the attendee roster and check-in history for the current
// event.
func (s *Station) Refresh(ctx context.Context) error {
	s.mu.Lock()
	ev := s.event
	s.mu.Unlock()
	if ev == nil {
		return fmt.Errorf("no event selected")
	}

	tickets, err := s.backend.EventTickets(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("failed to load event tickets: %w", err)
	}
	logs, err := s.backend.EventCheckInLogs(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("failed to load check-in logs: %w", err)
	}

	s.mu.Lock()
	s.tickets = tickets
	s.logs = logs
	s.mu.Unlock()
	return nil
}

// Showtimes returns the current event's showtimes.
func (s *Station) Showtimes() []models.ShowtimeRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ShowtimeRef, len(s.showtimes))
	copy(out, s.showtimes)
	return out
}

// SelectShowtime picks the showtime the window and filters derive from.
func (s *Station) SelectShowtime(showtimeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.showtimes {
		if st.ID == showtimeID {
			s.selectedShowtime = showtimeID
			return nil
		}
	}
	return fmt.Errorf("showtime %d does not belong to the selected event", showtimeID)
}

// Window returns the check-in window for the selected showtime, falling
// back to the event's own times when the event has no showtimes. An event
// with showtimes but none selected has no window yet: the operator must
// pick one first.
func (s *Station) Window() (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return Window{}, false
	}
	if len(s.showtimes) > 0 {
		if s.selectedShowtime == 0 {
			return Window{}, false
		}
		for _, st := range s.showtimes {
			if st.ID == s.selectedShowtime {
				return ShowtimeWindow(st)
			}
		}
		return Window{}, false
	}
	return EventWindow(s.event)
}

// SetTicketCode fills the pending ticket code field. Scan decode and manual
// entry both land here; neither submits anything.
func (s *Station) SetTicketCode(code string) {
	s.mu.Lock()
	s.ticketCode = code
	s.mu.Unlock()
}

// TicketCode returns the pending ticket code.
func (s *Station) TicketCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticketCode
}

// Submit posts the pending ticket code to the backend as a check-in at this
// station's gate. The check-in window must be active, and a submit already
// in flight rejects a second one. On success the pending code is cleared
// and the roster refreshed.
func (s *Station) Submit(ctx context.Context, now time.Time) (*models.TicketResponse, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, fmt.Errorf("a scan is already being processed")
	}
	if s.event == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("please select an event first")
	}
	code := s.ticketCode
	gate := s.gate
	if gate == "" {
		gate = fmt.Sprintf("Gate %d-A", s.event.ID)
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if code == "" {
		return nil, fmt.Errorf("please enter a ticket code")
	}

	window, ok := s.Window()
	if !ok {
		return nil, fmt.Errorf("select a showtime before checking in")
	}
	switch window.StateAt(now) {
	case Upcoming:
		return nil, fmt.Errorf("check-in opens %s before start (in %s)", Lead, Countdown(now, window.WindowStart))
	case Ended:
		return nil, fmt.Errorf("check-in has ended")
	}

	ticket, err := s.backend.ScanTicket(ctx, code, gate, s.deviceID, s.staff.UserID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ticketCode = ""
	s.mu.Unlock()

	// Refresh is best effort; the check-in itself already succeeded.
	_ = s.Refresh(ctx)
	return ticket, nil
}

// Tickets returns the roster filtered by the selected showtime. With no
// showtime selected (or an event without showtimes) the full roster is
// returned.
func (s *Station) Tickets() []models.TicketResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, filtered := s.selectedShowtimeCodeLocked()
	if !filtered {
		out := make([]models.TicketResponse, len(s.tickets))
		copy(out, s.tickets)
		return out
	}

	var out []models.TicketResponse
	for _, t := range s.tickets {
		if t.ShowtimeCode == code {
			out = append(out, t)
		}
	}
	return out
}

// Logs returns the check-in history restricted to tickets in the selected
// showtime.
func (s *Station) Logs() []models.CheckInLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, filtered := s.selectedShowtimeCodeLocked()
	if !filtered {
		out := make([]models.CheckInLog, len(s.logs))
		copy(out, s.logs)
		return out
	}

	codes := make(map[string]bool)
	for _, t := range s.tickets {
		if t.ShowtimeCode == code {
			codes[t.TicketCode] = true
		}
	}

	var out []models.CheckInLog
	for _, l := range s.logs {
		if l.Ticket != nil && codes[l.Ticket.TicketCode] {
			out = append(out, l)
		}
	}
	return out
}

func (s *Station) selectedShowtimeCodeLocked() (string, bool) {
	if s.selectedShowtime == 0 || len(s.showtimes) == 0 {
		return "", false
	}
	for _, st := range s.showtimes {
		if st.ID == s.selectedShowtime {
			return st.Code, true
		}
	}
	return "", false
}

// extractShowtimes collects the distinct showtimes across all ticket types,
// ordered by start time.
func extractShowtimes(options []models.TicketOption) []models.ShowtimeRef {
	seen := make(map[int]bool)
	var out []models.ShowtimeRef
	for _, opt := range options {
		for _, st := range opt.Showtimes {
			if seen[st.ShowtimeID] {
				continue
			}
			seen[st.ShowtimeID] = true
			out = append(out, models.ShowtimeRef{
				ID:        st.ShowtimeID,
				Code:      st.ShowtimeCode,
				StartTime: st.StartTime,
				EndTime:   st.EndTime,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}
