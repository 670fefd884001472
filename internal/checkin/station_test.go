package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub-client/internal/api"
	"eventhub-client/internal/models"
	"eventhub-client/internal/session"
)

// Mock implementations for testing

type mockStationBackend struct {
	events   []models.Event
	assigned []int
	options  []models.TicketOption
	tickets  []models.TicketResponse
	logs     []models.CheckInLog

	scanned   *models.TicketResponse
	scanErr   error
	scanCalls int
	lastScan  map[string]string
}

func (m *mockStationBackend) SearchEvents(ctx context.Context, params api.EventSearchParams) (*models.EventPage, error) {
	return &models.EventPage{Content: m.events, TotalElements: len(m.events)}, nil
}

func (m *mockStationBackend) AssignedEvents(ctx context.Context, userID string) ([]int, error) {
	return m.assigned, nil
}

func (m *mockStationBackend) TicketsWithShowtimes(ctx context.Context, eventID int) ([]models.TicketOption, error) {
	return m.options, nil
}

func (m *mockStationBackend) EventTickets(ctx context.Context, eventID int) ([]models.TicketResponse, error) {
	return m.tickets, nil
}

func (m *mockStationBackend) EventCheckInLogs(ctx context.Context, eventID int) ([]models.CheckInLog, error) {
	return m.logs, nil
}

func (m *mockStationBackend) ScanTicket(ctx context.Context, ticketCode, gate, deviceID, staffID string) (*models.TicketResponse, error) {
	m.scanCalls++
	m.lastScan = map[string]string{
		"ticketCode": ticketCode,
		"gate":       gate,
		"deviceId":   deviceID,
		"staffId":    staffID,
	}
	return m.scanned, m.scanErr
}

func eventStart() time.Time {
	return time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC)
}

func stationFixture() (*mockStationBackend, *Station) {
	start := eventStart()
	backend := &mockStationBackend{
		events: []models.Event{
			{ID: 1, Name: "Summer Festival", OrganizerID: "org-1", StartTime: start, EndTime: start.Add(3 * time.Hour), Status: models.EventPublished},
		},
		options: []models.TicketOption{
			{
				ID: 5,
				Showtimes: []models.ShowtimeInfo{
					{ShowtimeID: 10, ShowtimeCode: "ST-EVE", StartTime: start, EndTime: start.Add(2 * time.Hour)},
					{ShowtimeID: 11, ShowtimeCode: "ST-MAT", StartTime: start.Add(-8 * time.Hour), EndTime: start.Add(-6 * time.Hour)},
				},
			},
			{
				ID: 6,
				// duplicate showtime on a second ticket type, must not repeat
				Showtimes: []models.ShowtimeInfo{
					{ShowtimeID: 10, ShowtimeCode: "ST-EVE", StartTime: start, EndTime: start.Add(2 * time.Hour)},
				},
			},
		},
		tickets: []models.TicketResponse{
			{ID: 1, TicketCode: "TK-1", AttendeeName: "Ann", ShowtimeCode: "ST-EVE", Status: models.TicketValid},
			{ID: 2, TicketCode: "TK-2", AttendeeName: "Bob", ShowtimeCode: "ST-MAT", Status: models.TicketCheckedIn},
		},
		logs: []models.CheckInLog{
			{ID: 1, Ticket: &models.TicketResponse{TicketCode: "TK-2"}, Gate: "Gate 1-A"},
		},
		scanned: &models.TicketResponse{ID: 1, TicketCode: "TK-1", AttendeeName: "Ann", Status: models.TicketCheckedIn},
	}
	staff := &session.Session{UserID: "staff-1", Roles: []string{"ROLE_STAFF"}}
	return backend, NewStation(backend, staff, "Gate 1-A", "device-7")
}

func TestVisibleEventsByRole(t *testing.T) {
	backend := &mockStationBackend{
		events: []models.Event{
			{ID: 1, OrganizerID: "org-1", Status: models.EventPublished},
			{ID: 2, OrganizerID: "org-2", Status: models.EventPublished},
			{ID: 3, OrganizerID: "org-1", Status: models.EventPublished},
		},
		assigned: []int{2},
	}

	tests := []struct {
		name    string
		session *session.Session
		wantIDs []int
	}{
		{name: "admin sees all", session: &session.Session{UserID: "a", Roles: []string{"ROLE_ADMIN"}}, wantIDs: []int{1, 2, 3}},
		{name: "organizer sees own", session: &session.Session{UserID: "org-1", Roles: []string{"ROLE_ORGANIZER"}}, wantIDs: []int{1, 3}},
		{name: "staff sees assigned", session: &session.Session{UserID: "s", Roles: []string{"ROLE_STAFF"}}, wantIDs: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			station := NewStation(backend, tt.session, "Gate 1", "dev")
			events, err := station.VisibleEvents(context.Background())
			require.NoError(t, err)

			var ids []int
			for _, ev := range events {
				ids = append(ids, ev.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSelectEventExtractsShowtimes(t *testing.T) {
	backend, station := stationFixture()
	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))

	showtimes := station.Showtimes()
	require.Len(t, showtimes, 2)
	// sorted by start time, duplicates across ticket types collapsed
	assert.Equal(t, "ST-MAT", showtimes[0].Code)
	assert.Equal(t, "ST-EVE", showtimes[1].Code)

	// more than one showtime means none is auto-selected
	_, ok := station.Window()
	assert.False(t, ok)

	require.NoError(t, station.SelectShowtime(10))
	w, ok := station.Window()
	require.True(t, ok)
	assert.Equal(t, eventStart().Add(-Lead), w.WindowStart)

	assert.Error(t, station.SelectShowtime(99))
}

func TestWindowFallsBackToEventTimes(t *testing.T) {
	backend, station := stationFixture()
	backend.options = nil

	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))

	w, ok := station.Window()
	require.True(t, ok)
	assert.Equal(t, backend.events[0].StartTime.Add(-Lead), w.WindowStart)
	assert.Equal(t, backend.events[0].EndTime, w.End)
}

func TestShowtimeFiltering(t *testing.T) {
	backend, station := stationFixture()
	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))

	// unfiltered before a showtime is picked
	assert.Len(t, station.Tickets(), 2)
	assert.Len(t, station.Logs(), 1)

	require.NoError(t, station.SelectShowtime(10)) // ST-EVE
	tickets := station.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "TK-1", tickets[0].TicketCode)
	// TK-2 belongs to the matinee, its log is filtered out
	assert.Empty(t, station.Logs())

	require.NoError(t, station.SelectShowtime(11)) // ST-MAT
	logs := station.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "TK-2", logs[0].Ticket.TicketCode)
}

func TestSubmitScan(t *testing.T) {
	backend, station := stationFixture()
	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))
	require.NoError(t, station.SelectShowtime(10))

	// during the active window
	now := eventStart().Add(-30 * time.Minute)

	// nothing entered yet
	_, err := station.Submit(context.Background(), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket code")
	assert.Zero(t, backend.scanCalls)

	station.SetTicketCode("TK-1")
	ticket, err := station.Submit(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, models.TicketCheckedIn, ticket.Status)

	assert.Equal(t, map[string]string{
		"ticketCode": "TK-1",
		"gate":       "Gate 1-A",
		"deviceId":   "device-7",
		"staffId":    "staff-1",
	}, backend.lastScan)

	// the pending code is cleared after a successful submit
	assert.Empty(t, station.TicketCode())
}

func TestSubmitOutsideWindow(t *testing.T) {
	backend, station := stationFixture()
	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))
	require.NoError(t, station.SelectShowtime(10))
	station.SetTicketCode("TK-1")

	_, err := station.Submit(context.Background(), eventStart().Add(-2*time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opens")
	assert.Zero(t, backend.scanCalls)

	_, err = station.Submit(context.Background(), eventStart().Add(5*time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ended")
	assert.Zero(t, backend.scanCalls)
}

func TestSubmitBackendRejection(t *testing.T) {
	backend, station := stationFixture()
	backend.scanErr = errors.New("Ticket already checked in")
	backend.scanned = nil

	require.NoError(t, station.SelectEvent(context.Background(), &backend.events[0]))
	require.NoError(t, station.SelectShowtime(10))
	station.SetTicketCode("TK-1")

	_, err := station.Submit(context.Background(), eventStart())
	require.Error(t, err)
	// a rejected scan keeps the code for correction
	assert.Equal(t, "TK-1", station.TicketCode())
}
