package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub-client/internal/models"
)

func TestAttendeeCSV(t *testing.T) {
	scanTime := time.Date(2026, 6, 1, 18, 30, 0, 0, time.UTC)
	tickets := []models.TicketResponse{
		{TicketCode: "TK-1", AttendeeName: "Ann Example", AttendeeEmail: "ann@example.com", Status: models.TicketCheckedIn},
		{TicketCode: "TK-2", AttendeeName: `Bob "The Builder"`, AttendeeEmail: "bob@example.com", Status: models.TicketValid},
	}
	logs := []models.CheckInLog{
		{Ticket: &models.TicketResponse{TicketCode: "TK-1"}, CheckInTime: scanTime},
		{Ticket: nil, CheckInTime: scanTime}, // malformed log entries are skipped
	}

	data, err := AttendeeCSV(tickets, logs)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Ticket Code", "Attendee Name", "Attendee Email", "Status", "Check-in Time"}, records[0])
	assert.Equal(t, []string{"TK-1", "Ann Example", "ann@example.com", "CHECKED_IN", "2026-06-01 18:30:00"}, records[1])
	// never scanned, empty check-in column; the quoted name survives the
	// round trip
	assert.Equal(t, []string{"TK-2", `Bob "The Builder"`, "bob@example.com", "VALID", ""}, records[2])
}

func TestAttendeeCSVEmptyRoster(t *testing.T) {
	data, err := AttendeeCSV(nil, nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAttendeeFilename(t *testing.T) {
	event := &models.Event{ID: 7, Name: "Summer Jazz Night"}
	assert.Equal(t, "attendees_Summer_Jazz_Night_7.csv", AttendeeFilename(event))
}

func TestGenerateTicketsPDF(t *testing.T) {
	event := &models.Event{
		ID:        1,
		Name:      "Summer Festival (Main Stage)",
		StartTime: time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC),
		Venue:     &models.Venue{Name: "City Arena", City: "Hanoi"},
	}
	order := &models.OrderResponse{
		ID:          42,
		Currency:    "USD",
		TotalAmount: 5000,
		CreatedAt:   time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC),
	}
	tickets := []models.TicketResponse{
		{TicketCode: "TK-1", AttendeeName: "Ann", TicketType: &models.TicketTypeRef{Name: "GA"}},
		{TicketCode: "TK-2", AttendeeName: "Bob", SeatLabel: "A-12"},
	}

	data, err := NewPDFService().GenerateTicketsPDF(tickets, event, order)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "%%EOF"))

	// one page per ticket
	assert.Equal(t, 2, strings.Count(text, "/Type /Page\n"))
	assert.Contains(t, text, "/Count 2")
	// QR image objects, one per page
	assert.Equal(t, 2, strings.Count(text, "/Subtype /Image"))
	assert.Contains(t, text, "/ColorSpace /DeviceGray")
	// parentheses in the event name are escaped in the content stream
	assert.Contains(t, text, `Summer Festival \(Main Stage\)`)
	assert.Contains(t, text, "(Ticket Code: TK-1)")
	assert.Contains(t, text, "(Seat: A-12)")
	assert.Contains(t, text, "(Order Number: #42)")
	assert.Contains(t, text, "xref")
}

func TestGenerateTicketsPDFNoTickets(t *testing.T) {
	_, err := NewPDFService().GenerateTicketsPDF(nil, &models.Event{}, nil)
	assert.Error(t, err)
}

func TestPDFXrefOffsetsPointAtObjects(t *testing.T) {
	event := &models.Event{ID: 1, Name: "Show", StartTime: time.Now()}
	tickets := []models.TicketResponse{{TicketCode: "TK-1", AttendeeName: "Ann"}}

	data, err := NewPDFService().GenerateTicketsPDF(tickets, event, nil)
	require.NoError(t, err)

	text := string(data)
	xref := strings.Index(text, "xref\n")
	require.Positive(t, xref)

	// every offset line in the table must land on "<n> 0 obj"
	lines := strings.Split(text[xref:], "\n")
	require.Greater(t, len(lines), 3)
	var offsets []string
	for _, l := range lines[2:] { // skip "xref" and "0 N"
		if strings.HasSuffix(l, " n ") {
			offsets = append(offsets, strings.Fields(l)[0])
		}
	}
	require.NotEmpty(t, offsets)
	for i, off := range offsets {
		pos, err := strconv.Atoi(off)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text[pos:], fmt.Sprintf("%d 0 obj", i+1)),
			"object %d offset should point at its header", i+1)
	}
}
