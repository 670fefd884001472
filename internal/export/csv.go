package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"eventhub-client/internal/models"
)

// AttendeeCSV renders an event's attendee roster as CSV, one row per
// ticket. The check-in time column is filled from the event's check-in
// logs, matched by ticket code; tickets never scanned leave it empty.
func AttendeeCSV(tickets []models.TicketResponse, logs []models.CheckInLog) ([]byte, error) {
	checkedIn := make(map[string]string, len(logs))
	for _, l := range logs {
		if l.Ticket == nil || l.Ticket.TicketCode == "" {
			continue
		}
		checkedIn[l.Ticket.TicketCode] = l.CheckInTime.Format("2006-01-02 15:04:05")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Ticket Code", "Attendee Name", "Attendee Email", "Status", "Check-in Time"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range tickets {
		row := []string{
			t.TicketCode,
			t.AttendeeName,
			t.AttendeeEmail,
			string(t.Status),
			checkedIn[t.TicketCode],
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// AttendeeFilename builds the download filename for an event's attendee
// export.
func AttendeeFilename(event *models.Event) string {
	name := strings.ReplaceAll(event.Name, " ", "_")
	return fmt.Sprintf("attendees_%s_%d.csv", name, event.ID)
}
