package models

import "time"

// EventStatus represents the lifecycle status of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPending   EventStatus = "PENDING"
	EventPublished EventStatus = "PUBLISHED"
	EventRejected  EventStatus = "REJECTED"
	EventCancelled EventStatus = "CANCELLED"
)

// Venue represents the location an event takes place at.
type Venue struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// Event is the backend's event entity as seen by the client. Fetched fresh
// per screen and discarded; the client never owns its lifecycle.
type Event struct {
	ID          int         `json:"id,omitempty"`
	OrganizerID string      `json:"organizerId,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	StartTime   time.Time   `json:"startTime,omitempty"`
	EndTime     time.Time   `json:"endTime,omitempty"`
	Venue       *Venue      `json:"venue,omitempty"`
	Status      EventStatus `json:"status,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

// EventPage is one page of a paged event search response.
type EventPage struct {
	Content       []Event `json:"content"`
	TotalElements int     `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	Number        int     `json:"number"`
	Size          int     `json:"size"`
}

// Seat represents a single seat in an event's seating layout.
type Seat struct {
	ID        int    `json:"id,omitempty"`
	EventID   int    `json:"eventId,omitempty"`
	Label     string `json:"label,omitempty"`
	RowLabel  string `json:"rowLabel,omitempty"`
	SeatIndex int    `json:"seatIndex,omitempty"`
	Status    string `json:"status,omitempty"`
}
