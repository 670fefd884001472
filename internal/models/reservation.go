package models

import "time"

// ReservationStatus represents the status of a backend inventory hold.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

// Reservation is a temporary backend-side hold on inventory prior to order
// confirmation. The main cart flow does not create these; they exist for
// seat selection and expire server-side.
type Reservation struct {
	ID           int               `json:"id,omitempty"`
	UserID       string            `json:"userId,omitempty"`
	EventID      int               `json:"eventId,omitempty"`
	TicketTypeID int               `json:"ticketTypeId,omitempty"`
	SeatID       int               `json:"seatId,omitempty"`
	Quantity     int               `json:"quantity,omitempty"`
	Status       ReservationStatus `json:"status,omitempty"`
	ExpiresAt    time.Time         `json:"expiresAt,omitempty"`
	CreatedAt    time.Time         `json:"createdAt,omitempty"`
}

// ReservationRequest is the payload for creating a reservation.
type ReservationRequest struct {
	UserID       string `json:"userId"`
	EventID      int    `json:"eventId"`
	TicketTypeID int    `json:"ticketTypeId"`
	SeatID       int    `json:"seatId,omitempty"`
	Quantity     int    `json:"quantity"`
}
