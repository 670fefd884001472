package models

import (
	"errors"
	"time"
)

// CartKey identifies a cart line. Items that differ in any of the three
// fields are distinct lines, even for the same ticket type.
type CartKey struct {
	TicketTypeID int    `json:"ticket_type_id"`
	SeatID       int    `json:"seat_id"` // 0 for unassigned seating
	ShowtimeCode string `json:"showtime_code"`
}

// CartItem represents one line of the in-memory cart. The cart is client
// state only and is lost when the process exits; the backend re-validates
// quotas and purchase limits at order creation.
type CartItem struct {
	TicketTypeID   int       `json:"ticket_type_id"`
	TicketTypeName string    `json:"ticket_type_name"`
	Price          int       `json:"price"` // in cents
	EventID        int       `json:"event_id"`
	EventName      string    `json:"event_name"`
	Quantity       int       `json:"quantity"`
	SeatID         int       `json:"seat_id,omitempty"`
	ShowtimeID     int       `json:"showtime_id,omitempty"`
	ShowtimeCode   string    `json:"showtime_code,omitempty"`
	ShowtimeName   string    `json:"showtime_name,omitempty"`
	Description    string    `json:"description,omitempty"`
	Quota          int       `json:"quota,omitempty"`          // 0 means no quota
	PurchaseLimit  int       `json:"purchase_limit,omitempty"` // 0 means no limit
	SaleStart      time.Time `json:"sale_start,omitempty"`
	SaleEnd        time.Time `json:"sale_end,omitempty"`
}

// Key returns the line key for this item.
func (i CartItem) Key() CartKey {
	return CartKey{
		TicketTypeID: i.TicketTypeID,
		SeatID:       i.SeatID,
		ShowtimeCode: i.ShowtimeCode,
	}
}

// Subtotal returns the line total in cents.
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}

// Validate validates the cart item data.
func (i CartItem) Validate() error {
	if i.TicketTypeID <= 0 {
		return errors.New("ticket type id is required")
	}
	if i.EventID <= 0 {
		return errors.New("event id is required")
	}
	if i.Price < 0 {
		return errors.New("ticket price cannot be negative")
	}
	if i.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return nil
}
