package models

import "time"

// TicketStatus represents the status of an issued ticket.
type TicketStatus string

const (
	TicketValid       TicketStatus = "VALID"
	TicketCheckedIn   TicketStatus = "CHECKED_IN"
	TicketCancelled   TicketStatus = "CANCELLED"
	TicketTransferred TicketStatus = "TRANSFERRED"
)

// TicketOption is a purchasable ticket category for an event, with its
// per-showtime inventory as returned by the tickets-with-showtimes endpoint.
type TicketOption struct {
	ID            int            `json:"id"`
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         int            `json:"price"` // in cents
	Quota         int            `json:"quota,omitempty"`         // 0 means no quota
	PurchaseLimit int            `json:"purchaseLimit,omitempty"` // 0 means no limit
	SaleStart     time.Time      `json:"saleStart,omitempty"`
	SaleEnd       time.Time      `json:"saleEnd,omitempty"`
	Showtimes     []ShowtimeInfo `json:"showtimes,omitempty"`
}

// ShowtimeInfo is a scheduled occurrence a ticket type's inventory is
// allocated against.
type ShowtimeInfo struct {
	ShowtimeID        int       `json:"showtimeId"`
	ShowtimeCode      string    `json:"showtimeCode"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	AllocatedQuantity int       `json:"allocatedQuantity"`
	SoldQuantity      int       `json:"soldQuantity"`
	ReservedQuantity  int       `json:"reservedQuantity"`
}

// Available returns the units still sellable for this showtime.
func (s ShowtimeInfo) Available() int {
	return s.AllocatedQuantity - (s.SoldQuantity + s.ReservedQuantity)
}

// AvailableFor returns the sellable units for a showtime, capped by the
// ticket type's quota when one is set.
func (t *TicketOption) AvailableFor(s ShowtimeInfo) int {
	available := s.Available()
	if t.Quota > 0 && available > t.Quota {
		return t.Quota
	}
	return available
}

// SaleActive reports whether the ticket is on sale at the given time. A
// ticket with no sale window is always on sale; when bounds are set they
// must be respected.
func (t *TicketOption) SaleActive(now time.Time) bool {
	if !t.SaleStart.IsZero() && now.Before(t.SaleStart) {
		return false
	}
	if !t.SaleEnd.IsZero() && now.After(t.SaleEnd) {
		return false
	}
	return true
}

// SaleNotStarted reports whether the sale window has yet to open.
func (t *TicketOption) SaleNotStarted(now time.Time) bool {
	return !t.SaleStart.IsZero() && now.Before(t.SaleStart)
}

// SaleEnded reports whether the sale window has closed.
func (t *TicketOption) SaleEnded(now time.Time) bool {
	return !t.SaleEnd.IsZero() && now.After(t.SaleEnd)
}

// Showtime looks up one of the ticket's showtimes by code.
func (t *TicketOption) Showtime(code string) (ShowtimeInfo, bool) {
	for _, s := range t.Showtimes {
		if s.ShowtimeCode == code {
			return s, true
		}
	}
	return ShowtimeInfo{}, false
}

// TicketTypeRef is the compact ticket type reference embedded in ticket
// responses.
type TicketTypeRef struct {
	ID   int    `json:"id,omitempty"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// ShowtimeRef is the compact showtime reference embedded in ticket
// responses.
type ShowtimeRef struct {
	ID        int       `json:"id,omitempty"`
	Code      string    `json:"code,omitempty"`
	StartTime time.Time `json:"startTime,omitempty"`
	EndTime   time.Time `json:"endTime,omitempty"`
}

// TicketResponse is an issued ticket as returned by the backend.
type TicketResponse struct {
	ID            int            `json:"id,omitempty"`
	OrderID       int            `json:"orderId,omitempty"`
	EventID       int            `json:"eventId,omitempty"`
	UserID        string         `json:"userId,omitempty"`
	SeatID        int            `json:"seatId,omitempty"`
	SeatLabel     string         `json:"seatLabel,omitempty"`
	TicketCode    string         `json:"ticketCode,omitempty"`
	ShowtimeCode  string         `json:"showtimeCode,omitempty"`
	EventName     string         `json:"eventName,omitempty"`
	AttendeeName  string         `json:"attendeeName,omitempty"`
	AttendeeEmail string         `json:"attendeeEmail,omitempty"`
	Status        TicketStatus   `json:"status,omitempty"`
	TicketType    *TicketTypeRef `json:"ticketType,omitempty"`
	Showtime      *ShowtimeRef   `json:"showtime,omitempty"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`
}

// CheckInLog is one check-in event recorded by the backend.
type CheckInLog struct {
	ID          int             `json:"id,omitempty"`
	Ticket      *TicketResponse `json:"ticket,omitempty"`
	CheckInTime time.Time       `json:"checkInTime,omitempty"`
	Gate        string          `json:"gate,omitempty"`
	DeviceID    string          `json:"deviceId,omitempty"`
	StaffID     string          `json:"staffId,omitempty"`
}
