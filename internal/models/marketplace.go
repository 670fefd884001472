package models

import "time"

// ListingStatus represents the status of a resale listing.
type ListingStatus string

const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingSold      ListingStatus = "SOLD"
	ListingCancelled ListingStatus = "CANCELLED"
)

// MarketplaceListing is a peer-to-peer resale listing for an issued ticket.
type MarketplaceListing struct {
	ID        string          `json:"id,omitempty"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	SellerID  string          `json:"sellerId,omitempty"`
	Price     int             `json:"price,omitempty"` // in cents
	Status    ListingStatus   `json:"status,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}

// ListingRequest is the payload for creating a resale listing.
type ListingRequest struct {
	TicketID int `json:"ticketId"`
	Price    int `json:"price"` // in cents
}
