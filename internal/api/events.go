package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"eventhub-client/internal/models"
)

// EventSearchParams are the optional filters for the event search endpoint.
// Zero values are omitted from the query.
type EventSearchParams struct {
	Query    string
	Category string
	City     string
	Status   models.EventStatus
	Page     int
	Size     int
}

// ListEvents returns all events visible to the caller.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchEvents returns a page of events matching the given filters.
func (c *Client) SearchEvents(ctx context.Context, params EventSearchParams) (*models.EventPage, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.City != "" {
		query.Set("city", params.City)
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	query.Set("page", strconv.Itoa(params.Page))
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}

	var out models.EventPage
	if err := c.do(ctx, http.MethodGet, "/api/events/search", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvent returns a single event by id.
func (c *Client) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TicketsWithShowtimes returns an event's ticket types with their
// per-showtime inventory.
func (c *Client) TicketsWithShowtimes(ctx context.Context, eventID int) ([]models.TicketOption, error) {
	var out []models.TicketOption
	path := fmt.Sprintf("/api/events/%d/tickets-with-showtimes", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EventSeats returns the seating layout for an event.
func (c *Client) EventSeats(ctx context.Context, eventID int) ([]models.Seat, error) {
	var out []models.Seat
	path := fmt.Sprintf("/api/events/%d/seats", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateDiscount validates a discount code against a single event and
// returns the discount when the code is usable.
func (c *Client) ValidateDiscount(ctx context.Context, eventID int, code string) (*models.Discount, error) {
	query := url.Values{}
	query.Set("code", code)

	var out models.Discount
	path := fmt.Sprintf("/api/events/%d/discounts/validate", eventID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
