package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventhub-client/internal/models"
)

// CreateReservation places a temporary hold on inventory.
func (c *Client) CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	var out models.Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservations", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReservation returns a reservation by id.
func (c *Client) GetReservation(ctx context.Context, id int) (*models.Reservation, error) {
	var out models.Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reservations/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserReservations returns a user's reservations.
func (c *Client) UserReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	path := "/api/reservations/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmReservation converts a hold into a confirmed reservation.
func (c *Client) ConfirmReservation(ctx context.Context, id int) (*models.Reservation, error) {
	var out models.Reservation
	path := fmt.Sprintf("/api/reservations/%d/confirm", id)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelReservation releases a hold.
func (c *Client) CancelReservation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/reservations/%d/cancel", id), nil, nil, nil)
}

// AddCartItem adds or updates a held cart line for the user named in the
// request. The backend replaces an existing hold for the same ticket type.
func (c *Client) AddCartItem(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	var out models.Reservation
	if err := c.do(ctx, http.MethodPost, "/api/reservations/cart", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveCartItem releases a single held cart line.
func (c *Client) RemoveCartItem(ctx context.Context, reservationID int) error {
	path := fmt.Sprintf("/api/reservations/cart/%d", reservationID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// UserCartItems returns the held cart lines for a user.
func (c *Client) UserCartItems(ctx context.Context, userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	path := "/api/reservations/cart/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeatAvailability reports whether a seat is currently free to reserve.
func (c *Client) SeatAvailability(ctx context.Context, seatID int) (bool, error) {
	var out struct {
		Available bool `json:"available"`
	}
	path := fmt.Sprintf("/api/reservations/seat-availability/%d", seatID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

// ActiveEventReservations returns the active holds for an event.
func (c *Client) ActiveEventReservations(ctx context.Context, eventID int) ([]models.Reservation, error) {
	var out []models.Reservation
	path := fmt.Sprintf("/api/reservations/event/%d/active", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
