package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventhub-client/internal/models"
)

// GetTicket returns ticket details by ticket code.
func (c *Client) GetTicket(ctx context.Context, ticketCode string) (*models.TicketResponse, error) {
	var out models.TicketResponse
	path := "/api/tickets/" + url.PathEscape(ticketCode)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserTickets returns all tickets held by a user.
func (c *Client) UserTickets(ctx context.Context, userID string) ([]models.TicketResponse, error) {
	var out []models.TicketResponse
	path := "/api/tickets/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EventTickets returns all tickets issued for an event.
func (c *Client) EventTickets(ctx context.Context, eventID int) ([]models.TicketResponse, error) {
	var out []models.TicketResponse
	path := fmt.Sprintf("/api/tickets/event/%d", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderTickets returns the tickets issued for an order.
func (c *Client) OrderTickets(ctx context.Context, orderID int) ([]models.TicketResponse, error) {
	var out []models.TicketResponse
	path := fmt.Sprintf("/api/tickets/order/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScanTicket checks a ticket in. Gate, device and staff identify where and
// by whom the scan happened.
func (c *Client) ScanTicket(ctx context.Context, ticketCode, gate, deviceID, staffID string) (*models.TicketResponse, error) {
	query := url.Values{}
	if gate != "" {
		query.Set("gate", gate)
	}
	if deviceID != "" {
		query.Set("deviceId", deviceID)
	}
	if staffID != "" {
		query.Set("staffId", staffID)
	}

	var out models.TicketResponse
	path := "/api/tickets/" + url.PathEscape(ticketCode) + "/scan"
	if err := c.do(ctx, http.MethodPost, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventCheckInLogs returns the check-in history for an event.
func (c *Client) EventCheckInLogs(ctx context.Context, eventID int) ([]models.CheckInLog, error) {
	var out []models.CheckInLog
	path := fmt.Sprintf("/api/tickets/event/%d/check-in-logs", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TransferTicket transfers a ticket to another attendee by email.
func (c *Client) TransferTicket(ctx context.Context, ticketCode, recipientEmail string) (*models.TicketResponse, error) {
	body := map[string]string{"recipientEmail": recipientEmail}

	var out models.TicketResponse
	path := "/api/tickets/" + url.PathEscape(ticketCode) + "/transfer"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
