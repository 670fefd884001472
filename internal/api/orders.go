package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventhub-client/internal/models"
)

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	var out models.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiatePayment starts payment processing for an order.
func (c *Client) InitiatePayment(ctx context.Context, orderID int, paymentMethod string) (*models.PaymentTransaction, error) {
	query := url.Values{}
	query.Set("paymentMethod", paymentMethod)

	var out models.PaymentTransaction
	path := fmt.Sprintf("/api/orders/%d/initiate-payment", orderID)
	if err := c.do(ctx, http.MethodPost, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder returns a single order by id.
func (c *Client) GetOrder(ctx context.Context, orderID int) (*models.OrderResponse, error) {
	var out models.OrderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserOrders returns the order history for a user.
func (c *Client) UserOrders(ctx context.Context, userID string) ([]models.OrderResponse, error) {
	var out []models.OrderResponse
	path := "/api/orders/user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EventOrders returns the orders for an event, optionally filtered by
// status (organizer or admin only).
func (c *Client) EventOrders(ctx context.Context, eventID int, status models.OrderStatus) ([]models.OrderResponse, error) {
	var query url.Values
	if status != "" {
		query = url.Values{}
		query.Set("status", string(status))
	}

	var out []models.OrderResponse
	path := fmt.Sprintf("/api/orders/event/%d", eventID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
