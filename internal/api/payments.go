package api

import (
	"context"
	"net/http"
	"net/url"

	"eventhub-client/internal/models"
)

// PaymentReturn forwards the query parameters of a gateway redirect to the
// backend, verbatim. The backend verifies the gateway signature and settles
// the order.
func (c *Client) PaymentReturn(ctx context.Context, params url.Values) error {
	return c.do(ctx, http.MethodGet, "/api/payments/vnpay_return", params, nil, nil)
}

// RefundRequest is the payload for requesting a refund.
type RefundRequest struct {
	OrderID int    `json:"orderId"`
	Reason  string `json:"reason,omitempty"`
}

// RequestRefund asks the backend to refund an order.
func (c *Client) RequestRefund(ctx context.Context, req RefundRequest) (*models.PaymentTransaction, error) {
	var out models.PaymentTransaction
	if err := c.do(ctx, http.MethodPost, "/api/payments/refund", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
