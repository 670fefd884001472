package models

import "time"

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderRefunded  OrderStatus = "REFUNDED"
)

// OrderItemRequest is one aggregated line of an order submission. Seat
// granularity is dropped here; lines are aggregated by ticket type and
// showtime.
type OrderItemRequest struct {
	TicketTypeID int `json:"ticketTypeId"`
	ShowtimeID   int `json:"showtimeId,omitempty"`
	Quantity     int `json:"quantity"`
	Price        int `json:"price"` // in cents
}

// OrderRequest is the payload for order creation.
type OrderRequest struct {
	UserID        string             `json:"userId"`
	EventID       int                `json:"eventId"`
	PaymentMethod string             `json:"paymentMethod"`
	Currency      string             `json:"currency,omitempty"`
	DiscountCode  string             `json:"discountCode,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemResponse is one line of an order as returned by the backend.
type OrderItemResponse struct {
	ID           int    `json:"id,omitempty"`
	TicketTypeID int    `json:"ticketTypeId,omitempty"`
	TicketName   string `json:"ticketName,omitempty"`
	ShowtimeID   int    `json:"showtimeId,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	Price        int    `json:"price,omitempty"` // in cents
}

// OrderResponse is an order as returned by the backend.
type OrderResponse struct {
	ID            int                 `json:"id,omitempty"`
	UserID        string              `json:"userId,omitempty"`
	EventID       int                 `json:"eventId,omitempty"`
	EventName     string              `json:"eventName,omitempty"`
	TotalAmount   int                 `json:"totalAmount,omitempty"` // in cents
	Currency      string              `json:"currency,omitempty"`
	DiscountCode  string              `json:"discountCode,omitempty"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	Status        OrderStatus         `json:"status,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt,omitempty"`
	UpdatedAt     time.Time           `json:"updatedAt,omitempty"`
}

// PaymentTransactionStatus represents the status of a payment transaction.
type PaymentTransactionStatus string

const (
	PaymentPending  PaymentTransactionStatus = "PENDING"
	PaymentSuccess  PaymentTransactionStatus = "SUCCESS"
	PaymentFailed   PaymentTransactionStatus = "FAILED"
	PaymentRefunded PaymentTransactionStatus = "REFUNDED"
)

// PaymentTransaction is the backend's answer to a payment initiation. A
// SUCCESS status means the payment completed synchronously; a non-empty
// PaymentURL means the buyer must be sent to an external gateway.
type PaymentTransaction struct {
	ID            int                      `json:"id,omitempty"`
	OrderID       int                      `json:"orderId,omitempty"`
	PaymentMethod string                   `json:"paymentMethod,omitempty"`
	TransactionID string                   `json:"transactionId,omitempty"`
	Amount        int                      `json:"amount,omitempty"` // in cents
	Status        PaymentTransactionStatus `json:"status,omitempty"`
	PaymentURL    string                   `json:"paymentUrl,omitempty"`
	CreatedAt     time.Time                `json:"createdAt,omitempty"`
}
