// Package checkout turns a cart into a paid order. The sequence is
// deliberately simple: validate discount, aggregate lines, submit the
// order, initiate payment. There is no rollback and no retry; a failed step
// aborts and leaves the cart untouched so the buyer can try again. A crash
// between order submission and payment leaves the order in the backend's
// pending state, which the backend reconciles on its own.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"eventhub-client/internal/cart"
	"eventhub-client/internal/models"
)

// ErrMultipleEvents is returned when a discount is applied to a cart whose
// lines span more than one event, independent of the code's validity.
var ErrMultipleEvents = errors.New("cart contains tickets from multiple events; discounts apply to one event at a time")

// ErrBusy is returned when a checkout is already in flight.
var ErrBusy = errors.New("checkout already in progress")

// ErrNoPaymentURL is returned when the payment response is neither a
// synchronous success nor a gateway redirect.
var ErrNoPaymentURL = errors.New("cannot obtain payment URL")

// Backend is the slice of the API the orchestrator needs.
type Backend interface {
	ValidateDiscount(ctx context.Context, eventID int, code string) (*models.Discount, error)
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error)
	InitiatePayment(ctx context.Context, orderID int, paymentMethod string) (*models.PaymentTransaction, error)
}

// Result reports how a checkout ended. Exactly one of Confirmed or
// RedirectURL is meaningful: a confirmed result means the payment settled
// synchronously and the cart was cleared; a redirect result means the buyer
// must visit the gateway URL and the cart stays as-is until the return.
type Result struct {
	OrderID     int
	Confirmed   bool
	RedirectURL string
	Transaction *models.PaymentTransaction
}

// Checkout orchestrates the order-then-pay sequence for one cart.
type Checkout struct {
	backend Backend
	cart    *cart.Cart

	busy     busyFlag
	discount *models.Discount
}

// New creates a checkout orchestrator over the given cart.
func New(backend Backend, c *cart.Cart) *Checkout {
	return &Checkout{backend: backend, cart: c}
}

// ApplyDiscount validates a code against the single event in the cart and
// keeps it for the next Submit. A cart spanning several events refuses the
// application before the backend is consulted.
func (co *Checkout) ApplyDiscount(ctx context.Context, code string) (*models.Discount, error) {
	if code == "" {
		return nil, fmt.Errorf("please enter a discount code")
	}
	items := co.cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty, cannot apply discount")
	}
	eventIDs := co.cart.EventIDs()
	if len(eventIDs) > 1 {
		return nil, ErrMultipleEvents
	}

	discount, err := co.backend.ValidateDiscount(ctx, eventIDs[0], code)
	if err != nil {
		co.discount = nil
		return nil, err
	}
	co.discount = discount
	return discount, nil
}

// RemoveDiscount forgets any applied discount.
func (co *Checkout) RemoveDiscount() {
	co.discount = nil
}

// Discount returns the currently applied discount, if any.
func (co *Checkout) Discount() *models.Discount {
	return co.discount
}

// Subtotal returns the cart total before discount, in cents.
func (co *Checkout) Subtotal() int {
	return co.cart.Total()
}

// Total returns the amount due after the applied discount, in cents.
func (co *Checkout) Total() int {
	subtotal := co.cart.Total()
	if co.discount == nil {
		return subtotal
	}
	return co.discount.Apply(subtotal)
}

// AggregateItems folds the cart lines into order items keyed by ticket type
// and showtime, dropping per-seat granularity.
func (co *Checkout) AggregateItems() []models.OrderItemRequest {
	type aggKey struct {
		ticketTypeID int
		showtimeID   int
	}

	var order []aggKey
	byKey := make(map[aggKey]*models.OrderItemRequest)
	for _, line := range co.cart.Items() {
		key := aggKey{line.TicketTypeID, line.ShowtimeID}
		if item, ok := byKey[key]; ok {
			item.Quantity += line.Quantity
			continue
		}
		byKey[key] = &models.OrderItemRequest{
			TicketTypeID: line.TicketTypeID,
			ShowtimeID:   line.ShowtimeID,
			Quantity:     line.Quantity,
			Price:        line.Price,
		}
		order = append(order, key)
	}

	items := make([]models.OrderItemRequest, 0, len(order))
	for _, key := range order {
		items = append(items, *byKey[key])
	}
	return items
}

// Submit runs the order-then-pay sequence. On synchronous payment success
// the cart is cleared; on a gateway redirect the caller must send the buyer
// to Result.RedirectURL. Any failure aborts without touching the cart.
func (co *Checkout) Submit(ctx context.Context, userID, paymentMethod, currency string) (*Result, error) {
	if !co.busy.acquire() {
		return nil, ErrBusy
	}
	defer co.busy.release()

	if userID == "" {
		return nil, fmt.Errorf("user not logged in")
	}
	items := co.cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	req := &models.OrderRequest{
		UserID:        userID,
		EventID:       items[0].EventID,
		PaymentMethod: paymentMethod,
		Currency:      currency,
		Items:         co.AggregateItems(),
	}
	if co.discount != nil {
		req.DiscountCode = co.discount.Code
	}

	order, err := co.backend.CreateOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	tx, err := co.backend.InitiatePayment(ctx, order.ID, paymentMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment for order %d: %w", order.ID, err)
	}

	result := &Result{OrderID: order.ID, Transaction: tx}
	switch {
	case tx.Status == models.PaymentSuccess:
		result.Confirmed = true
		co.cart.Clear()
		co.discount = nil
		return result, nil
	case tx.PaymentURL != "":
		result.RedirectURL = tx.PaymentURL
		return result, nil
	default:
		return nil, fmt.Errorf("order %d: %w", order.ID, ErrNoPaymentURL)
	}
}
