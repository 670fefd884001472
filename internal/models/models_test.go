package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowtimeAvailable(t *testing.T) {
	st := ShowtimeInfo{AllocatedQuantity: 100, SoldQuantity: 70, ReservedQuantity: 20}
	assert.Equal(t, 10, st.Available())

	// reservations can make a showtime read oversold
	st.ReservedQuantity = 40
	assert.Equal(t, -10, st.Available())
}

func TestAvailableForCapsAtQuota(t *testing.T) {
	ticket := &TicketOption{Quota: 5}
	st := ShowtimeInfo{AllocatedQuantity: 100}
	assert.Equal(t, 5, ticket.AvailableFor(st))

	ticket.Quota = 0 // no quota
	assert.Equal(t, 100, ticket.AvailableFor(st))

	ticket.Quota = 200 // quota above stock does nothing
	assert.Equal(t, 100, ticket.AvailableFor(st))
}

func TestSaleWindow(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	unbounded := &TicketOption{}
	assert.True(t, unbounded.SaleActive(now))

	upcoming := &TicketOption{SaleStart: now.Add(time.Hour)}
	assert.False(t, upcoming.SaleActive(now))
	assert.True(t, upcoming.SaleNotStarted(now))

	over := &TicketOption{SaleEnd: now.Add(-time.Hour)}
	assert.False(t, over.SaleActive(now))
	assert.True(t, over.SaleEnded(now))

	open := &TicketOption{SaleStart: now.Add(-time.Hour), SaleEnd: now.Add(time.Hour)}
	assert.True(t, open.SaleActive(now))
}

func TestDiscountApply(t *testing.T) {
	percent := &Discount{DiscountPercent: 10}
	assert.Equal(t, 4500, percent.Apply(5000))

	amount := &Discount{DiscountAmount: 1500}
	assert.Equal(t, 3500, amount.Apply(5000))

	// never below zero
	big := &Discount{DiscountAmount: 9000}
	assert.Equal(t, 0, big.Apply(5000))

	none := &Discount{}
	assert.Equal(t, 5000, none.Apply(5000))
}

func TestCartItemKeyAndSubtotal(t *testing.T) {
	item := CartItem{TicketTypeID: 5, SeatID: 2, ShowtimeCode: "ST-1", Price: 2500, Quantity: 3}
	assert.Equal(t, CartKey{TicketTypeID: 5, SeatID: 2, ShowtimeCode: "ST-1"}, item.Key())
	assert.Equal(t, 7500, item.Subtotal())
}

func TestCartItemValidate(t *testing.T) {
	valid := CartItem{TicketTypeID: 5, EventID: 1, Price: 2500, Quantity: 1}
	assert.NoError(t, valid.Validate())

	assert.Error(t, CartItem{EventID: 1, Price: 1, Quantity: 1}.Validate())
	assert.Error(t, CartItem{TicketTypeID: 5, Price: 1, Quantity: 1}.Validate())
	assert.Error(t, CartItem{TicketTypeID: 5, EventID: 1, Price: -1, Quantity: 1}.Validate())
	assert.Error(t, CartItem{TicketTypeID: 5, EventID: 1, Price: 1}.Validate())
}
