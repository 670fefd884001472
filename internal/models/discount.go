package models

import "time"

// Discount is a discount code validated against a single event. Exactly one
// of DiscountPercent or DiscountAmount is expected to be set.
type Discount struct {
	ID              int       `json:"id,omitempty"`
	EventID         int       `json:"eventId,omitempty"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discountPercent,omitempty"`
	DiscountAmount  int       `json:"discountAmount,omitempty"` // in cents
	ValidFrom       time.Time `json:"validFrom,omitempty"`
	ValidTo         time.Time `json:"validTo,omitempty"`
	MaxUses         int       `json:"maxUses,omitempty"`
	UsedCount       int       `json:"usedCount,omitempty"`
}

// Apply returns the total after applying the discount to the given subtotal
// in cents. The result never drops below zero.
func (d *Discount) Apply(subtotal int) int {
	total := subtotal
	if d.DiscountPercent > 0 {
		total -= int(float64(total) * d.DiscountPercent / 100)
	} else if d.DiscountAmount > 0 {
		total -= d.DiscountAmount
	}
	if total < 0 {
		return 0
	}
	return total
}
