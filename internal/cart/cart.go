// Package cart holds the in-memory ticket selection. It gates every
// mutation against the ticket type's quota and purchase limit; the backend
// enforces the same ceilings again at order creation, so this is a
// convenience guard, not a source of truth.
package cart

import (
	"fmt"
	"sync"

	"eventhub-client/internal/models"
)

// Cart is the in-memory list of selected ticket lines. It is lost when the
// process exits.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges qty units of item into the cart. With existing the quantity
// already held for the same (ticket type, seat, showtime) line, the add is
// rejected without mutation when existing+qty exceeds the purchase limit or
// the quota, whichever is set.
func (c *Cart) Add(item models.CartItem, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := item.Key()
	existing := 0
	idx := -1
	for i, line := range c.items {
		if line.Key() == key {
			existing = line.Quantity
			idx = i
			break
		}
	}

	if err := checkCeilings(item, existing, existing+qty); err != nil {
		return err
	}

	if idx >= 0 {
		c.items[idx].Quantity += qty
		return nil
	}
	item.Quantity = qty
	c.items = append(c.items, item)
	return nil
}

// UpdateQuantity sets a line's absolute quantity. Zero removes the line,
// negative values clamp to 1, and the quota/purchase-limit ceilings apply
// to the new quantity; a rejected update leaves the line untouched.
func (c *Cart) UpdateQuantity(key models.CartKey, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, line := range c.items {
		if line.Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no cart line for ticket type %d", key.TicketTypeID)
	}

	if qty == 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return nil
	}
	if qty < 1 {
		qty = 1
	}

	line := c.items[idx]
	if err := checkCeilings(line, line.Quantity, qty); err != nil {
		return err
	}

	c.items[idx].Quantity = qty
	return nil
}

// Remove drops a line from the cart.
func (c *Cart) Remove(key models.CartKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.items {
		if line.Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the cart lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the cart subtotal in cents.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.items {
		total += line.Subtotal()
	}
	return total
}

// ItemCount returns the number of tickets across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.items {
		count += line.Quantity
	}
	return count
}

// QuantityForTicketType returns the tickets held for one ticket type across
// all seats and showtimes.
func (c *Cart) QuantityForTicketType(ticketTypeID int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.items {
		if line.TicketTypeID == ticketTypeID {
			count += line.Quantity
		}
	}
	return count
}

// EventIDs returns the distinct event ids present in the cart, in first-seen
// order.
func (c *Cart) EventIDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[int]bool)
	var ids []int
	for _, line := range c.items {
		if !seen[line.EventID] {
			seen[line.EventID] = true
			ids = append(ids, line.EventID)
		}
	}
	return ids
}

// checkCeilings rejects a target quantity that breaks the line's purchase
// limit or quota. A zero ceiling means the ceiling is not set.
func checkCeilings(line models.CartItem, existing, target int) error {
	if line.PurchaseLimit > 0 && target > line.PurchaseLimit {
		return fmt.Errorf("purchase limit is %d ticket(s), you already have %d in cart",
			line.PurchaseLimit, existing)
	}
	if line.Quota > 0 && target > line.Quota {
		return fmt.Errorf("only %d ticket(s) allowed by quota, you already have %d in cart",
			line.Quota, existing)
	}
	return nil
}
