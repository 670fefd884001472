package cart

import (
	"fmt"
	"time"

	"eventhub-client/internal/models"
)

// ValidateSelection runs the pre-cart checks for adding qty units of a
// ticket type at one of its showtimes: the sale window must be open, the
// showtime must exist with stock remaining, and the purchase limit must
// leave room given what the buyer already holds. Called before Cart.Add,
// the same way the backend rechecks everything at order time.
func ValidateSelection(ticket *models.TicketOption, showtimeCode string, qty, alreadyInCart int, now time.Time) (models.ShowtimeInfo, error) {
	if !ticket.SaleActive(now) {
		if ticket.SaleNotStarted(now) {
			return models.ShowtimeInfo{}, fmt.Errorf("ticket sales have not started yet")
		}
		return models.ShowtimeInfo{}, fmt.Errorf("ticket sales have ended")
	}

	if qty < 1 {
		return models.ShowtimeInfo{}, fmt.Errorf("please enter a valid quantity (minimum 1)")
	}

	showtime, ok := ticket.Showtime(showtimeCode)
	if !ok {
		return models.ShowtimeInfo{}, fmt.Errorf("showtime %q not found", showtimeCode)
	}

	available := ticket.AvailableFor(showtime)
	if available <= 0 {
		return models.ShowtimeInfo{}, fmt.Errorf("this showtime is sold out")
	}
	if qty > available {
		return models.ShowtimeInfo{}, fmt.Errorf("only %d ticket(s) available for this showtime", available)
	}

	if ticket.PurchaseLimit > 0 && alreadyInCart+qty > ticket.PurchaseLimit {
		return models.ShowtimeInfo{}, fmt.Errorf("purchase limit is %d ticket(s), you already have %d in cart",
			ticket.PurchaseLimit, alreadyInCart)
	}

	return showtime, nil
}

// ItemForSelection builds the cart line for a validated selection.
func ItemForSelection(ticket *models.TicketOption, showtime models.ShowtimeInfo, eventID int, eventName string) models.CartItem {
	return models.CartItem{
		TicketTypeID:   ticket.ID,
		TicketTypeName: ticket.Name,
		Price:          ticket.Price,
		EventID:        eventID,
		EventName:      eventName,
		ShowtimeID:     showtime.ShowtimeID,
		ShowtimeCode:   showtime.ShowtimeCode,
		ShowtimeName:   fmt.Sprintf("%s - %s", showtime.ShowtimeCode, showtime.StartTime.Format("Mon, Jan 2 2006 3:04 PM")),
		Description:    ticket.Description,
		Quota:          ticket.Quota,
		PurchaseLimit:  ticket.PurchaseLimit,
		SaleStart:      ticket.SaleStart,
		SaleEnd:        ticket.SaleEnd,
	}
}
