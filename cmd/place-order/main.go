package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/apperrors"
	"eventhub-client/internal/cart"
	"eventhub-client/internal/checkout"
	"eventhub-client/internal/config"
	"eventhub-client/internal/notify"
	"eventhub-client/internal/session"
)

func main() {
	eventID := flag.Int("event", 0, "event id to buy tickets for")
	ticketCode := flag.String("ticket", "", "ticket type code")
	showtimeCode := flag.String("showtime", "", "showtime code")
	qty := flag.Int("qty", 1, "number of tickets")
	discountCode := flag.String("discount", "", "discount code to apply")
	paymentMethod := flag.String("method", "VNPAY", "payment method")
	currency := flag.String("currency", "USD", "order currency")
	flag.Parse()

	if *eventID == 0 || *ticketCode == "" || *showtimeCode == "" {
		log.Fatal("-event, -ticket and -showtime are required")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Resume the stored session
	store := session.NewStore(cfg.Session.TokenPath)
	sess, err := session.Resume(store, time.Now())
	if err != nil {
		log.Fatal("Not signed in, run the login command first:", err)
	}

	client := api.NewClient(cfg.Backend.BaseURL,
		api.WithTimeout(cfg.Backend.Timeout),
		api.WithStaticToken(sess.AccessToken))

	// Notifications print as they would pop up in a UI
	bus := notify.NewBus()
	defer bus.Close()
	bus.SetSink(func(n notify.Notification) {
		fmt.Printf("[%s] %s\n", strings.ToUpper(string(n.Severity)), n.Message)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Backend.Timeout)
	defer cancel()

	event, err := client.GetEvent(ctx, *eventID)
	if err != nil {
		fatal(bus, err, "Could not load the event.")
	}

	options, err := client.TicketsWithShowtimes(ctx, *eventID)
	if err != nil {
		fatal(bus, err, "Could not load ticket types.")
	}

	idx := -1
	for i, opt := range options {
		if opt.Code == *ticketCode {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Fatalf("Ticket type %q not found for event %d", *ticketCode, *eventID)
	}
	ticket := &options[idx]

	// Build the cart
	c := cart.New()
	showtime, err := cart.ValidateSelection(ticket, *showtimeCode, *qty, c.QuantityForTicketType(ticket.ID), time.Now())
	if err != nil {
		fatal(bus, err, "Selection rejected.")
	}
	item := cart.ItemForSelection(ticket, showtime, event.ID, event.Name)
	if err := c.Add(item, *qty); err != nil {
		fatal(bus, err, "Could not add to cart.")
	}
	fmt.Printf("Cart: %d x %s (%s) = %s\n", *qty, ticket.Name, item.ShowtimeName, formatCents(c.Total(), *currency))

	// Checkout
	co := checkout.New(client, c)
	if *discountCode != "" {
		discount, err := co.ApplyDiscount(ctx, *discountCode)
		if err != nil {
			fatal(bus, err, "Discount code rejected.")
		}
		fmt.Printf("Discount %s applied, total is now %s\n", discount.Code, formatCents(co.Total(), *currency))
	}

	result, err := co.Submit(ctx, sess.UserID, *paymentMethod, *currency)
	if err != nil {
		fatal(bus, err, "Checkout failed.")
	}

	if result.Confirmed {
		bus.Show(fmt.Sprintf("Order #%d confirmed, payment complete.", result.OrderID), notify.SeveritySuccess)
		return
	}

	fmt.Printf("Order #%d created. Complete payment at:\n\n  %s\n\n", result.OrderID, result.RedirectURL)
	fmt.Println("Run the payment-return command to catch the gateway redirect.")
}

func fatal(bus *notify.Bus, err error, fallback string) {
	friendly := apperrors.Translate(err, fallback)
	bus.Show(friendly.Message, apperrors.Severity(friendly.Category))
	log.Fatal(err)
}

func formatCents(cents int, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(cents)/100)
}
