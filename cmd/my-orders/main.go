package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/config"
	"eventhub-client/internal/session"
)

func main() {
	orderID := flag.Int("order", 0, "show a single order with its tickets")
	transfer := flag.String("transfer", "", "ticket code to transfer")
	recipient := flag.String("to", "", "recipient email (with -transfer)")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	defer cancel()

	if *transfer != "" {
		if *recipient == "" {
			log.Fatal("-to is required with -transfer")
		}
		ticket, err := client.TransferTicket(ctx, *transfer, *recipient)
		if err != nil {
			log.Fatal("Failed to transfer ticket:", err)
		}
		fmt.Printf("Ticket %s transferred to %s\n", ticket.TicketCode, *recipient)
		return
	}

	if *orderID > 0 {
		showOrder(ctx, client, *orderID)
		return
	}

	orders, err := client.UserOrders(ctx, sess.UserID)
	if err != nil {
		log.Fatal("Failed to load orders:", err)
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return
	}

	fmt.Printf("Orders for %s:\n\n", sess.Email)
	for _, o := range orders {
		fmt.Printf("#%d  %-10s  %s %.2f  %s\n",
			o.ID, o.Status, o.Currency, float64(o.TotalAmount)/100, o.EventName)
	}
}

func showOrder(ctx context.Context, client *api.Client, orderID int) {
	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		log.Fatal("Failed to load order:", err)
	}
	tickets, err := client.OrderTickets(ctx, orderID)
	if err != nil {
		log.Fatal("Failed to load order tickets:", err)
	}

	fmt.Printf("Order #%d  %s\n", order.ID, order.Status)
	fmt.Printf("Event: %s\n", order.EventName)
	fmt.Printf("Placed: %s\n", order.CreatedAt.Format("January 2, 2006 at 3:04 PM"))
	if order.DiscountCode != "" {
		fmt.Printf("Discount: %s\n", order.DiscountCode)
	}
	fmt.Printf("Total: %s %.2f\n\n", order.Currency, float64(order.TotalAmount)/100)

	for _, item := range order.Items {
		fmt.Printf("  %d x %s @ %s %.2f\n", item.Quantity, item.TicketName, order.Currency, float64(item.Price)/100)
	}
	if len(tickets) > 0 {
		fmt.Println("\nTickets:")
		for _, t := range tickets {
			seat := ""
			if t.SeatLabel != "" {
				seat = "  seat " + t.SeatLabel
			}
			fmt.Printf("  %s  %s%s  %s\n", t.TicketCode, t.AttendeeName, seat, t.Status)
		}
	}
}
