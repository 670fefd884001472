package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/config"
	"eventhub-client/internal/export"
	"eventhub-client/internal/session"
)

func main() {
	orderID := flag.Int("order", 0, "order id to render tickets for")
	out := flag.String("out", "", "output file (defaults to tickets_order_<id>.pdf)")
	flag.Parse()

	if *orderID == 0 {
		log.Fatal("-order is required")
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	defer cancel()

	order, err := client.GetOrder(ctx, *orderID)
	if err != nil {
		log.Fatal("Failed to load order:", err)
	}
	tickets, err := client.OrderTickets(ctx, *orderID)
	if err != nil {
		log.Fatal("Failed to load order tickets:", err)
	}
	event, err := client.GetEvent(ctx, order.EventID)
	if err != nil {
		log.Fatal("Failed to load event:", err)
	}

	pdfService := export.NewPDFService()
	data, err := pdfService.GenerateTicketsPDF(tickets, event, order)
	if err != nil {
		log.Fatal("Failed to build PDF:", err)
	}

	filename := *out
	if filename == "" {
		filename = export.TicketsFilename(order)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		log.Fatal("Failed to write file:", err)
	}

	fmt.Printf("Exported %d ticket(s) to %s\n", len(tickets), filename)
}
