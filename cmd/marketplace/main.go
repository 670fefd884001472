package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/config"
	"eventhub-client/internal/models"
	"eventhub-client/internal/session"
)

func main() {
	mine := flag.Bool("mine", false, "show only my listings")
	sellTicket := flag.Int("sell", 0, "ticket id to list for resale")
	price := flag.Int("price", 0, "asking price in cents (with -sell)")
	buyListing := flag.String("buy", "", "listing id to buy")
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

	switch {
	case *sellTicket > 0:
		if *price <= 0 {
			log.Fatal("-price (in cents) is required with -sell")
		}
		listing, err := client.CreateListing(ctx, models.ListingRequest{TicketID: *sellTicket, Price: *price})
		if err != nil {
			log.Fatal("Failed to create listing:", err)
		}
		fmt.Printf("Listed ticket %d for %.2f (listing %s)\n", *sellTicket, float64(listing.Price)/100, listing.ID)

	case *buyListing != "":
		listing, err := client.BuyListing(ctx, *buyListing)
		if err != nil {
			log.Fatal("Failed to buy listing:", err)
		}
		fmt.Printf("Bought listing %s", listing.ID)
		if listing.Ticket != nil {
			fmt.Printf(", ticket %s is now yours", listing.Ticket.TicketCode)
		}
		fmt.Println()

	case *mine:
		listings, err := client.MyListings(ctx)
		if err != nil {
			log.Fatal("Failed to load your listings:", err)
		}
		printListings(listings)

	default:
		listings, err := client.MarketplaceListings(ctx)
		if err != nil {
			log.Fatal("Failed to load marketplace listings:", err)
		}
		printListings(listings)
	}
}

func printListings(listings []models.MarketplaceListing) {
	if len(listings) == 0 {
		fmt.Println("No listings.")
		return
	}
	for _, l := range listings {
		event := ""
		if l.Ticket != nil {
			event = l.Ticket.EventName
		}
		fmt.Printf("%s  %-9s  %8.2f  %s\n", l.ID, l.Status, float64(l.Price)/100, event)
	}
}
