package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"eventhub-client/internal/api"
	"eventhub-client/internal/config"
	"eventhub-client/internal/models"
)

func main() {
	query := flag.String("query", "", "free-text search")
	category := flag.String("category", "", "filter by category")
	city := flag.String("city", "", "filter by venue city")
	page := flag.Int("page", 0, "page number")
	size := flag.Int("size", 20, "page size")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	client := api.NewClient(cfg.Backend.BaseURL, api.WithTimeout(cfg.Backend.Timeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	defer cancel()

	result, err := client.SearchEvents(ctx, api.EventSearchParams{
		Query:    *query,
		Category: *category,
		City:     *city,
		Status:   models.EventPublished,
		Page:     *page,
		Size:     *size,
	})
	if err != nil {
		log.Fatal("Failed to search events:", err)
	}

	if len(result.Content) == 0 {
		fmt.Println("No events found.")
		return
	}

	fmt.Printf("Found %d event(s) (page %d of %d):\n\n", result.TotalElements, result.Number+1, result.TotalPages)
	for _, ev := range result.Content {
		fmt.Printf("[%d] %s\n", ev.ID, ev.Name)
		if ev.Category != "" {
			fmt.Printf("    Category: %s\n", ev.Category)
		}
		if !ev.StartTime.IsZero() {
			fmt.Printf("    Starts:   %s\n", ev.StartTime.Format("Mon, Jan 2 2006 3:04 PM"))
		}
		if ev.Venue != nil {
			fmt.Printf("    Venue:    %s, %s\n", ev.Venue.Name, ev.Venue.City)
		}
		fmt.Println()
	}
}
