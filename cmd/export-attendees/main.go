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
	eventID := flag.Int("event", 0, "event id to export attendees for")
	out := flag.String("out", "", "output file (defaults to attendees_<event>_<id>.csv)")
	flag.Parse()

	if *eventID == 0 {
		log.Fatal("-event is required")
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

	event, err := client.GetEvent(ctx, *eventID)
	if err != nil {
		log.Fatal("Failed to load event:", err)
	}
	tickets, err := client.EventTickets(ctx, *eventID)
	if err != nil {
		log.Fatal("Failed to load event tickets:", err)
	}
	logs, err := client.EventCheckInLogs(ctx, *eventID)
	if err != nil {
		log.Fatal("Failed to load check-in logs:", err)
	}

	data, err := export.AttendeeCSV(tickets, logs)
	if err != nil {
		log.Fatal("Failed to build CSV:", err)
	}

	filename := *out
	if filename == "" {
		filename = export.AttendeeFilename(event)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		log.Fatal("Failed to write file:", err)
	}

	fmt.Printf("Exported %d attendee(s) to %s\n", len(tickets), filename)
}
