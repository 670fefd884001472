package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/apperrors"
	"eventhub-client/internal/checkin"
	"eventhub-client/internal/config"
	"eventhub-client/internal/session"
)

func main() {
	eventID := flag.Int("event", 0, "event id to run check-in for")
	showtimeID := flag.Int("showtime", 0, "showtime id (required when the event has several)")
	code := flag.String("code", "", "ticket code to check in (manual entry)")
	frames := flag.String("frames", "", "directory of camera frames to scan for a QR code")
	listOnly := flag.Bool("list", false, "list the events this account may run check-in for")
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

	station := checkin.NewStation(client, sess, cfg.CheckIn.Gate, cfg.CheckIn.DeviceID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	events, err := station.VisibleEvents(ctx)
	if err != nil {
		log.Fatal("Failed to load events:", err)
	}
	if *listOnly || *eventID == 0 {
		if len(events) == 0 {
			fmt.Println("No events available for check-in with this account.")
			return
		}
		fmt.Println("Events available for check-in:")
		for _, ev := range events {
			fmt.Printf("  [%d] %s  (%s)\n", ev.ID, ev.Name, ev.StartTime.Format("Jan 2, 2006 3:04 PM"))
		}
		return
	}

	idx := -1
	for i, ev := range events {
		if ev.ID == *eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Fatalf("Event %d is not available for check-in with this account", *eventID)
	}

	if err := station.SelectEvent(ctx, &events[idx]); err != nil {
		log.Fatal("Failed to select event:", err)
	}

	showtimes := station.Showtimes()
	if len(showtimes) > 1 {
		if *showtimeID == 0 {
			fmt.Println("Event has several showtimes, pick one with -showtime:")
			for _, st := range showtimes {
				fmt.Printf("  [%d] %s  %s\n", st.ID, st.Code, st.StartTime.Format("Jan 2, 2006 3:04 PM"))
			}
			return
		}
		if err := station.SelectShowtime(*showtimeID); err != nil {
			log.Fatal("Failed to select showtime:", err)
		}
	}

	now := time.Now()
	window, ok := station.Window()
	if !ok {
		log.Fatal("No check-in window could be derived for this event")
	}
	switch window.StateAt(now) {
	case checkin.Upcoming:
		fmt.Printf("Check-in opens in %s (at %s)\n", checkin.Countdown(now, window.WindowStart), window.WindowStart.Format("3:04 PM"))
	case checkin.Active:
		fmt.Printf("Check-in is OPEN, closes in %s\n", checkin.Countdown(now, window.End))
	case checkin.Ended:
		fmt.Println("Check-in has ended for this event.")
	}

	// Scan a frame directory when no manual code was given
	if *code == "" && *frames != "" {
		source, err := checkin.NewDirectorySource(*frames)
		if err != nil {
			log.Fatal("Failed to open frame directory:", err)
		}
		scanner := checkin.NewScanner(source, cfg.CheckIn.ScanInterval)
		decoded, err := scanner.Run(ctx)
		if err != nil {
			log.Fatal("Scan failed:", err)
		}
		fmt.Printf("Scanned ticket code: %s\n", decoded)
		*code = decoded
	}

	if *code == "" {
		printRoster(station)
		return
	}

	station.SetTicketCode(*code)
	ticket, err := station.Submit(ctx, time.Now())
	if err != nil {
		friendly := apperrors.Translate(err, "Check-in failed.")
		log.Fatalf("%s (%v)", friendly.Message, err)
	}

	fmt.Printf("Checked in: %s (%s)\n", ticket.AttendeeName, ticket.TicketCode)
	printRoster(station)
}

func printRoster(station *checkin.Station) {
	tickets := station.Tickets()
	logs := station.Logs()
	fmt.Printf("\n%d ticket(s), %d checked in\n", len(tickets), len(logs))
	for _, l := range logs {
		if l.Ticket == nil {
			continue
		}
		fmt.Printf("  %s  %s  %s at %s\n",
			l.Ticket.TicketCode, l.Ticket.AttendeeName, l.Gate, l.CheckInTime.Format("3:04:05 PM"))
	}
}
