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
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	client := api.NewClient(cfg.Backend.BaseURL, api.WithTimeout(cfg.Backend.Timeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	defer cancel()

	resp, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		log.Fatal("Login failed:", err)
	}

	store := session.NewStore(cfg.Session.TokenPath)
	if err := store.Save(resp.AccessToken, resp.RefreshToken); err != nil {
		log.Fatal("Failed to store tokens:", err)
	}

	sess, err := session.Resume(store, time.Now())
	if err != nil {
		log.Fatal("Failed to decode stored session:", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", sess.FullName, sess.Email)
	fmt.Printf("Roles: %v\n", sess.Roles)
	fmt.Printf("Session expires: %s\n", sess.ExpiresAt.Format(time.RFC1123))
}
