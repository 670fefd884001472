package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"eventhub-client/internal/api"
	"eventhub-client/internal/config"
	"eventhub-client/internal/gateway"
	"eventhub-client/internal/session"
)

func main() {
	wait := flag.Duration("wait", 15*time.Minute, "how long to wait for the gateway redirect")
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

	server := gateway.NewServer(client, cfg.Return.ListenAddr, cfg.Return.Path)
	if err := server.Start(); err != nil {
		log.Fatal("Failed to start return listener:", err)
	}

	fmt.Printf("Waiting for the payment gateway to redirect to %s\n", server.URL())
	fmt.Printf("(Giving up after %s)\n", *wait)

	ctx, cancel := context.WithTimeout(context.Background(), *wait)
	defer cancel()

	result, err := server.Wait(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)

	if err != nil {
		log.Fatal("No gateway redirect received:", err)
	}
	if result.Err != nil {
		log.Fatal("Payment verification failed:", result.Err)
	}

	fmt.Println("Payment verified by the backend.")
	if code := result.Params.Get("vnp_TxnRef"); code != "" {
		fmt.Printf("Transaction reference: %s\n", code)
	}
}
