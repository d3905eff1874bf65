package main

import (
	"fmt"
	"os"
	"time"

	"auction-house/internal/accounts"
	auction "auction-house/internal/auctionService"
	auth "auction-house/internal/authService"
	"auction-house/internal/config"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/sessions"
	"auction-house/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	userStore := accounts.NewStore(cfg.MinPasswordLength)
	sessionManager := sessions.NewManager(cfg.SessionTTL)
	repo := repository.NewMemoryRepo(cfg.AllowStartingPriceBid)

	auctionSvc := auction.NewAuctionService(repo, cfg.DefaultMinIncrement)
	authSvc := auth.NewAuthService(userStore, sessionManager)

	stopSweeper := sessionManager.StartSweeper(cfg.SessionSweepPeriod)
	defer stopSweeper()

	if cfg.DemoSeed {
		seedDemoData(authSvc, auctionSvc)
	}

	router := server.SetupRouter(auctionSvc, authSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoData registers a demo seller with a few open auctions for local
// development
func seedDemoData(authSvc *auth.AuthService, auctionSvc *auction.AuctionService) {
	const demoSeller = "demo-seller"

	if _, err := authSvc.Register(demoSeller, "demo-password"); err != nil {
		utils.Warn("demo seed: register failed", map[string]any{"error": err.Error()})
		return
	}

	auctions := []struct {
		title         string
		description   string
		startingPrice float64
		minIncrement  float64
		duration      time.Duration
	}{
		{"Vintage camera", "1970s rangefinder, working condition", 100, 10, time.Hour},
		{"Mechanical keyboard", "Lightly used, blue switches", 200, 5, 2 * time.Hour},
		{"Road bike", "Aluminium frame, 56cm", 150, 25, 24 * time.Hour},
	}

	for _, a := range auctions {
		created, err := auctionSvc.CreateAuction(demoSeller, a.title, a.description, a.startingPrice, a.minIncrement, time.Now().Add(a.duration))
		if err != nil {
			utils.Warn("demo seed: create auction failed", map[string]any{"title": a.title, "error": err.Error()})
			continue
		}
		utils.Info("demo seed: auction created", map[string]any{"auction_id": created.AuctionID, "title": a.title})
	}
}
