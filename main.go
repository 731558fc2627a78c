package main

import (
	resolver "auction-house/internal/bidResolver"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set variables directly
	_ = godotenv.Load()

	repo := repository.NewMemoryRepo()

	prepopulate(repo)

	bidResolver := resolver.NewBidResolver(repo, notifier.NewLogNotifier())

	router := server.SetupRouter(bidResolver)

	port := fmt.Sprintf(":%s", utils.GetEnv("PORT", "8080"))
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulate adds sample users and active auctions to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "user1", Username: "alice"},
		{UserID: "user2", Username: "bob"},
		{UserID: "user3", Username: "carol"},
	}
	for _, user := range users {
		repo.AddUser(user)
	}

	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "auction1", SellerID: "user1", Title: "Vintage camera", Description: "1960s rangefinder", Status: model.StatusActive, CurrentPrice: 100, BidIncrement: 10, StartTime: now, EndTime: now.Add(24 * time.Hour)},
		{AuctionID: "auction2", SellerID: "user2", Title: "Mountain bike", Description: "Hardtail, medium frame", Status: model.StatusActive, CurrentPrice: 200, BidIncrement: 25, StartTime: now, EndTime: now.Add(48 * time.Hour)},
		{AuctionID: "auction3", SellerID: "user3", Title: "Record collection", Description: "Jazz LPs, 40 discs", Status: model.StatusScheduled, CurrentPrice: 150, BidIncrement: 15, StartTime: now.Add(24 * time.Hour), EndTime: now.Add(72 * time.Hour)},
	}
	for _, auction := range auctions {
		if err := repo.AddAuction(auction); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed auction %s: %v\n", auction.AuctionID, err)
		}
	}
}
