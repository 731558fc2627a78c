package models

import "time"

// AuctionStatus is the lifecycle state of an auction listing.
type AuctionStatus string

const (
	StatusDraft     AuctionStatus = "draft"
	StatusScheduled AuctionStatus = "scheduled"
	StatusActive    AuctionStatus = "active"
	StatusEnded     AuctionStatus = "ended"
	StatusCancelled AuctionStatus = "cancelled"
	StatusSold      AuctionStatus = "sold"
)

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Auction represents a single listing. CurrentPrice and TotalBids are
// mutated only through the repository's atomic bid commit.
type Auction struct {
	AuctionID    string        `json:"auction_id"`
	SellerID     string        `json:"seller_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Status       AuctionStatus `json:"status"`
	CurrentPrice float64       `json:"current_price"`
	BidIncrement float64       `json:"bid_increment"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	TotalBids    int           `json:"total_bids"`
}

// Biddable reports whether the auction accepts bids at the given instant.
func (a Auction) Biddable(now time.Time) bool {
	return a.Status == StatusActive && now.Before(a.EndTime)
}

// MinimumBid returns the lowest amount the next bid must reach.
func (a Auction) MinimumBid() float64 {
	return a.CurrentPrice + a.BidIncrement
}

// Bid represents a bid on an auction. A bid is immutable once committed,
// except for the IsWinning flag which flips true->false when superseded.
// MaxAutoBid is nil unless the bidder authorized proxy bidding up to a ceiling.
type Bid struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	BidderID   string    `json:"bidder_id"`
	Amount     float64   `json:"amount"`
	IsAutoBid  bool      `json:"is_auto_bid"`
	MaxAutoBid *float64  `json:"max_auto_bid,omitempty"`
	IsWinning  bool      `json:"is_winning"`
	CreatedAt  time.Time `json:"created_at"`
}
