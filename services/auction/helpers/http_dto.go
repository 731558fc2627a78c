package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID  string   `json:"auction_id" binding:"required"`
	Amount     float64  `json:"amount" binding:"required,gt=0"`
	MaxAutoBid *float64 `json:"max_auto_bid,omitempty" binding:"omitempty,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	IsAutoBid bool    `json:"is_auto_bid"`
	CreatedAt string  `json:"created_at"`
}

type PlaceBidResponse struct {
	Bid          BidResponse `json:"bid"`
	Outbid       bool        `json:"outbid"`
	CurrentPrice float64     `json:"current_price"`
}
