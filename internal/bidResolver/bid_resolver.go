package resolver

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
	"errors"
	"fmt"
	"math"
	"time"
)

// DefaultHistoryLimit caps how many bids a history query returns.
const DefaultHistoryLimit = 50

// NotificationSink delivers best-effort "you were outbid" events. Delivery
// failure never affects the outcome of the bid that triggered it.
type NotificationSink interface {
	NotifyOutbid(bidderID, auctionID, auctionTitle string, newAmount float64) error
}

// BidResolver enforces the bid-acceptance rules and resolves proxy-bid
// escalation for an auction. All state changes go through the repository's
// atomic commit, so concurrent PlaceBid calls on the same auction serialize
// there and exactly one bid stays winning.
type BidResolver struct {
	repo repository.AuctionDB
	sink NotificationSink
}

// NewBidResolver creates a new BidResolver instance
func NewBidResolver(repo repository.AuctionDB, sink NotificationSink) *BidResolver {
	return &BidResolver{
		repo: repo,
		sink: sink,
	}
}

// BidResult reports the outcome of a placed bid: the bid that was committed
// for the caller, whether the caller lost the lead immediately (to an
// auto-bid or to a concurrent rival), and the auction's resulting price.
type BidResult struct {
	Bid          models.Bid `json:"bid"`
	Outbid       bool       `json:"outbid"`
	CurrentPrice float64    `json:"current_price"`
}

// BidHistoryEntry is the viewer-facing projection of a committed bid.
type BidHistoryEntry struct {
	BidderUsername string    `json:"bidder_username"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"created_at"`
	IsWinning      bool      `json:"is_winning"`
}

// PlaceBid validates and commits a bid for an auction, then resolves a single
// auto-bid escalation step. maxAutoBid, when non-nil, authorizes proxy
// bidding for the caller up to that ceiling on future escalations.
func (s *BidResolver) PlaceBid(auctionID, bidderID string, amount float64, maxAutoBid *float64) (BidResult, error) {
	if err := s.validateBid(auctionID, bidderID, amount, maxAutoBid); err != nil {
		return BidResult{}, err
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		BidderID:   bidderID,
		Amount:     amount,
		IsAutoBid:  false,
		MaxAutoBid: maxAutoBid,
		CreatedAt:  time.Now().UTC(),
	}

	updated, previous, err := s.repo.CommitBid(&bid)
	if err != nil {
		return BidResult{}, fmt.Errorf("resolver: %w - commit bid for auction %s by user %s: %v",
			auctionerrors.ErrInternal, auctionID, bidderID, err)
	}

	if previous != nil && previous.BidderID != bidderID {
		s.dispatchOutbid(previous.BidderID, updated)
	}

	result := BidResult{
		Bid:          bid,
		Outbid:       !bid.IsWinning,
		CurrentPrice: updated.CurrentPrice,
	}

	// A bid that never led (a concurrent bid moved the price first) has
	// nothing to escalate against: the standing winner already leads.
	if bid.IsWinning {
		// The direct bid is committed; escalation failure can only be logged.
		if escalated, ok := s.escalate(updated, bidderID); ok {
			result.Outbid = true
			result.CurrentPrice = escalated.CurrentPrice
		}
	}

	return result, nil
}

// validateBid checks input validity and every acceptance rule before any
// mutation.
func (s *BidResolver) validateBid(auctionID, bidderID string, amount float64, maxAutoBid *float64) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("resolver: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("resolver: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return fmt.Errorf("resolver: %w", err)
		}
		return fmt.Errorf("resolver: failed to load auction %s: %w", auctionID, err)
	}

	if !auction.Biddable(time.Now().UTC()) {
		return fmt.Errorf("resolver: %w - auction %s has status %q", auctionerrors.ErrAuctionNotActive, auctionID, auction.Status)
	}
	if bidderID == auction.SellerID {
		return fmt.Errorf("resolver: %w", auctionerrors.ErrSelfBidForbidden)
	}
	if minimum := auction.MinimumBid(); amount < minimum {
		return fmt.Errorf("resolver: %w - minimum bid is %.2f", auctionerrors.ErrBidTooLow, minimum)
	}
	if maxAutoBid != nil && *maxAutoBid < amount {
		return fmt.Errorf("resolver: %w - ceiling %.2f is below bid %.2f", auctionerrors.ErrInvalidAutoBidMax, *maxAutoBid, amount)
	}

	return nil
}

// escalate runs one auto-bid step against the auction state left by a direct
// bid from directBidder. A qualifying proxy bidder raises only as far as
// needed to lead, never past their ceiling, and at most once per direct bid.
// Returns the auction after the auto-bid and whether one was committed.
func (s *BidResolver) escalate(auction models.Auction, directBidder string) (models.Auction, bool) {
	candidate, err := s.repo.HighestProxyBid(auction.AuctionID, directBidder, auction.CurrentPrice)
	if err != nil {
		if !errors.Is(err, auctionerrors.ErrNoBids) {
			utils.Warn("resolver: proxy candidate lookup failed", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
		}
		return auction, false
	}

	ceiling := *candidate.MaxAutoBid
	raise := math.Min(ceiling, auction.MinimumBid())
	if raise <= auction.CurrentPrice {
		return auction, false
	}

	autoBid := models.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auction.AuctionID,
		BidderID:   candidate.BidderID,
		Amount:     raise,
		IsAutoBid:  true,
		MaxAutoBid: &ceiling,
		CreatedAt:  time.Now().UTC(),
	}

	updated, previous, err := s.repo.CommitBid(&autoBid)
	if err != nil {
		// A concurrent bid may have moved the price past our computed raise.
		utils.Warn("resolver: auto-bid not committed", map[string]any{
			"auction_id": auction.AuctionID,
			"bidder_id":  candidate.BidderID,
			"amount":     raise,
			"error":      err.Error(),
		})
		return auction, false
	}

	utils.Info("resolver: auto-bid committed", map[string]any{
		"auction_id": updated.AuctionID,
		"bidder_id":  candidate.BidderID,
		"amount":     raise,
		"ceiling":    ceiling,
	})

	if previous != nil && previous.BidderID != candidate.BidderID {
		s.dispatchOutbid(previous.BidderID, updated)
	}

	return updated, true
}

// dispatchOutbid sends an outbid notification without blocking the caller.
func (s *BidResolver) dispatchOutbid(bidderID string, auction models.Auction) {
	if s.sink == nil {
		return
	}
	go func() {
		if err := s.sink.NotifyOutbid(bidderID, auction.AuctionID, auction.Title, auction.CurrentPrice); err != nil {
			utils.Error("resolver: outbid notification failed", map[string]any{
				"bidder_id":  bidderID,
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
		}
	}()
}

// GetBidHistory returns up to limit bids for an auction, highest amount
// first, projected for viewers. limit is defaulted and capped at
// DefaultHistoryLimit. An auction with no bids yields an empty slice.
func (s *BidResolver) GetBidHistory(auctionID string, limit int) ([]BidHistoryEntry, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("resolver: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	bids, err := s.repo.GetBidsByAuction(auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("resolver: failed to get bids for auction %s: %w", auctionID, err)
	}

	entries := make([]BidHistoryEntry, 0, len(bids))
	for _, b := range bids {
		username := s.repo.GetUsername(b.BidderID)
		if username == "" {
			username = b.BidderID
		}
		entries = append(entries, BidHistoryEntry{
			BidderUsername: username,
			Amount:         b.Amount,
			CreatedAt:      b.CreatedAt,
			IsWinning:      b.IsWinning,
		})
	}
	return entries, nil
}

// GetWinningBid returns the bid currently leading a specific auction
func (s *BidResolver) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("resolver: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("resolver: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	return winningBid, nil
}

// GetAuctionsByUser returns all auctions a user has placed bids on
func (s *BidResolver) GetAuctionsByUser(userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("resolver: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	auctions, err := s.repo.GetAuctionsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("resolver: failed to get auctions for user %s: %w", userID, err)
	}

	return auctions, nil
}
