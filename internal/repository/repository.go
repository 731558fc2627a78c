package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"fmt"
	"sort"
	"sync"
)

// AuctionDB defines the auction and bid storage interface used by the resolver
type AuctionDB interface {
	AddAuction(auction model.Auction) error
	AddUser(user model.User)
	GetAuction(auctionID string) (model.Auction, error)
	CommitBid(bid *model.Bid) (model.Auction, *model.Bid, error)
	GetBidsByAuction(auctionID string, limit int) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
	HighestProxyBid(auctionID, excludeBidder string, price float64) (model.Bid, error)
	GetAuctionsByUser(userID string) ([]model.Auction, error)
	GetUsername(userID string) string
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction // key: auctionID
	bids         map[string][]model.Bid   // key: auctionID -> bids in commit order
	users        map[string]model.User    // key: userID
	userAuctions map[string][]string      // key: userID -> auctionIDs the user has bid on
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		bids:         make(map[string][]model.Bid),
		users:        make(map[string]model.User),
		userAuctions: make(map[string][]string),
	}
}

// AddAuction registers an auction listing
func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("add auction: %w", auctionerrors.ErrAuctionNotFound)
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// AddUser registers a user so bid history can resolve usernames
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// GetUsername resolves a user id to a display name, empty when unknown
func (r *MemoryRepo) GetUsername(userID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[userID].Username
}

// GetAuction returns the auction with the given id
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// CommitBid atomically records a bid and, when it takes the lead, demotes
// the previous winning bid and advances the auction's price. The whole
// transition happens under one lock: concurrent commits on the same auction
// serialize here, which is what keeps exactly one bid winning and the price
// monotonic. Sets bid.IsWinning to report whether the bid took the lead, and
// returns the updated auction and the demoted bid, nil if none.
//
// A direct bid whose amount was validated against a price that has since
// moved still commits, as a losing bid, so the bid count never skips. A
// synthetic auto-bid in the same position is rejected with ErrStaleBid
// instead: it exists only to take the lead.
func (r *MemoryRepo) CommitBid(bid *model.Bid) (model.Auction, *model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return model.Auction{}, nil, fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	leads := bid.Amount > auction.CurrentPrice
	if !leads && bid.IsAutoBid {
		return model.Auction{}, nil, fmt.Errorf("commit auto-bid for auction %s at %.2f: %w", bid.AuctionID, bid.Amount, auctionerrors.ErrStaleBid)
	}

	var previous *model.Bid
	auctionBids := r.bids[bid.AuctionID]
	if leads {
		for i := range auctionBids {
			if auctionBids[i].IsWinning {
				auctionBids[i].IsWinning = false
				demoted := auctionBids[i]
				previous = &demoted
				break
			}
		}
		auction.CurrentPrice = bid.Amount
	}

	bid.IsWinning = leads
	r.bids[bid.AuctionID] = append(auctionBids, *bid)

	auction.TotalBids++
	r.auctions[bid.AuctionID] = auction

	r.indexUserAuction(bid.BidderID, bid.AuctionID)

	return auction, previous, nil
}

// indexUserAuction records that a user has bid on an auction. Caller holds the lock.
func (r *MemoryRepo) indexUserAuction(userID, auctionID string) {
	for _, id := range r.userAuctions[userID] {
		if id == auctionID {
			return
		}
	}
	r.userAuctions[userID] = append(r.userAuctions[userID], auctionID)
}

// GetBidsByAuction returns up to limit bids for an auction, highest amount
// first. An auction with no bids yields an empty slice, not an error.
func (r *MemoryRepo) GetBidsByAuction(auctionID string, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids := append([]model.Bid(nil), r.bids[auctionID]...)
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})

	if limit > 0 && len(bids) > limit {
		bids = bids[:limit]
	}
	return bids, nil
}

// GetWinningBid returns the bid currently flagged winning for an auction
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	for i := len(bids) - 1; i >= 0; i-- {
		if bids[i].IsWinning {
			return bids[i], nil
		}
	}
	return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
}

// HighestProxyBid returns the bid holding the greatest auto-bid ceiling
// strictly above price, from any bidder other than excludeBidder. Equal
// ceilings resolve to the earliest bid, so the first commitment wins.
func (r *MemoryRepo) HighestProxyBid(auctionID, excludeBidder string, price float64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best model.Bid
	found := false
	for _, b := range r.bids[auctionID] {
		if b.BidderID == excludeBidder || b.MaxAutoBid == nil || *b.MaxAutoBid <= price {
			continue
		}
		if !found ||
			*b.MaxAutoBid > *best.MaxAutoBid ||
			(*b.MaxAutoBid == *best.MaxAutoBid && b.CreatedAt.Before(best.CreatedAt)) {
			best = b
			found = true
		}
	}

	if !found {
		return model.Bid{}, fmt.Errorf("highest proxy bid for auction %s above %.2f: %w", auctionID, price, auctionerrors.ErrNoBids)
	}
	return best, nil
}

// GetAuctionsByUser returns all auctions a user has bid on
func (r *MemoryRepo) GetAuctionsByUser(userID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionIDs, ok := r.userAuctions[userID]
	if !ok || len(auctionIDs) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, auctionerrors.ErrUserNoBids)
	}

	auctions := make([]model.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if auction, exists := r.auctions[id]; exists {
			auctions = append(auctions, auction)
		}
	}
	return auctions, nil
}
