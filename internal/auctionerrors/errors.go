package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUserNoBids      = errors.New("user has not placed any bids")
	ErrStaleBid        = errors.New("bid amount no longer above current price")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount below minimum")
	ErrAuctionNotActive  = errors.New("auction is not accepting bids")
	ErrSelfBidForbidden  = errors.New("seller cannot bid on own auction")
	ErrInvalidAutoBidMax = errors.New("auto-bid ceiling below bid amount")
	ErrInternal          = errors.New("internal bidding failure")
)
