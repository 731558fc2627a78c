package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"auction-house/internal/auctionerrors"
	resolver "auction-house/internal/bidResolver"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type BidResolverInterface interface {
	PlaceBid(auctionID, bidderID string, amount float64, maxAutoBid *float64) (resolver.BidResult, error)
	GetBidHistory(auctionID string, limit int) ([]resolver.BidHistoryEntry, error)
	GetWinningBid(auctionID string) (model.Bid, error)
	GetAuctionsByUser(userID string) ([]model.Auction, error)
}

type AuctionHandler struct {
	service BidResolverInterface
}

func NewAuctionHandler(service BidResolverInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidderID := c.GetString(helpers.BidderIDKey)
	result, err := h.service.PlaceBid(req.AuctionID, bidderID, req.Amount, req.MaxAutoBid)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid: helpers.BidResponse{
			BidID:     result.Bid.BidID,
			AuctionID: result.Bid.AuctionID,
			BidderID:  result.Bid.BidderID,
			Amount:    result.Bid.Amount,
			IsAutoBid: result.Bid.IsAutoBid,
			CreatedAt: result.Bid.CreatedAt.UTC().Format(time.RFC3339),
		},
		Outbid:       result.Outbid,
		CurrentPrice: result.CurrentPrice,
	}

	message := "bid placed successfully"
	if result.Outbid {
		message = "bid placed but immediately outbid by an auto-bid"
	}

	utils.JSONResponse(c, http.StatusCreated, resp, message)
	helpers.LogSuccess("PlaceBidHandler", message, map[string]any{
		"bid_id":        result.Bid.BidID,
		"auction_id":    result.Bid.AuctionID,
		"bidder_id":     bidderID,
		"amount":        result.Bid.Amount,
		"outbid":        result.Outbid,
		"current_price": result.CurrentPrice,
	})
}

// GetBidHistoryHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	limit := resolver.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			helpers.HandleBindError(c, "GetBidHistoryHandler", fmt.Errorf("invalid limit %q: %w", raw, err))
			return
		}
		limit = parsed
	}

	entries, err := h.service.GetBidHistory(auctionID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if entries == nil {
		entries = []resolver.BidHistoryEntry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(entries),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.service.GetWinningBid(auctionID)
	if err != nil {
		// An auction nobody has bid on has no winner -> 404
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		IsAutoBid: bid.IsAutoBid,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// GetAuctionsByUserHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetAuctionsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.service.GetAuctionsByUser(userID)
	if err != nil && !errors.Is(err, auctionerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsByUserHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByUserHandler", "auctions retrieved successfully", map[string]any{
		"user_id":        userID,
		"auctions_count": len(auctions),
	})
}
