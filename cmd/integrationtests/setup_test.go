package integrationtests

import (
	resolver "auction-house/internal/bidResolver"
	model "auction-house/internal/models"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/services/auction/helpers"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing and returns the repo for seeding and inspection.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	bidResolver := resolver.NewBidResolver(repo, notifier.NewLogNotifier())
	router := server.SetupRouter(bidResolver)
	return router, repo
}

// ActiveAuction builds an auction accepting bids for the next 24 hours.
func ActiveAuction(auctionID, sellerID string, price, increment float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:    auctionID,
		SellerID:     sellerID,
		Title:        auctionID + " title",
		Status:       model.StatusActive,
		CurrentPrice: price,
		BidIncrement: increment,
		StartTime:    now,
		EndTime:      now.Add(24 * time.Hour),
	}
}

// ExecuteRequest executes an HTTP request as the given bidder and returns the recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, bidderID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bidderID != "" {
		req.Header.Set(helpers.BidderIDHeader, bidderID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON response.
// For 201 responses the envelope's data object is returned directly.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, bidderID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, bidderID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// PlaceBidBody builds a place-bid request payload.
func PlaceBidBody(auctionID string, amount float64, maxAutoBid *float64) map[string]any {
	body := map[string]any{
		"auction_id": auctionID,
		"amount":     amount,
	}
	if maxAutoBid != nil {
		body["max_auto_bid"] = *maxAutoBid
	}
	return body
}
