package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	resolver "auction-house/internal/bidResolver"
	model "auction-house/internal/models"
	repository "auction-house/internal/repository"
)

func activeAuction(auctionID string, price, increment float64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:    auctionID,
		SellerID:     "seller_bench",
		Title:        fmt.Sprintf("Benchmark auction %s", auctionID),
		Status:       model.StatusActive,
		CurrentPrice: price,
		BidIncrement: increment,
		StartTime:    now,
		EndTime:      now.Add(24 * time.Hour),
	}
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := resolver.NewBidResolver(repo, nil)

	for i := 0; i < b.N; i++ {
		if err := repo.AddAuction(activeAuction(fmt.Sprintf("auction_%d", i), 50, 1)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		auctionID := fmt.Sprintf("auction_%d", i)
		bidAmount := float64(51 + rand.Intn(100))
		if _, err := svc.PlaceBid(auctionID, bidderID, bidAmount, nil); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := resolver.NewBidResolver(repo, nil)

	if err := repo.AddAuction(activeAuction("shared_auction_1", 50, 1)); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid("shared_auction_1", bidderID, float64(nextBid), nil)
		}
	})
}

// Benchmark 3: PlaceBid - Shared Auction with a standing proxy ceiling, so
// every direct bid pays for an escalation step as well.
func Benchmark_PlaceBid_WithProxyEscalation(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := resolver.NewBidResolver(repo, nil)

	if err := repo.AddAuction(activeAuction("proxy_auction_1", 50, 1)); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	veryHigh := float64(1 << 40)
	if _, err := svc.PlaceBid("proxy_auction_1", "proxy_holder", 51, &veryHigh); err != nil {
		b.Fatalf("failed to seed proxy bid: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	price := int64(51)
	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		// Escalation moves the price one increment past each direct bid
		nextBid := atomic.AddInt64(&price, 2)
		if _, err := svc.PlaceBid("proxy_auction_1", bidderID, float64(nextBid), nil); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - Single-Threaded (Low Contention)
func Benchmark_GetWinningBid_SingleThreaded(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := resolver.NewBidResolver(repo, nil)

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if err := repo.AddAuction(activeAuction(auctionID, 50, 1)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}

		for j := 0; j < 10; j++ {
			bidderID := fmt.Sprintf("user_%d_%d", i, j)
			bidAmount := float64(60 + j*10)
			_, _ = svc.PlaceBid(auctionID, bidderID, bidAmount, nil)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if _, err := svc.GetWinningBid(auctionID); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := resolver.NewBidResolver(repo, nil)

	if err := repo.AddAuction(activeAuction("shared_auction_1", 50, 1)); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	for j := 0; j < 50; j++ {
		bidderID := fmt.Sprintf("user_seed_%d", j)
		bidAmount := float64(52 + j*2)
		_, _ = svc.PlaceBid("shared_auction_1", bidderID, bidAmount, nil)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				bidderID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid("shared_auction_1", bidderID, float64(nextBid), nil)
			case opType < 8:
				// Reader: winning bid
				_, _ = svc.GetWinningBid("shared_auction_1")
			default:
				// Reader: bid history projection
				_, _ = svc.GetBidHistory("shared_auction_1", resolver.DefaultHistoryLimit)
			}
		}
	})
}
