package notifier

import (
	"auction-house/utils"
)

// LogNotifier is a NotificationSink that records outbid events in the
// structured log. A real deployment would swap in email/push delivery
// behind the same interface.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier instance
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyOutbid logs that a bidder lost the lead on an auction
func (n *LogNotifier) NotifyOutbid(bidderID, auctionID, auctionTitle string, newAmount float64) error {
	utils.Info("notifier: bidder outbid", map[string]any{
		"bidder_id":     bidderID,
		"auction_id":    auctionID,
		"auction_title": auctionTitle,
		"new_amount":    newAmount,
	})
	return nil
}
