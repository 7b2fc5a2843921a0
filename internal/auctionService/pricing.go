package auction

import (
	"sort"
	"time"

	"car-rental-core/internal/models"
)

// MinimumBidIncrement is the amount in euros a new bid must add to the current price
const MinimumBidIncrement = 300.0

// Phase derives the lifecycle state of an auction at now.
// Windows are half-open: an auction is Active on [StartsAt, EndsAt).
func Phase(a models.Auction, now time.Time) models.AuctionPhase {
	switch {
	case !a.IsActive || !now.Before(a.EndsAt):
		return models.PhaseEnded
	case now.Before(a.StartsAt):
		return models.PhaseScheduled
	default:
		return models.PhaseActive
	}
}

// CurrentPrice is the higher of the start price and the highest accepted bid
func CurrentPrice(a models.Auction) float64 {
	price := a.StartPriceEur
	for _, b := range a.Bids {
		if b.AmountEur > price {
			price = b.AmountEur
		}
	}
	return price
}

// MinimumBid is the lowest amount PlaceBid currently accepts
func MinimumBid(a models.Auction) float64 {
	return CurrentPrice(a) + MinimumBidIncrement
}

// NewView builds the read model shared by every query and by PlaceBid
func NewView(a models.Auction, car models.CarSummary, now time.Time) models.AuctionView {
	bids := append([]models.AuctionBid(nil), a.Bids...)
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].AmountEur == bids[j].AmountEur {
			return bids[i].CreatedAt.After(bids[j].CreatedAt)
		}
		return bids[i].AmountEur > bids[j].AmountEur
	})
	if bids == nil {
		bids = []models.AuctionBid{}
	}
	a.Bids = bids

	return models.AuctionView{
		Auction:         a,
		Car:             car,
		CurrentPriceEur: CurrentPrice(a),
		MinimumBidEur:   MinimumBid(a),
		Phase:           Phase(a, now),
		HasStarted:      !now.Before(a.StartsAt),
		HasEnded:        !now.Before(a.EndsAt),
	}
}
