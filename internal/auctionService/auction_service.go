package auction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"car-rental-core/internal/access"
	"car-rental-core/internal/events"
	"car-rental-core/internal/locker"
	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
	"car-rental-core/internal/repository"
	"car-rental-core/utils"
)

// DefaultBidderName labels bids whose bidder supplied no usable identity
const DefaultBidderName = "Bidder"

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo      repository.AuctionDB
	catalog   repository.CatalogDB
	access    access.Checker
	locker    locker.Locker
	publisher events.Publisher
}

// Option customizes a BiddingService
type Option func(*BiddingService)

// WithLocker replaces the default in-process KeyedMutex
func WithLocker(l locker.Locker) Option {
	return func(s *BiddingService) {
		s.locker = l
	}
}

// WithPublisher sets where accepted bids are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *BiddingService) {
		s.publisher = p
	}
}

// NewBiddingService creates a new BiddingService instance.
// A nil checker lets every owner through.
func NewBiddingService(repo repository.AuctionDB, catalog repository.CatalogDB, checker access.Checker, opts ...Option) *BiddingService {
	if checker == nil {
		checker = access.AllowAll{}
	}
	s := &BiddingService{
		repo:    repo,
		catalog: catalog,
		access:  checker,
		locker:  locker.NewKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBidInput is a bid submission
type PlaceBidInput struct {
	AuctionID   string
	AmountEur   float64
	BidderID    string
	DisplayName string
	BidderEmail string
}

// GetActive returns visible auctions that have not ended, running ones first
func (s *BiddingService) GetActive(ctx context.Context, now time.Time) ([]models.AuctionView, error) {
	auctions, err := s.repo.ListActiveAuctions(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}

	visible := make([]models.Auction, 0, len(auctions))
	for _, a := range auctions {
		ok, err := s.access.OwnerHasAccess(ctx, a.OwnerID, now)
		if err != nil {
			return nil, fmt.Errorf("service: failed to check owner %s: %w", a.OwnerID, err)
		}
		if ok {
			visible = append(visible, a)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		iRunning, jRunning := !now.Before(visible[i].StartsAt), !now.Before(visible[j].StartsAt)
		if iRunning != jRunning {
			return iRunning
		}
		return visible[i].StartsAt.Before(visible[j].StartsAt)
	})

	cars := make(map[string]models.CarSummary)
	views := make([]models.AuctionView, 0, len(visible))
	for _, a := range visible {
		car, ok := cars[a.CarID]
		if !ok {
			if car, err = s.carSummary(ctx, a.CarID); err != nil {
				return nil, err
			}
			cars[a.CarID] = car
		}
		views = append(views, NewView(a, car, now))
	}
	return views, nil
}

// GetByID returns an auction view. Auctions of owners without access are hidden.
func (s *BiddingService) GetByID(ctx context.Context, auctionID string, now time.Time) (models.AuctionView, error) {
	if auctionID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInput, "empty auction ID"))
	}

	a, err := s.repo.FindAuctionWithBids(ctx, auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	if err := s.checkOwner(ctx, a, now); err != nil {
		return models.AuctionView{}, err
	}
	return s.view(ctx, a, now)
}

// PlaceBid validates and records a bid. The price check and the append run
// under the auction's lock so no two bids are accepted against the same minimum.
// Everything that can fail runs before the append; once the bid is stored
// PlaceBid reports success.
func (s *BiddingService) PlaceBid(ctx context.Context, in PlaceBidInput, now time.Time) (models.AuctionView, error) {
	if in.AuctionID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - missing auction ID", rentalerrors.ErrInvalidBid)
	}
	if math.IsNaN(in.AmountEur) || math.IsInf(in.AmountEur, 0) || in.AmountEur <= 0 {
		return models.AuctionView{}, fmt.Errorf("service: %w - non-positive bid amount", rentalerrors.ErrInvalidBid)
	}

	lockCtx, unlock, err := s.locker.Lock(ctx, locker.AuctionKey(in.AuctionID))
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to lock auction %s: %w", in.AuctionID, err)
	}
	defer unlock()

	a, err := s.repo.FindAuctionWithBids(lockCtx, in.AuctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", in.AuctionID, err)
	}
	if err := s.validateBid(lockCtx, a, in.AmountEur, now); err != nil {
		return models.AuctionView{}, err
	}

	name, err := s.resolveBidderName(lockCtx, in)
	if err != nil {
		return models.AuctionView{}, err
	}
	car, err := s.carSummary(lockCtx, a.CarID)
	if err != nil {
		return models.AuctionView{}, err
	}

	// cancelled by the caller, or the lock expired while we worked
	if err := lockCtx.Err(); err != nil {
		return models.AuctionView{}, fmt.Errorf("service: bid aborted: %w", err)
	}

	bid := models.AuctionBid{
		BidID:      utils.GenerateID(),
		AuctionID:  a.AuctionID,
		BidderID:   in.BidderID,
		BidderName: name,
		AmountEur:  in.AmountEur,
		CreatedAt:  now,
	}
	updated, err := s.repo.AppendBid(lockCtx, a.AuctionID, bid)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to record bid for auction %s: %w", a.AuctionID, err)
	}

	utils.Info("bid placed", map[string]any{
		"auction_id": updated.AuctionID,
		"bid_id":     bid.BidID,
		"bidder_id":  bid.BidderID,
		"amount_eur": bid.AmountEur,
	})
	events.PublishQuietly(ctx, s.publisher, events.New(events.BidPlaced, updated.AuctionID, now, bid))

	return NewView(updated, car, now), nil
}

// validateBid applies the acceptance rules in order: owner, flag, window, price
func (s *BiddingService) validateBid(ctx context.Context, a models.Auction, amount float64, now time.Time) error {
	if err := s.checkOwner(ctx, a, now); err != nil {
		return err
	}
	if !a.IsActive {
		return fmt.Errorf("service: %w - auction %s", rentalerrors.ErrAuctionInactive, a.AuctionID)
	}
	if now.Before(a.StartsAt) {
		return fmt.Errorf("service: %w - auction %s", rentalerrors.ErrAuctionNotStarted, a.AuctionID)
	}
	if !now.Before(a.EndsAt) {
		return fmt.Errorf("service: %w - auction %s", rentalerrors.ErrAuctionEnded, a.AuctionID)
	}
	if minimum := MinimumBid(a); amount < minimum {
		return &rentalerrors.BidTooLowError{Minimum: minimum}
	}
	return nil
}

func (s *BiddingService) checkOwner(ctx context.Context, a models.Auction, now time.Time) error {
	ok, err := s.access.OwnerHasAccess(ctx, a.OwnerID, now)
	if err != nil {
		return fmt.Errorf("service: failed to check owner %s: %w", a.OwnerID, err)
	}
	if !ok {
		return fmt.Errorf("service: %w - auction %s", rentalerrors.ErrOwnerInactive, a.AuctionID)
	}
	return nil
}

// resolveBidderName picks the explicit name, then the profile name or email,
// then the supplied email, then DefaultBidderName
func (s *BiddingService) resolveBidderName(ctx context.Context, in PlaceBidInput) (string, error) {
	if name := utils.SanitizeText(in.DisplayName); name != "" {
		return name, nil
	}

	if in.BidderID != "" {
		user, err := s.catalog.GetUser(ctx, in.BidderID)
		switch {
		case err == nil:
			if name := strings.TrimSpace(user.Name); name != "" {
				return name, nil
			}
			if email := strings.TrimSpace(user.Email); email != "" {
				return email, nil
			}
		case !errors.Is(err, rentalerrors.ErrNotFound):
			return "", fmt.Errorf("service: failed to load bidder %s: %w", in.BidderID, err)
		}
	}

	if email := strings.TrimSpace(in.BidderEmail); email != "" {
		return email, nil
	}
	return DefaultBidderName, nil
}

func (s *BiddingService) view(ctx context.Context, a models.Auction, now time.Time) (models.AuctionView, error) {
	car, err := s.carSummary(ctx, a.CarID)
	if err != nil {
		return models.AuctionView{}, err
	}
	return NewView(a, car, now), nil
}

func (s *BiddingService) carSummary(ctx context.Context, carID string) (models.CarSummary, error) {
	car, err := s.catalog.GetCar(ctx, carID)
	if errors.Is(err, rentalerrors.ErrNotFound) {
		return models.CarSummary{CarID: carID}, nil
	}
	if err != nil {
		return models.CarSummary{}, fmt.Errorf("service: failed to load car %s: %w", carID, err)
	}
	return car.Summary(), nil
}
