package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"car-rental-core/internal/access"
	"car-rental-core/internal/locker"
	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
	"car-rental-core/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var (
	startsAt = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	endsAt   = time.Date(2025, time.March, 8, 10, 0, 0, 0, time.UTC)
	midway   = startsAt.Add(24 * time.Hour)
)

// Helper to create a seeded repository and a service with an enforcing gate
func newTestService(t *testing.T) (*BiddingService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	repo.AddCar(models.Car{CarID: "car1", OwnerID: "seller1", Brand: "BMW", Model: "320d", Color: "black"})
	repo.AddCar(models.Car{CarID: "car2", OwnerID: "seller2", Brand: "Audi", Model: "A4"})
	repo.AddUser(models.User{UserID: "bidder1", Name: "Clara", Email: "clara@example.com"})
	repo.AddUser(models.User{UserID: "bidder2", Email: "dan@example.com"})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "seller1", SubscriptionEndsAt: lo.ToPtr(endsAt.Add(30 * 24 * time.Hour))})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "seller2", Suspended: true})
	repo.AddAuction(models.Auction{
		AuctionID:     "a1",
		CarID:         "car1",
		OwnerID:       "seller1",
		StartPriceEur: 5000,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		IsActive:      true,
		Description:   "One owner",
	})

	gate := access.NewGate(access.Config{Enforce: true}, repo)
	return NewBiddingService(repo, repo, gate), repo
}

func bid(svc *BiddingService, amount float64, now time.Time) (models.AuctionView, error) {
	return svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", AmountEur: amount, BidderID: "bidder1"}, now)
}

func TestBiddingService_PlaceBid_MinimumIncrement(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := bid(svc, 5299, midway)
	require.ErrorIs(t, err, rentalerrors.ErrBidTooLow)
	require.EqualError(t, err, "Minimum bid is €5300")

	view, err := bid(svc, 5300, midway)
	require.NoError(t, err)
	require.Equal(t, 5300.0, view.CurrentPriceEur)
	require.Equal(t, 5600.0, view.MinimumBidEur)
	require.Len(t, view.Bids, 1)
	require.Equal(t, "Clara", view.Bids[0].BidderName)

	_, err = bid(svc, 5599, midway)
	var tooLow *rentalerrors.BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	require.Equal(t, 5600.0, tooLow.Minimum)

	view, err = bid(svc, 5600, midway)
	require.NoError(t, err)
	require.Equal(t, 5600.0, view.CurrentPriceEur)
	require.Equal(t, 5600.0, view.Bids[0].AmountEur)
}

func TestBiddingService_PlaceBid_Window(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		now         time.Time
		expectedErr error
	}{
		{name: "before_start", now: startsAt.Add(-time.Second), expectedErr: rentalerrors.ErrAuctionNotStarted},
		{name: "at_start", now: startsAt},
		{name: "one_second_before_end", now: endsAt.Add(-time.Second)},
		{name: "at_end", now: endsAt, expectedErr: rentalerrors.ErrAuctionEnded},
		{name: "after_end", now: endsAt.Add(time.Hour), expectedErr: rentalerrors.ErrAuctionEnded},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			_, err := bid(svc, 6000, tc.now)
			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestBiddingService_PlaceBid_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(repo *repository.MemoryRepo)
		input       PlaceBidInput
		expectedErr error
	}{
		{
			name:        "missing_auction_id",
			input:       PlaceBidInput{AmountEur: 6000},
			expectedErr: rentalerrors.ErrInvalidBid,
		},
		{
			name:        "zero_amount",
			input:       PlaceBidInput{AuctionID: "a1", AmountEur: 0},
			expectedErr: rentalerrors.ErrInvalidBid,
		},
		{
			name:        "unknown_auction",
			input:       PlaceBidInput{AuctionID: "nope", AmountEur: 6000},
			expectedErr: rentalerrors.ErrNotFound,
		},
		{
			name: "inactive_flag",
			setup: func(repo *repository.MemoryRepo) {
				repo.AddAuction(models.Auction{AuctionID: "a1", CarID: "car1", OwnerID: "seller1", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt})
			},
			input:       PlaceBidInput{AuctionID: "a1", AmountEur: 6000},
			expectedErr: rentalerrors.ErrAuctionInactive,
		},
		{
			name: "owner_suspended",
			setup: func(repo *repository.MemoryRepo) {
				repo.AddAuction(models.Auction{AuctionID: "a1", CarID: "car2", OwnerID: "seller2", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt, IsActive: true})
			},
			input:       PlaceBidInput{AuctionID: "a1", AmountEur: 6000},
			expectedErr: rentalerrors.ErrOwnerInactive,
		},
		{
			name: "owner_checked_before_flag",
			setup: func(repo *repository.MemoryRepo) {
				repo.AddAuction(models.Auction{AuctionID: "a1", CarID: "car2", OwnerID: "seller2", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt})
			},
			input:       PlaceBidInput{AuctionID: "a1", AmountEur: 6000},
			expectedErr: rentalerrors.ErrOwnerInactive,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			if tc.setup != nil {
				tc.setup(repo)
			}
			_, err := svc.PlaceBid(context.Background(), tc.input, midway)
			require.ErrorIs(t, err, tc.expectedErr)

			a, findErr := repo.FindAuctionWithBids(context.Background(), "a1")
			require.NoError(t, findErr)
			require.Empty(t, a.Bids)
		})
	}
}

func TestBiddingService_PlaceBid_DisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input PlaceBidInput
		want  string
	}{
		{name: "explicit_name", input: PlaceBidInput{BidderID: "bidder1", DisplayName: " <i>Speedy</i> "}, want: "Speedy"},
		{name: "profile_name", input: PlaceBidInput{BidderID: "bidder1"}, want: "Clara"},
		{name: "profile_email", input: PlaceBidInput{BidderID: "bidder2"}, want: "dan@example.com"},
		{name: "supplied_email", input: PlaceBidInput{BidderID: "ghost", BidderEmail: "ghost@example.com"}, want: "ghost@example.com"},
		{name: "anonymous", input: PlaceBidInput{DisplayName: "   "}, want: DefaultBidderName},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			in := tc.input
			in.AuctionID = "a1"
			in.AmountEur = 5300
			view, err := svc.PlaceBid(context.Background(), in, midway)
			require.NoError(t, err)
			require.Equal(t, tc.want, view.Bids[0].BidderName)
			require.Equal(t, in.BidderID, view.Bids[0].BidderID)
		})
	}
}

func TestBiddingService_PlaceBid_ConcurrentMinimum(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)

	const workers = 40
	var wg sync.WaitGroup
	var accepted, rejected int64
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := svc.PlaceBid(context.Background(), PlaceBidInput{
				AuctionID: "a1",
				AmountEur: 5300,
				BidderID:  fmt.Sprintf("bidder_%d", i),
			}, midway)
			switch {
			case err == nil:
				atomic.AddInt64(&accepted, 1)
			case errors.Is(err, rentalerrors.ErrBidTooLow):
				atomic.AddInt64(&rejected, 1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	require.Equal(t, int64(1), accepted)
	require.Equal(t, int64(workers-1), rejected)

	a, err := repo.FindAuctionWithBids(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, a.Bids, 1)
}

func TestBiddingService_GetActive(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	now := midway

	// upcoming, visible
	repo.AddAuction(models.Auction{AuctionID: "a2", CarID: "car1", OwnerID: "seller1", StartPriceEur: 100, StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour), IsActive: true})
	// running, started earlier than a1
	repo.AddAuction(models.Auction{AuctionID: "a3", CarID: "car1", OwnerID: "seller1", StartPriceEur: 100, StartsAt: startsAt.Add(-time.Hour), EndsAt: now.Add(time.Hour), IsActive: true})
	// hidden by owner access
	repo.AddAuction(models.Auction{AuctionID: "a4", CarID: "car2", OwnerID: "seller2", StartPriceEur: 100, StartsAt: startsAt, EndsAt: endsAt, IsActive: true})
	// ended
	repo.AddAuction(models.Auction{AuctionID: "a5", CarID: "car1", OwnerID: "seller1", StartPriceEur: 100, StartsAt: startsAt, EndsAt: now.Add(-time.Second), IsActive: true})
	// switched off
	repo.AddAuction(models.Auction{AuctionID: "a6", CarID: "car1", OwnerID: "seller1", StartPriceEur: 100, StartsAt: startsAt, EndsAt: endsAt})

	views, err := svc.GetActive(context.Background(), now)
	require.NoError(t, err)

	gotIDs := make([]string, 0, len(views))
	for _, v := range views {
		gotIDs = append(gotIDs, v.AuctionID)
	}
	require.Equal(t, []string{"a3", "a1", "a2"}, gotIDs)
	require.Equal(t, models.PhaseActive, views[0].Phase)
	require.Equal(t, models.PhaseScheduled, views[2].Phase)
	require.False(t, views[2].HasStarted)
	require.Equal(t, "BMW", views[1].Car.Brand)
	require.Equal(t, 5300.0, views[1].MinimumBidEur)
}

func TestBiddingService_GetByID(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := bid(svc, 5300, midway)
	require.NoError(t, err)

	view, err := svc.GetByID(ctx, "a1", midway)
	require.NoError(t, err)
	require.Equal(t, 5300.0, view.CurrentPriceEur)
	require.Equal(t, models.PhaseActive, view.Phase)

	view, err = svc.GetByID(ctx, "a1", endsAt)
	require.NoError(t, err)
	require.Equal(t, models.PhaseEnded, view.Phase)
	require.True(t, view.HasEnded)

	_, err = svc.GetByID(ctx, "missing", midway)
	require.ErrorIs(t, err, rentalerrors.ErrNotFound)

	_, err = svc.GetByID(ctx, "", midway)
	require.ErrorIs(t, err, rentalerrors.ErrInvalidInput)

	repo.AddAuction(models.Auction{AuctionID: "hidden", CarID: "car2", OwnerID: "seller2", StartsAt: startsAt, EndsAt: endsAt, IsActive: true})
	_, err = svc.GetByID(ctx, "hidden", midway)
	require.ErrorIs(t, err, rentalerrors.ErrOwnerInactive)
}

func TestBiddingService_StorageFailures(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockCatalog := repository.NewMockCatalogDB(ctrl)
	svc := NewBiddingService(mockRepo, mockCatalog, nil)
	dbErr := errors.New("db down")
	open := models.Auction{AuctionID: "a1", CarID: "car1", OwnerID: "seller1", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt, IsActive: true}

	tests := []struct {
		name      string
		mockSetup func()
		call      func() error
	}{
		{
			name: "list_failure",
			mockSetup: func() {
				mockRepo.EXPECT().ListActiveAuctions(gomock.Any(), midway).Return(nil, dbErr)
			},
			call: func() error {
				_, err := svc.GetActive(context.Background(), midway)
				return err
			},
		},
		{
			name: "append_failure",
			mockSetup: func() {
				mockRepo.EXPECT().FindAuctionWithBids(gomock.Any(), "a1").Return(open, nil)
				mockCatalog.EXPECT().GetCar(gomock.Any(), "car1").Return(models.Car{CarID: "car1"}, nil)
				mockRepo.EXPECT().AppendBid(gomock.Any(), "a1", gomock.Any()).Return(models.Auction{}, dbErr)
			},
			call: func() error {
				_, err := svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", AmountEur: 5300, DisplayName: "Eve"}, midway)
				return err
			},
		},
		{
			name: "bidder_lookup_failure",
			mockSetup: func() {
				mockRepo.EXPECT().FindAuctionWithBids(gomock.Any(), "a1").Return(open, nil)
				mockCatalog.EXPECT().GetUser(gomock.Any(), "bidder1").Return(models.User{}, dbErr)
			},
			call: func() error {
				_, err := svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", AmountEur: 5300, BidderID: "bidder1"}, midway)
				return err
			},
		},
		{
			name: "car_lookup_failure",
			mockSetup: func() {
				mockRepo.EXPECT().FindAuctionWithBids(gomock.Any(), "a1").Return(open, nil)
				mockCatalog.EXPECT().GetCar(gomock.Any(), "car1").Return(models.Car{}, dbErr)
			},
			call: func() error {
				_, err := svc.GetByID(context.Background(), "a1", midway)
				return err
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			require.ErrorIs(t, tc.call(), dbErr)
		})
	}
}

func TestBiddingService_PlaceBid_CarLookupFailureStoresNothing(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewMemoryRepo()
	repo.AddAuction(models.Auction{AuctionID: "a1", CarID: "car1", OwnerID: "seller1", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt, IsActive: true})
	mockCatalog := repository.NewMockCatalogDB(ctrl)
	svc := NewBiddingService(repo, mockCatalog, nil)
	ctx := context.Background()
	in := PlaceBidInput{AuctionID: "a1", AmountEur: 5300, DisplayName: "Eve"}

	catalogErr := errors.New("catalog unavailable")
	mockCatalog.EXPECT().GetCar(gomock.Any(), "car1").Return(models.Car{}, catalogErr)
	_, err := svc.PlaceBid(ctx, in, midway)
	require.ErrorIs(t, err, catalogErr)

	stored, err := repo.FindAuctionWithBids(ctx, "a1")
	require.NoError(t, err)
	require.Empty(t, stored.Bids, "a failed bid must not be stored")

	// the retry is judged against the same minimum
	mockCatalog.EXPECT().GetCar(gomock.Any(), "car1").Return(models.Car{CarID: "car1", Brand: "BMW"}, nil)
	view, err := svc.PlaceBid(ctx, in, midway)
	require.NoError(t, err)
	require.Equal(t, 5300.0, view.CurrentPriceEur)
	require.Equal(t, "BMW", view.Car.Brand)
	require.Len(t, view.Bids, 1)
}

// expiredLocker grants the lock with a context that is already done, as
// happens when a distributed lock expires while its holder is working
type expiredLocker struct{}

func (expiredLocker) Lock(ctx context.Context, _ string) (context.Context, locker.Unlock, error) {
	lockCtx, cancel := context.WithCancel(ctx)
	cancel()
	return lockCtx, func() {}, nil
}

func TestBiddingService_PlaceBid_LostLockStoresNothing(t *testing.T) {
	t.Parallel()
	repo := repository.NewMemoryRepo()
	repo.AddCar(models.Car{CarID: "car1", OwnerID: "seller1"})
	repo.AddAuction(models.Auction{AuctionID: "a1", CarID: "car1", OwnerID: "seller1", StartPriceEur: 5000, StartsAt: startsAt, EndsAt: endsAt, IsActive: true})
	svc := NewBiddingService(repo, repo, nil, WithLocker(expiredLocker{}))

	_, err := svc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", AmountEur: 5300}, midway)
	require.ErrorIs(t, err, context.Canceled)

	stored, err := repo.FindAuctionWithBids(context.Background(), "a1")
	require.NoError(t, err)
	require.Empty(t, stored.Bids)
}
