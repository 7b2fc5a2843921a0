package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupPostgres(t *testing.T) (*PostgresRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepo(db), mock
}

var reservationCols = []string{
	"id", "car_id", "renter_id", "start_date", "end_date", "total_price", "status",
	"notes", "payment_transaction_id", "payment_method", "created_at",
	"confirmed_at", "cancelled_at", "cancellation_reason",
}

func TestPostgresRepo_GetCarRentalInfo(t *testing.T) {
	repo, mock := setupPostgres(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, owner_id, is_for_rent, price_per_day\s+FROM cars`).
		WithArgs("car1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "is_for_rent", "price_per_day"}).
			AddRow("car1", "owner1", true, 42.5))

	info, err := repo.GetCarRentalInfo(ctx, "car1")
	require.NoError(t, err)
	require.Equal(t, models.CarRentalInfo{CarID: "car1", OwnerID: "owner1", IsForRent: true, PricePerDay: 42.5}, info)

	mock.ExpectQuery(`FROM cars`).WithArgs("carX").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetCarRentalInfo(ctx, "carX")
	require.ErrorIs(t, err, rentalerrors.ErrNotFound)
}

func TestPostgresRepo_FindReservationsByCarAndRange(t *testing.T) {
	repo, mock := setupPostgres(t)
	ctx := context.Background()

	confirmed := day(2)
	mock.ExpectQuery(`FROM reservations r\s+WHERE r.car_id = \$1`).
		WithArgs("car1", sqlmock.AnyArg(), day(11), day(13), "r9").
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow("r1", "car1", "renter1", day(10), day(12), 80.0, "Confirmed", "", "", "", day(1), confirmed, nil, ""))

	got, err := repo.FindReservationsByCarAndRange(ctx, "car1", day(11), day(13), "r9")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, models.StatusConfirmed, got[0].Status)
	require.NotNil(t, got[0].ConfirmedAt)
	require.True(t, confirmed.Equal(*got[0].ConfirmedAt))
	require.Nil(t, got[0].CancelledAt)
}

func TestPostgresRepo_InsertReservation(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "ok"},
		{
			name:    "exclusion_violation",
			execErr: &pq.Error{Code: pqExclusionViolation, Constraint: "reservations_no_overlap"},
			wantErr: rentalerrors.ErrConflict,
		},
		{
			name:    "check_violation",
			execErr: &pq.Error{Code: pqCheckViolation, Constraint: "reservations_start_before_end"},
			wantErr: rentalerrors.ErrInvalidInterval,
		},
		{
			name:    "other_failure",
			execErr: errors.New("connection reset"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupPostgres(t)
			res := newReservation("r1", "car1", "renter1", day(10), day(12), models.StatusPending)

			exp := mock.ExpectExec(`INSERT INTO reservations`).
				WithArgs("r1", "car1", "renter1", day(10), day(12), 0.0, "Pending", "", "", "", day(1), nil, nil, "")
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			_, err := repo.InsertReservation(context.Background(), res)
			switch {
			case tc.execErr == nil:
				require.NoError(t, err)
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			default:
				require.Error(t, err)
				require.False(t, errors.Is(err, rentalerrors.ErrConflict))
			}
		})
	}
}

func TestPostgresRepo_UpdateAndDeleteReservation(t *testing.T) {
	repo, mock := setupPostgres(t)
	ctx := context.Background()
	res := newReservation("r1", "car1", "renter1", day(10), day(12), models.StatusCancelled)

	mock.ExpectExec(`UPDATE reservations`).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateReservation(ctx, res))

	mock.ExpectExec(`UPDATE reservations`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.UpdateReservation(ctx, res), rentalerrors.ErrNotFound)

	mock.ExpectExec(`DELETE FROM reservations`).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteReservation(ctx, "r1"))

	mock.ExpectExec(`DELETE FROM reservations`).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.DeleteReservation(ctx, "r1"), rentalerrors.ErrNotFound)
}

var auctionCols = []string{
	"id", "car_id", "owner_id", "start_price_eur", "buy_now_price_eur", "starts_at", "ends_at",
	"is_active", "description", "issues", "image_urls", "video_urls",
}

var bidCols = []string{"id", "auction_id", "bidder_id", "bidder_name", "amount_eur", "created_at"}

func TestPostgresRepo_FindAuctionWithBids(t *testing.T) {
	repo, mock := setupPostgres(t)
	ctx := context.Background()

	mock.ExpectQuery(`FROM auctions WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(auctionCols).
			AddRow("a1", "car1", "owner1", 5000.0, nil, day(1), day(5), true, "clean", "{dent,\"worn tyres\"}", "{}", "{}"))
	mock.ExpectQuery(`FROM auction_bids\s+WHERE auction_id = \$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(bidCols).
			AddRow("b1", "a1", nil, "Bidder", 5300.0, day(2)).
			AddRow("b2", "a1", "user7", "Mia", 5600.0, day(3)))

	a, err := repo.FindAuctionWithBids(ctx, "a1")
	require.NoError(t, err)
	require.Nil(t, a.BuyNowPriceEur)
	require.Equal(t, []string{"dent", "worn tyres"}, a.Issues)
	require.Len(t, a.Bids, 2)
	require.Empty(t, a.Bids[0].BidderID)
	require.Equal(t, "user7", a.Bids[1].BidderID)

	mock.ExpectQuery(`FROM auctions WHERE id = \$1`).WithArgs("missing").WillReturnRows(sqlmock.NewRows(auctionCols))
	_, err = repo.FindAuctionWithBids(ctx, "missing")
	require.ErrorIs(t, err, rentalerrors.ErrNotFound)
}

func TestPostgresRepo_AppendBid(t *testing.T) {
	repo, mock := setupPostgres(t)
	ctx := context.Background()
	bid := models.AuctionBid{BidID: "b1", BidderName: "Bidder", AmountEur: 5300, CreatedAt: day(2)}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM auctions WHERE id = \$1 FOR UPDATE`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a1"))
	mock.ExpectExec(`INSERT INTO auction_bids`).
		WithArgs("b1", "a1", nil, "Bidder", 5300.0, day(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM auctions WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(auctionCols).
			AddRow("a1", "car1", "owner1", 5000.0, 9000.0, day(1), day(5), true, "", "{}", "{}", "{}"))
	mock.ExpectQuery(`FROM auction_bids`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(bidCols).AddRow("b1", "a1", nil, "Bidder", 5300.0, day(2)))
	mock.ExpectCommit()

	a, err := repo.AppendBid(ctx, "a1", bid)
	require.NoError(t, err)
	require.Len(t, a.Bids, 1)
	require.NotNil(t, a.BuyNowPriceEur)
	require.Equal(t, 9000.0, *a.BuyNowPriceEur)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("gone").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err = repo.AppendBid(ctx, "gone", bid)
	require.ErrorIs(t, err, rentalerrors.ErrNotFound)
}

func TestPostgresRepo_ListActiveAuctions(t *testing.T) {
	repo, mock := setupPostgres(t)
	now := day(3)

	mock.ExpectQuery(`WHERE is_active AND ends_at >= \$1`).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows(auctionCols).
			AddRow("a1", "car1", "owner1", 5000.0, nil, day(1), day(5), true, "", "{}", "{}", "{}").
			AddRow("a2", "car2", "owner2", 7000.0, nil, day(4), day(6), true, "", "{}", "{}", "{}"))
	mock.ExpectQuery(`WHERE auction_id = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(bidCols).
			AddRow("b1", "a2", "u1", "Ivo", 7300.0, day(4)))

	auctions, err := repo.ListActiveAuctions(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, auctions, 2)
	require.Empty(t, auctions[0].Bids)
	require.Len(t, auctions[1].Bids, 1)
}

func TestPostgresRepo_GetOwnerAccount(t *testing.T) {
	repo, mock := setupPostgres(t)
	ends := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM owner_accounts`).
		WithArgs("owner1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "subscription_ends_at", "trial_ends_at", "suspended"}).
			AddRow("owner1", ends, nil, false))

	acc, err := repo.GetOwnerAccount(context.Background(), "owner1")
	require.NoError(t, err)
	require.NotNil(t, acc.SubscriptionEndsAt)
	require.True(t, ends.Equal(*acc.SubscriptionEndsAt))
	require.Nil(t, acc.TrialEndsAt)
}
