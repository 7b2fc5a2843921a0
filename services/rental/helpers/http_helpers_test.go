package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not_found", err: fmt.Errorf("wrap: %w", rentalerrors.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "resource not found"},
		{name: "conflict", err: rentalerrors.ErrConflict, wantStatus: http.StatusConflict, wantMsg: "car is already booked for the requested dates"},
		{name: "invalid_interval", err: rentalerrors.ErrInvalidInterval, wantStatus: http.StatusBadRequest, wantMsg: "invalid date interval"},
		{name: "invalid_state", err: rentalerrors.ErrInvalidState, wantStatus: http.StatusBadRequest, wantMsg: "invalid reservation state"},
		{name: "invalid_interval_with_reason", err: fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "start is in the past")), wantStatus: http.StatusBadRequest, wantMsg: "invalid date interval: start is in the past"},
		{name: "invalid_state_with_reason", err: fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidState, "cannot confirm a Cancelled reservation")), wantStatus: http.StatusBadRequest, wantMsg: "invalid reservation state: cannot confirm a Cancelled reservation"},
		{name: "invalid_input_with_reason", err: rentalerrors.WithReason(rentalerrors.ErrInvalidInput, "empty auction ID"), wantStatus: http.StatusBadRequest, wantMsg: "invalid input: empty auction ID"},
		{name: "car_owner_inactive", err: rentalerrors.ErrCarOwnerInactive, wantStatus: http.StatusForbidden, wantMsg: "car owner is not active"},
		{name: "invalid_bid", err: rentalerrors.ErrInvalidBid, wantStatus: http.StatusBadRequest, wantMsg: "invalid bid details"},
		{name: "not_rentable", err: rentalerrors.ErrNotRentable, wantStatus: http.StatusUnprocessableEntity, wantMsg: "car is not available for rent"},
		{name: "bid_too_low_with_minimum", err: fmt.Errorf("service: %w", &rentalerrors.BidTooLowError{Minimum: 9500}), wantStatus: http.StatusConflict, wantMsg: "Minimum bid is €9500"},
		{name: "bid_too_low_sentinel", err: rentalerrors.ErrBidTooLow, wantStatus: http.StatusConflict, wantMsg: "bid amount too low"},
		{name: "not_started", err: rentalerrors.ErrAuctionNotStarted, wantStatus: http.StatusForbidden, wantMsg: "auction has not started yet"},
		{name: "ended", err: rentalerrors.ErrAuctionEnded, wantStatus: http.StatusGone, wantMsg: "auction has ended"},
		{name: "inactive", err: rentalerrors.ErrAuctionInactive, wantStatus: http.StatusForbidden, wantMsg: "auction is not active"},
		{name: "owner_inactive", err: rentalerrors.ErrOwnerInactive, wantStatus: http.StatusForbidden, wantMsg: "auction owner is not active"},
		{name: "missing_identity", err: ErrMissingIdentity, wantStatus: http.StatusUnauthorized, wantMsg: "missing caller identity"},
		{name: "deadline", err: fmt.Errorf("db: %w", context.DeadlineExceeded), wantStatus: http.StatusGatewayTimeout, wantMsg: "request timed out"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, msg := MapErrorToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestParseDateParam(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	parse := func(query string) (time.Time, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return ParseDateParam(c, "from")
	}

	got, err := parse("from=2025-01-10")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = parse("from=2025-01-10T12:00:00%2B02:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC), got)

	_, err = parse("")
	require.ErrorIs(t, err, rentalerrors.ErrInvalidInterval)

	_, err = parse("from=soon")
	require.ErrorIs(t, err, rentalerrors.ErrInvalidInterval)
}

func TestNewAuctionResponse_HidesBidderIDs(t *testing.T) {
	t.Parallel()

	view := models.AuctionView{
		Auction: models.Auction{
			AuctionID: "a1",
			Bids:      []models.AuctionBid{{BidID: "b1", BidderID: "secret", BidderName: "Clara", AmountEur: 5300}},
		},
		CurrentPriceEur: 5300,
	}
	resp := NewAuctionResponse(view)
	require.Equal(t, []BidResponse{{ID: "b1", BidderName: "Clara", AmountEur: 5300, CreatedAt: "0001-01-01T00:00:00Z"}}, resp.Bids)
	require.NotNil(t, resp.Issues)
	require.NotNil(t, resp.VideoURLs)
}
