package rentalerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBidTooLowError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("service: %w", &BidTooLowError{Minimum: 9500})
	require.True(t, errors.Is(err, ErrBidTooLow))
	require.False(t, errors.Is(err, ErrAuctionEnded))
	require.Equal(t, "service: Minimum bid is €9500", err.Error())

	var tooLow *BidTooLowError
	require.True(t, errors.As(err, &tooLow))
	require.Equal(t, 9500.0, tooLow.Minimum)
}

func TestFormatEur(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5300", FormatEur(5300))
	require.Equal(t, "5300.5", FormatEur(5300.5))
	require.Equal(t, "0", FormatEur(0))
}

func TestReasonError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("service: %w", WithReason(ErrInvalidInterval, "start is in the past"))
	require.True(t, errors.Is(err, ErrInvalidInterval))
	require.False(t, errors.Is(err, ErrInvalidState))
	require.Equal(t, "service: invalid date interval: start is in the past", err.Error())

	var reason *ReasonError
	require.True(t, errors.As(err, &reason))
	require.Equal(t, "start is in the past", reason.Reason)
}
