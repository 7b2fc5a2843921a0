package rentalerrors

import (
	"errors"
	"fmt"
	"strconv"
)

// Repository-level errors
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("car is already booked for the requested dates")
)

// reservation rule errors
var (
	ErrInvalidInterval = errors.New("invalid date interval")
	ErrNotRentable     = errors.New("car is not available for rent")
	ErrInvalidState    = errors.New("invalid reservation state")
	ErrInvalidInput    = errors.New("invalid input")

	ErrCarOwnerInactive = errors.New("car owner is not active")
)

// bidding rule errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrAuctionNotStarted = errors.New("auction has not started yet")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrAuctionInactive   = errors.New("auction is not active")
	ErrOwnerInactive     = errors.New("auction owner is not active")
)

// BidTooLowError reports the minimum acceptable amount. It matches ErrBidTooLow.
type BidTooLowError struct {
	Minimum float64
}

func (e *BidTooLowError) Error() string {
	return "Minimum bid is €" + FormatEur(e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// FormatEur renders an amount without trailing zeros, e.g. 9500 or 9500.5
func FormatEur(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ReasonError attaches the human-readable cause to an error kind.
// It matches its Kind with errors.Is.
type ReasonError struct {
	Kind   error
	Reason string
}

func (e *ReasonError) Error() string {
	return e.Kind.Error() + ": " + e.Reason
}

func (e *ReasonError) Unwrap() error {
	return e.Kind
}

// WithReason returns kind annotated with a formatted reason
func WithReason(kind error, format string, args ...any) error {
	return &ReasonError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
