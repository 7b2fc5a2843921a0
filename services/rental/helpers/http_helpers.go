package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"car-rental-core/internal/rentalerrors"
	"car-rental-core/utils"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the authenticating proxy in front of the service
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
)

// ErrMissingIdentity is returned when a request lacks the caller headers
var ErrMissingIdentity = errors.New("missing caller identity")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var tooLow *rentalerrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		return http.StatusConflict, tooLow.Error()
	case errors.Is(err, rentalerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, rentalerrors.ErrInvalidInterval):
		return http.StatusBadRequest, reasonOr(err, rentalerrors.ErrInvalidInterval)
	case errors.Is(err, rentalerrors.ErrInvalidState):
		return http.StatusBadRequest, reasonOr(err, rentalerrors.ErrInvalidState)
	case errors.Is(err, rentalerrors.ErrInvalidInput):
		return http.StatusBadRequest, reasonOr(err, rentalerrors.ErrInvalidInput)
	case errors.Is(err, rentalerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, rentalerrors.ErrConflict):
		return http.StatusConflict, rentalerrors.ErrConflict.Error()
	case errors.Is(err, rentalerrors.ErrNotRentable):
		return http.StatusUnprocessableEntity, rentalerrors.ErrNotRentable.Error()
	case errors.Is(err, rentalerrors.ErrBidTooLow):
		return http.StatusConflict, rentalerrors.ErrBidTooLow.Error()
	case errors.Is(err, rentalerrors.ErrAuctionNotStarted):
		return http.StatusForbidden, rentalerrors.ErrAuctionNotStarted.Error()
	case errors.Is(err, rentalerrors.ErrAuctionEnded):
		return http.StatusGone, rentalerrors.ErrAuctionEnded.Error()
	case errors.Is(err, rentalerrors.ErrAuctionInactive):
		return http.StatusForbidden, rentalerrors.ErrAuctionInactive.Error()
	case errors.Is(err, rentalerrors.ErrOwnerInactive):
		return http.StatusForbidden, rentalerrors.ErrOwnerInactive.Error()
	case errors.Is(err, rentalerrors.ErrCarOwnerInactive):
		return http.StatusForbidden, rentalerrors.ErrCarOwnerInactive.Error()
	case errors.Is(err, ErrMissingIdentity):
		return http.StatusUnauthorized, ErrMissingIdentity.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// reasonOr returns "kind: reason" when err carries a reason, else the kind's text
func reasonOr(err, kind error) string {
	var reason *rentalerrors.ReasonError
	if errors.As(err, &reason) {
		return reason.Error()
	}
	return kind.Error()
}

// RespondError writes the mapped error and logs it: rule rejections at Warn, faults at Error
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// Caller is the identity forwarded by the auth layer
type Caller struct {
	UserID string
	Email  string
}

// CallerFromRequest reads the identity headers. UserID is required.
func CallerFromRequest(c *gin.Context) (Caller, error) {
	caller := OptionalCaller(c)
	if caller.UserID == "" {
		return Caller{}, ErrMissingIdentity
	}
	return caller, nil
}

// OptionalCaller reads the identity headers without requiring them
func OptionalCaller(c *gin.Context) Caller {
	return Caller{
		UserID: strings.TrimSpace(c.GetHeader(HeaderUserID)),
		Email:  strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
	}
}

// ParseDateParam accepts RFC3339 timestamps or plain 2006-01-02 dates (UTC midnight)
func ParseDateParam(c *gin.Context, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "query parameter %q is required", name)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "query parameter %q must be RFC3339 or 2006-01-02", name)
	}
	return t, nil
}
