//go:generate mockgen -package=handler -destination=mock.go car-rental-core/services/rental/handler AuctionServiceInterface,ReservationServiceInterface

package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"car-rental-core/internal/models"
	reservation "car-rental-core/internal/reservationService"
	"car-rental-core/services/rental/helpers"
	"car-rental-core/utils"

	"github.com/gin-gonic/gin"
)

type ReservationServiceInterface interface {
	CheckAvailability(ctx context.Context, carID string, start, end time.Time) (models.Availability, error)
	Create(ctx context.Context, in reservation.CreateReservationInput) (models.Reservation, error)
	Details(ctx context.Context, id string) (models.ReservationDetails, error)
	Update(ctx context.Context, id string, in reservation.UpdateReservationInput) (models.Reservation, error)
	Confirm(ctx context.Context, id string) (models.Reservation, error)
	Cancel(ctx context.Context, id, reason string) (models.Reservation, error)
	Delete(ctx context.Context, id string) error
	ListByCar(ctx context.Context, carID string) ([]models.ReservationDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.ReservationDetails, error)
	ListByRenter(ctx context.Context, renterID string) ([]models.ReservationDetails, error)
	Calendar(ctx context.Context, ownerID string, from, to time.Time) ([]models.CalendarEntry, error)
}

type ReservationHandler struct {
	service ReservationServiceInterface
}

func NewReservationHandler(service ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// CreateReservationHandler handles POST /reservations
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	caller, err := helpers.CallerFromRequest(c)
	if err != nil {
		helpers.RespondError(c, "CreateReservationHandler", err, nil)
		return
	}

	var req helpers.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateReservationHandler", err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateReservationInput{
		RenterID:             caller.UserID,
		CarID:                req.CarID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Notes:                req.Notes,
		PaymentTransactionID: req.PaymentTransactionID,
		PaymentMethod:        req.PaymentMethod,
	})
	if err != nil {
		helpers.RespondError(c, "CreateReservationHandler", err, map[string]any{
			"car_id":    req.CarID,
			"renter_id": caller.UserID,
		})
		return
	}

	h.respondCommitted(c, "CreateReservationHandler", res, http.StatusCreated, "reservation created successfully")
}

// GetReservationHandler handles GET /reservations/:id
func (h *ReservationHandler) GetReservationHandler(c *gin.Context) {
	h.respondDetails(c, "GetReservationHandler", c.Param("id"), http.StatusOK, "reservation retrieved successfully")
}

// UpdateReservationHandler handles PUT /reservations/:id
func (h *ReservationHandler) UpdateReservationHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateReservationHandler", err)
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, reservation.UpdateReservationInput{
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             req.Status,
		Notes:              req.Notes,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateReservationHandler", err, map[string]any{"reservation_id": id})
		return
	}

	h.respondCommitted(c, "UpdateReservationHandler", res, http.StatusOK, "reservation updated successfully")
}

// ConfirmReservationHandler handles POST /reservations/:id/confirm
func (h *ReservationHandler) ConfirmReservationHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, "ConfirmReservationHandler", err, map[string]any{"reservation_id": id})
		return
	}
	h.respondCommitted(c, "ConfirmReservationHandler", res, http.StatusOK, "reservation confirmed successfully")
}

// CancelReservationHandler handles POST /reservations/:id/cancel. The body is optional.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		helpers.HandleBindError(c, "CancelReservationHandler", err)
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		helpers.RespondError(c, "CancelReservationHandler", err, map[string]any{"reservation_id": id})
		return
	}
	h.respondCommitted(c, "CancelReservationHandler", res, http.StatusOK, "reservation cancelled successfully")
}

// DeleteReservationHandler handles DELETE /reservations/:id
func (h *ReservationHandler) DeleteReservationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondError(c, "DeleteReservationHandler", err, map[string]any{"reservation_id": id})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteReservationHandler", "reservation deleted", map[string]any{"reservation_id": id})
}

// CheckAvailabilityHandler handles POST /reservations/availability
func (h *ReservationHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req helpers.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CheckAvailabilityHandler", err)
		return
	}

	availability, err := h.service.CheckAvailability(c.Request.Context(), req.CarID, req.StartDate, req.EndDate)
	if err != nil {
		helpers.RespondError(c, "CheckAvailabilityHandler", err, map[string]any{"car_id": req.CarID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAvailabilityResponse(availability), "availability checked successfully")
	helpers.LogSuccess("CheckAvailabilityHandler", "availability checked", map[string]any{
		"car_id":       req.CarID,
		"is_available": availability.IsAvailable,
	})
}

// ListCarReservationsHandler handles GET /cars/:car_id/reservations
func (h *ReservationHandler) ListCarReservationsHandler(c *gin.Context) {
	h.respondList(c, "ListCarReservationsHandler", "car_id", h.service.ListByCar)
}

// ListOwnerReservationsHandler handles GET /owners/:owner_id/reservations
func (h *ReservationHandler) ListOwnerReservationsHandler(c *gin.Context) {
	h.respondList(c, "ListOwnerReservationsHandler", "owner_id", h.service.ListByOwner)
}

// ListRenterReservationsHandler handles GET /renters/:renter_id/reservations
func (h *ReservationHandler) ListRenterReservationsHandler(c *gin.Context) {
	h.respondList(c, "ListRenterReservationsHandler", "renter_id", h.service.ListByRenter)
}

// OwnerCalendarHandler handles GET /owners/:owner_id/calendar?from=&to=
func (h *ReservationHandler) OwnerCalendarHandler(c *gin.Context) {
	ownerID := c.Param("owner_id")

	from, err := helpers.ParseDateParam(c, "from")
	if err != nil {
		helpers.RespondError(c, "OwnerCalendarHandler", err, map[string]any{"owner_id": ownerID})
		return
	}
	to, err := helpers.ParseDateParam(c, "to")
	if err != nil {
		helpers.RespondError(c, "OwnerCalendarHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	entries, err := h.service.Calendar(c.Request.Context(), ownerID, from, to)
	if err != nil {
		helpers.RespondError(c, "OwnerCalendarHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCalendarResponses(entries), "calendar retrieved successfully")
	helpers.LogSuccess("OwnerCalendarHandler", "calendar retrieved", map[string]any{
		"owner_id": ownerID,
		"count":    len(entries),
	})
}

func (h *ReservationHandler) respondDetails(c *gin.Context, handlerName, id string, status int, message string) {
	details, err := h.service.Details(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"reservation_id": id})
		return
	}

	utils.JSONResponse(c, status, helpers.NewReservationResponse(details), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"reservation_id": id,
		"status":         string(details.Status),
	})
}

// respondCommitted answers a successful write. The write already happened, so a
// failed enrichment lookup degrades the payload to the bare record instead of
// reporting an error.
func (h *ReservationHandler) respondCommitted(c *gin.Context, handlerName string, res models.Reservation, status int, message string) {
	details, err := h.service.Details(c.Request.Context(), res.ID)
	if err != nil {
		utils.Warn(handlerName+": reservation details unavailable after write", map[string]any{
			"reservation_id": res.ID,
			"error":          err.Error(),
		})
		details = models.ReservationDetails{
			Reservation: res,
			Car:         models.CarSummary{CarID: res.CarID},
			Renter:      models.User{UserID: res.RenterID},
		}
	}

	utils.JSONResponse(c, status, helpers.NewReservationResponse(details), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"reservation_id": res.ID,
		"status":         string(details.Status),
	})
}

func (h *ReservationHandler) respondList(c *gin.Context, handlerName, param string, list func(context.Context, string) ([]models.ReservationDetails, error)) {
	id := c.Param(param)
	rs, err := list(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{param: id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewReservationResponses(rs), "reservations retrieved successfully")
	helpers.LogSuccess(handlerName, "reservations retrieved successfully", map[string]any{
		param:   id,
		"count": len(rs),
	})
}
