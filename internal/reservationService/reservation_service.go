package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-rental-core/internal/access"
	"car-rental-core/internal/events"
	"car-rental-core/internal/locker"
	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
	"car-rental-core/internal/repository"
	"car-rental-core/internal/timewindow"
	"car-rental-core/utils"
)

// ReservationService owns the reservation lifecycle: pricing, availability and status changes.
// Every write that can affect car occupancy runs under the car's lock, so the
// conflict check and the write are atomic relative to other writers of that car.
type ReservationService struct {
	repo      repository.ReservationDB
	catalog   repository.CatalogDB
	access    access.Checker
	locker    locker.Locker
	publisher events.Publisher
	now       func() time.Time
}

// Option customizes a ReservationService
type Option func(*ReservationService)

// WithLocker replaces the default in-process KeyedMutex
func WithLocker(l locker.Locker) Option {
	return func(s *ReservationService) {
		s.locker = l
	}
}

// WithAccessChecker hides cars of owners without an active plan.
// The default lets every owner through.
func WithAccessChecker(c access.Checker) Option {
	return func(s *ReservationService) {
		s.access = c
	}
}

// WithPublisher sets where committed changes are announced
func WithPublisher(p events.Publisher) Option {
	return func(s *ReservationService) {
		s.publisher = p
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *ReservationService) {
		s.now = now
	}
}

// NewReservationService creates a new ReservationService instance
func NewReservationService(repo repository.ReservationDB, catalog repository.CatalogDB, opts ...Option) *ReservationService {
	s := &ReservationService{
		repo:    repo,
		catalog: catalog,
		access:  access.AllowAll{},
		locker:  locker.NewKeyedMutex(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateReservationInput carries a renter's booking request
type CreateReservationInput struct {
	RenterID             string
	CarID                string
	StartDate            time.Time
	EndDate              time.Time
	Notes                string
	PaymentTransactionID string
	PaymentMethod        string
}

// UpdateReservationInput carries optional changes; nil fields are left untouched
type UpdateReservationInput struct {
	StartDate          *time.Time
	EndDate            *time.Time
	Status             *models.ReservationStatus
	Notes              *string
	CancellationReason *string
}

// CheckAvailability reports whether carID is free over [start, end) and, if not,
// which booked ranges are in the way. An unknown or unlisted car, or one whose
// owner has no access, is reported as unavailable with no ranges.
func (s *ReservationService) CheckAvailability(ctx context.Context, carID string, start, end time.Time) (models.Availability, error) {
	unavailable := models.Availability{IsAvailable: false, UnavailableDates: []models.DateRange{}}

	if !start.Before(end) {
		return models.Availability{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "start must be before end"))
	}

	info, err := s.catalog.GetCarRentalInfo(ctx, carID)
	if errors.Is(err, rentalerrors.ErrNotFound) {
		return unavailable, nil
	}
	if err != nil {
		return models.Availability{}, fmt.Errorf("service: failed to load car %s: %w", carID, err)
	}
	if !info.IsForRent {
		return unavailable, nil
	}
	ok, err := s.access.OwnerHasAccess(ctx, info.OwnerID, s.now())
	if err != nil {
		return models.Availability{}, fmt.Errorf("service: failed to check owner %s: %w", info.OwnerID, err)
	}
	if !ok {
		return unavailable, nil
	}

	existing, err := s.repo.FindReservationsByCarAndRange(ctx, carID, start, end, "")
	if err != nil {
		return models.Availability{}, fmt.Errorf("service: failed to load reservations for car %s: %w", carID, err)
	}

	conflicts := timewindow.Conflicts(toIntervals(existing), timewindow.Interval{Start: start, End: end}, "")
	ranges := make([]models.DateRange, 0, len(conflicts))
	for _, iv := range conflicts {
		ranges = append(ranges, models.DateRange{StartDate: iv.Start, EndDate: iv.End})
	}

	return models.Availability{IsAvailable: len(ranges) == 0, UnavailableDates: ranges}, nil
}

// Create validates and books a car for a renter in Pending state
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (models.Reservation, error) {
	if in.RenterID == "" || in.CarID == "" {
		return models.Reservation{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInput, "missing renter or car id"))
	}

	now := s.now()
	start, end := in.StartDate.UTC(), in.EndDate.UTC()
	if !start.Before(end) {
		return models.Reservation{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "start must be before end"))
	}
	if start.Before(now) {
		return models.Reservation{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "start is in the past"))
	}

	info, err := s.catalog.GetCarRentalInfo(ctx, in.CarID)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("service: failed to load car %s: %w", in.CarID, err)
	}
	if !info.IsForRent {
		return models.Reservation{}, fmt.Errorf("service: %w - car %s", rentalerrors.ErrNotRentable, in.CarID)
	}
	ok, err := s.access.OwnerHasAccess(ctx, info.OwnerID, now)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("service: failed to check owner %s: %w", info.OwnerID, err)
	}
	if !ok {
		return models.Reservation{}, fmt.Errorf("service: %w - car %s", rentalerrors.ErrCarOwnerInactive, in.CarID)
	}

	lockCtx, unlock, err := s.locker.Lock(ctx, locker.CarKey(in.CarID))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("service: failed to lock car %s: %w", in.CarID, err)
	}
	defer unlock()

	if err := s.ensureFree(lockCtx, in.CarID, start, end, ""); err != nil {
		return models.Reservation{}, err
	}
	if err := lockCtx.Err(); err != nil {
		return models.Reservation{}, fmt.Errorf("service: create reservation aborted: %w", err)
	}

	res := models.Reservation{
		ID:                   utils.GenerateID(),
		CarID:                in.CarID,
		RenterID:             in.RenterID,
		StartDate:            start,
		EndDate:              end,
		TotalPrice:           Price(info.PricePerDay, start, end),
		Status:               models.StatusPending,
		Notes:                utils.SanitizeText(in.Notes),
		PaymentTransactionID: in.PaymentTransactionID,
		PaymentMethod:        in.PaymentMethod,
		CreatedAt:            now,
	}

	saved, err := s.repo.InsertReservation(lockCtx, res)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("service: failed to insert reservation for car %s: %w", in.CarID, err)
	}

	utils.Info("reservation created", map[string]any{
		"reservation_id": saved.ID,
		"car_id":         saved.CarID,
		"renter_id":      saved.RenterID,
		"total_price":    saved.TotalPrice,
	})
	events.PublishQuietly(ctx, s.publisher, events.New(events.ReservationCreated, saved.ID, now, saved))
	return saved, nil
}

// Get returns a reservation by id
func (s *ReservationService) Get(ctx context.Context, id string) (models.Reservation, error) {
	if id == "" {
		return models.Reservation{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInput, "empty reservation id"))
	}
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("service: failed to get reservation %s: %w", id, err)
	}
	return res, nil
}

// Update applies partial changes. Date changes and moves back into a holding
// status re-run the conflict check with the reservation itself excluded.
// Dates of a Cancelled or Completed reservation cannot change.
func (s *ReservationService) Update(ctx context.Context, id string, in UpdateReservationInput) (models.Reservation, error) {
	if in.Status != nil && !in.Status.Valid() {
		return models.Reservation{}, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidState, "unknown status %q", *in.Status))
	}

	var updated models.Reservation
	err := s.withReservationLock(ctx, id, func(ctx context.Context, current models.Reservation) error {
		now := s.now()
		next := current

		datesChanged := false
		if in.StartDate != nil && !in.StartDate.Equal(current.StartDate) {
			next.StartDate = in.StartDate.UTC()
			datesChanged = true
		}
		if in.EndDate != nil && !in.EndDate.Equal(current.EndDate) {
			next.EndDate = in.EndDate.UTC()
			datesChanged = true
		}

		if datesChanged {
			if current.Status.Terminal() {
				return fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidState, "dates of a %s reservation cannot change", current.Status))
			}
			if !next.StartDate.Before(next.EndDate) {
				return fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "start must be before end"))
			}
		}

		if in.Status != nil && *in.Status != current.Status {
			applyStatus(&next, *in.Status, now, in.CancellationReason)
		} else if in.CancellationReason != nil {
			next.CancellationReason = utils.SanitizeText(*in.CancellationReason)
		}
		if in.Notes != nil {
			next.Notes = utils.SanitizeText(*in.Notes)
		}

		reactivated := next.Status.Holding() && !current.Status.Holding()
		if next.Status.Holding() && (datesChanged || reactivated) {
			if err := s.ensureFree(ctx, next.CarID, next.StartDate, next.EndDate, next.ID); err != nil {
				return err
			}
		}

		if datesChanged {
			info, err := s.catalog.GetCarRentalInfo(ctx, next.CarID)
			if err != nil {
				return fmt.Errorf("service: failed to load car %s: %w", next.CarID, err)
			}
			next.TotalPrice = Price(info.PricePerDay, next.StartDate, next.EndDate)
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("service: update reservation aborted: %w", err)
		}
		if err := s.repo.UpdateReservation(ctx, next); err != nil {
			return fmt.Errorf("service: failed to update reservation %s: %w", id, err)
		}

		updated = next
		events.PublishQuietly(ctx, s.publisher, events.New(eventForStatusChange(current.Status, next.Status), next.ID, now, next))
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	utils.Info("reservation updated", map[string]any{
		"reservation_id": updated.ID,
		"status":         string(updated.Status),
	})
	return updated, nil
}

// Confirm moves a Pending or Confirmed reservation to Confirmed and refreshes ConfirmedAt
func (s *ReservationService) Confirm(ctx context.Context, id string) (models.Reservation, error) {
	var confirmed models.Reservation
	err := s.withReservationLock(ctx, id, func(ctx context.Context, current models.Reservation) error {
		if current.Status != models.StatusPending && current.Status != models.StatusConfirmed {
			return fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidState, "cannot confirm a %s reservation", current.Status))
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("service: confirm reservation aborted: %w", err)
		}

		now := s.now()
		next := current
		applyStatus(&next, models.StatusConfirmed, now, nil)
		if err := s.repo.UpdateReservation(ctx, next); err != nil {
			return fmt.Errorf("service: failed to confirm reservation %s: %w", id, err)
		}

		confirmed = next
		events.PublishQuietly(ctx, s.publisher, events.New(events.ReservationConfirmed, next.ID, now, next))
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	utils.Info("reservation confirmed", map[string]any{"reservation_id": id})
	return confirmed, nil
}

// Cancel marks a reservation Cancelled regardless of its prior status
func (s *ReservationService) Cancel(ctx context.Context, id, reason string) (models.Reservation, error) {
	var cancelled models.Reservation
	err := s.withReservationLock(ctx, id, func(ctx context.Context, current models.Reservation) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("service: cancel reservation aborted: %w", err)
		}

		now := s.now()
		next := current
		applyStatus(&next, models.StatusCancelled, now, &reason)
		if err := s.repo.UpdateReservation(ctx, next); err != nil {
			return fmt.Errorf("service: failed to cancel reservation %s: %w", id, err)
		}

		cancelled = next
		events.PublishQuietly(ctx, s.publisher, events.New(events.ReservationCancelled, next.ID, now, next))
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	utils.Info("reservation cancelled", map[string]any{
		"reservation_id": id,
		"reason":         cancelled.CancellationReason,
	})
	return cancelled, nil
}

// Delete removes a reservation outright. Administrative; prefer Cancel.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	err := s.withReservationLock(ctx, id, func(ctx context.Context, current models.Reservation) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("service: delete reservation aborted: %w", err)
		}
		if err := s.repo.DeleteReservation(ctx, id); err != nil {
			return fmt.Errorf("service: failed to delete reservation %s: %w", id, err)
		}
		events.PublishQuietly(ctx, s.publisher, events.New(events.ReservationDeleted, id, s.now(), current))
		return nil
	})
	if err != nil {
		return err
	}

	utils.Info("reservation deleted", map[string]any{"reservation_id": id})
	return nil
}

// ensureFree fails with ErrConflict when [start, end) intersects a holding
// reservation of carID other than excludeID. Callers hold the car lock.
func (s *ReservationService) ensureFree(ctx context.Context, carID string, start, end time.Time, excludeID string) error {
	existing, err := s.repo.FindReservationsByCarAndRange(ctx, carID, start, end, excludeID)
	if err != nil {
		return fmt.Errorf("service: failed to load reservations for car %s: %w", carID, err)
	}
	if timewindow.Overlaps(toIntervals(existing), timewindow.Interval{Start: start, End: end}, excludeID) {
		return fmt.Errorf("service: %w - car %s between %s and %s",
			rentalerrors.ErrConflict, carID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

// withReservationLock runs fn on a fresh copy of the reservation while holding
// its car's lock. fn receives the lock context and checks it before writing.
func (s *ReservationService) withReservationLock(ctx context.Context, id string, fn func(context.Context, models.Reservation) error) error {
	res, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	lockCtx, unlock, err := s.locker.Lock(ctx, locker.CarKey(res.CarID))
	if err != nil {
		return fmt.Errorf("service: failed to lock car %s: %w", res.CarID, err)
	}
	defer unlock()

	// re-read under the lock; the car of a reservation never changes
	res, err = s.Get(lockCtx, id)
	if err != nil {
		return err
	}
	return fn(lockCtx, res)
}

// Price is the daily rate times the fractional number of days in [start, end)
func Price(pricePerDay float64, start, end time.Time) float64 {
	return pricePerDay * timewindow.Days(start, end)
}

func applyStatus(r *models.Reservation, status models.ReservationStatus, now time.Time, reason *string) {
	r.Status = status
	switch status {
	case models.StatusConfirmed:
		r.ConfirmedAt = &now
	case models.StatusCancelled:
		r.CancelledAt = &now
		if reason != nil {
			r.CancellationReason = utils.SanitizeText(*reason)
		}
	}
}

func eventForStatusChange(from, to models.ReservationStatus) events.Type {
	if from == to {
		return events.ReservationUpdated
	}
	switch to {
	case models.StatusConfirmed:
		return events.ReservationConfirmed
	case models.StatusCancelled:
		return events.ReservationCancelled
	}
	return events.ReservationUpdated
}

func toIntervals(rs []models.Reservation) []timewindow.Interval {
	out := make([]timewindow.Interval, 0, len(rs))
	for _, r := range rs {
		out = append(out, timewindow.Interval{ID: r.ID, Start: r.StartDate, End: r.EndDate})
	}
	return out
}
