package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
)

// Details returns a reservation joined with its car and renter
func (s *ReservationService) Details(ctx context.Context, id string) (models.ReservationDetails, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return models.ReservationDetails{}, err
	}
	return s.enrich(ctx, res, newJoinCache())
}

// ListByCar returns every reservation of a car, oldest start first
func (s *ReservationService) ListByCar(ctx context.Context, carID string) ([]models.ReservationDetails, error) {
	rs, err := s.repo.ListReservationsByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reservations of car %s: %w", carID, err)
	}
	return s.enrichAll(ctx, rs)
}

// ListByRenter returns every reservation made by a renter
func (s *ReservationService) ListByRenter(ctx context.Context, renterID string) ([]models.ReservationDetails, error) {
	rs, err := s.repo.ListReservationsByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reservations of renter %s: %w", renterID, err)
	}
	return s.enrichAll(ctx, rs)
}

// ListByOwner returns every reservation on any car of an owner
func (s *ReservationService) ListByOwner(ctx context.Context, ownerID string) ([]models.ReservationDetails, error) {
	rs, err := s.repo.ListReservationsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list reservations of owner %s: %w", ownerID, err)
	}
	return s.enrichAll(ctx, rs)
}

// Calendar returns the owner's non-cancelled reservations intersecting [from, to)
func (s *ReservationService) Calendar(ctx context.Context, ownerID string, from, to time.Time) ([]models.CalendarEntry, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("service: %w", rentalerrors.WithReason(rentalerrors.ErrInvalidInterval, "calendar start must be before end"))
	}

	rs, err := s.repo.ListReservationsByOwnerAndRange(ctx, ownerID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("service: failed to load calendar of owner %s: %w", ownerID, err)
	}

	cache := newJoinCache()
	entries := make([]models.CalendarEntry, 0, len(rs))
	for _, r := range rs {
		if r.Status == models.StatusCancelled {
			continue
		}
		d, err := s.enrich(ctx, r, cache)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.CalendarEntry{
			ReservationID: r.ID,
			Car:           d.Car,
			RenterName:    d.Renter.Name,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			TotalPrice:    r.TotalPrice,
			Status:        r.Status,
		})
	}
	return entries, nil
}

type joinCache struct {
	cars  map[string]models.CarSummary
	users map[string]models.User
}

func newJoinCache() *joinCache {
	return &joinCache{
		cars:  make(map[string]models.CarSummary),
		users: make(map[string]models.User),
	}
}

func (s *ReservationService) enrichAll(ctx context.Context, rs []models.Reservation) ([]models.ReservationDetails, error) {
	cache := newJoinCache()
	out := make([]models.ReservationDetails, 0, len(rs))
	for _, r := range rs {
		d, err := s.enrich(ctx, r, cache)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// enrich joins car and renter. A car or renter deleted from the catalog
// degrades to its bare id instead of failing the listing.
func (s *ReservationService) enrich(ctx context.Context, r models.Reservation, cache *joinCache) (models.ReservationDetails, error) {
	car, ok := cache.cars[r.CarID]
	if !ok {
		c, err := s.catalog.GetCar(ctx, r.CarID)
		switch {
		case errors.Is(err, rentalerrors.ErrNotFound):
			car = models.CarSummary{CarID: r.CarID}
		case err != nil:
			return models.ReservationDetails{}, fmt.Errorf("service: failed to load car %s: %w", r.CarID, err)
		default:
			car = c.Summary()
		}
		cache.cars[r.CarID] = car
	}

	renter, ok := cache.users[r.RenterID]
	if !ok {
		u, err := s.catalog.GetUser(ctx, r.RenterID)
		switch {
		case errors.Is(err, rentalerrors.ErrNotFound):
			renter = models.User{UserID: r.RenterID}
		case err != nil:
			return models.ReservationDetails{}, fmt.Errorf("service: failed to load renter %s: %w", r.RenterID, err)
		default:
			renter = u
		}
		cache.users[r.RenterID] = renter
	}

	return models.ReservationDetails{Reservation: r, Car: car, Renter: renter}, nil
}
