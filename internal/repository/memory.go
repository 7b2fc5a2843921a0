package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
)

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogDB, ReservationDB and AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	cars         map[string]models.Car          // key: carID
	users        map[string]models.User         // key: userID
	accounts     map[string]models.OwnerAccount // key: ownerID
	reservations map[string]models.Reservation  // key: reservationID
	auctions     map[string]models.Auction      // key: auctionID, bids included
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		cars:         make(map[string]models.Car),
		users:        make(map[string]models.User),
		accounts:     make(map[string]models.OwnerAccount),
		reservations: make(map[string]models.Reservation),
		auctions:     make(map[string]models.Auction),
	}
}

// AddCar adds or replaces a car
func (r *MemoryRepo) AddCar(car models.Car) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars[car.CarID] = car
}

// AddUser adds or replaces a user profile
func (r *MemoryRepo) AddUser(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddOwnerAccount adds or replaces an owner's billing state
func (r *MemoryRepo) AddOwnerAccount(account models.OwnerAccount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.OwnerID] = account
}

// AddAuction adds or replaces an auction together with its bids
func (r *MemoryRepo) AddAuction(auction models.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = cloneAuction(auction)
}

// GetCar returns a car by id
func (r *MemoryRepo) GetCar(_ context.Context, carID string) (models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[carID]
	if !ok {
		return models.Car{}, fmt.Errorf("get car %s: %w", carID, rentalerrors.ErrNotFound)
	}
	return car, nil
}

// GetCarRentalInfo returns the rental terms of a car
func (r *MemoryRepo) GetCarRentalInfo(ctx context.Context, carID string) (models.CarRentalInfo, error) {
	car, err := r.GetCar(ctx, carID)
	if err != nil {
		return models.CarRentalInfo{}, err
	}
	return car.RentalInfo(), nil
}

// GetUser returns a user profile by id
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, rentalerrors.ErrNotFound)
	}
	return user, nil
}

// GetOwnerAccount returns an owner's billing state
func (r *MemoryRepo) GetOwnerAccount(_ context.Context, ownerID string) (models.OwnerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[ownerID]
	if !ok {
		return models.OwnerAccount{}, fmt.Errorf("get owner account %s: %w", ownerID, rentalerrors.ErrNotFound)
	}
	return account, nil
}

// FindReservationsByCarAndRange returns holding reservations of a car intersecting [start, end)
func (r *MemoryRepo) FindReservationsByCarAndRange(_ context.Context, carID string, start, end time.Time, excludeID string) ([]models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Reservation
	for _, res := range r.reservations {
		if res.CarID != carID || res.ID == excludeID || !res.Status.Holding() {
			continue
		}
		if res.StartDate.Before(end) && start.Before(res.EndDate) {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out, nil
}

// GetReservation returns a reservation by id
func (r *MemoryRepo) GetReservation(_ context.Context, id string) (models.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return models.Reservation{}, fmt.Errorf("get reservation %s: %w", id, rentalerrors.ErrNotFound)
	}
	return res, nil
}

// InsertReservation stores a new reservation
func (r *MemoryRepo) InsertReservation(_ context.Context, res models.Reservation) (models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		return models.Reservation{}, fmt.Errorf("insert reservation: empty id")
	}
	if _, exists := r.reservations[res.ID]; exists {
		return models.Reservation{}, fmt.Errorf("insert reservation %s: duplicate id", res.ID)
	}
	r.reservations[res.ID] = res
	return res, nil
}

// UpdateReservation replaces a stored reservation
func (r *MemoryRepo) UpdateReservation(_ context.Context, res models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[res.ID]; !ok {
		return fmt.Errorf("update reservation %s: %w", res.ID, rentalerrors.ErrNotFound)
	}
	r.reservations[res.ID] = res
	return nil
}

// DeleteReservation removes a reservation
func (r *MemoryRepo) DeleteReservation(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return fmt.Errorf("delete reservation %s: %w", id, rentalerrors.ErrNotFound)
	}
	delete(r.reservations, id)
	return nil
}

// ListReservationsByCar returns every reservation of a car ordered by start date
func (r *MemoryRepo) ListReservationsByCar(_ context.Context, carID string) ([]models.Reservation, error) {
	return r.filterReservations(func(res models.Reservation) bool {
		return res.CarID == carID
	}), nil
}

// ListReservationsByRenter returns every reservation made by a renter ordered by start date
func (r *MemoryRepo) ListReservationsByRenter(_ context.Context, renterID string) ([]models.Reservation, error) {
	return r.filterReservations(func(res models.Reservation) bool {
		return res.RenterID == renterID
	}), nil
}

// ListReservationsByOwner returns reservations of every car the owner lists
func (r *MemoryRepo) ListReservationsByOwner(_ context.Context, ownerID string) ([]models.Reservation, error) {
	return r.filterReservations(func(res models.Reservation) bool {
		return r.cars[res.CarID].OwnerID == ownerID
	}), nil
}

// ListReservationsByOwnerAndRange returns the owner's reservations intersecting [from, to)
func (r *MemoryRepo) ListReservationsByOwnerAndRange(_ context.Context, ownerID string, from, to time.Time) ([]models.Reservation, error) {
	return r.filterReservations(func(res models.Reservation) bool {
		return r.cars[res.CarID].OwnerID == ownerID && res.StartDate.Before(to) && from.Before(res.EndDate)
	}), nil
}

// filterReservations must be called without r.mu held
func (r *MemoryRepo) filterReservations(keep func(models.Reservation) bool) []models.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, res := range r.reservations {
		if keep(res) {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out
}

// FindAuctionWithBids returns an auction and its bids
func (r *MemoryRepo) FindAuctionWithBids(_ context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("find auction %s: %w", auctionID, rentalerrors.ErrNotFound)
	}
	return cloneAuction(auction), nil
}

// ListActiveAuctions returns flagged-active auctions that have not ended before now
func (r *MemoryRepo) ListActiveAuctions(_ context.Context, now time.Time) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Auction, 0)
	for _, a := range r.auctions {
		if a.IsActive && !a.EndsAt.Before(now) {
			out = append(out, cloneAuction(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out, nil
}

// AppendBid records a bid on an auction and returns the updated auction
func (r *MemoryRepo) AppendBid(_ context.Context, auctionID string, bid models.AuctionBid) (models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("append bid to auction %s: %w", auctionID, rentalerrors.ErrNotFound)
	}
	bid.AuctionID = auctionID
	auction.Bids = append(auction.Bids, bid)
	r.auctions[auctionID] = auction
	return cloneAuction(auction), nil
}

func sortByStart(rs []models.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].StartDate.Equal(rs[j].StartDate) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].StartDate.Before(rs[j].StartDate)
	})
}

func cloneAuction(a models.Auction) models.Auction {
	a.Issues = append([]string(nil), a.Issues...)
	a.ImageURLs = append([]string(nil), a.ImageURLs...)
	a.VideoURLs = append([]string(nil), a.VideoURLs...)
	a.Bids = append([]models.AuctionBid(nil), a.Bids...)
	if a.BuyNowPriceEur != nil {
		v := *a.BuyNowPriceEur
		a.BuyNowPriceEur = &v
	}
	return a
}
