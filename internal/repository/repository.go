//go:generate mockgen -package=repository -destination=mock.go -source=repository.go

package repository

import (
	"context"
	"time"

	"car-rental-core/internal/models"
)

// CatalogDB exposes the read-only data owned by the catalog and billing subsystems
type CatalogDB interface {
	GetCar(ctx context.Context, carID string) (models.Car, error)
	GetCarRentalInfo(ctx context.Context, carID string) (models.CarRentalInfo, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	GetOwnerAccount(ctx context.Context, ownerID string) (models.OwnerAccount, error)
}

// ReservationDB defines the reservation storage interface
type ReservationDB interface {
	// FindReservationsByCarAndRange returns reservations of carID in a holding
	// status whose interval intersects [start, end), skipping excludeID
	FindReservationsByCarAndRange(ctx context.Context, carID string, start, end time.Time, excludeID string) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (models.Reservation, error)
	InsertReservation(ctx context.Context, r models.Reservation) (models.Reservation, error)
	UpdateReservation(ctx context.Context, r models.Reservation) error
	DeleteReservation(ctx context.Context, id string) error
	ListReservationsByCar(ctx context.Context, carID string) ([]models.Reservation, error)
	ListReservationsByRenter(ctx context.Context, renterID string) ([]models.Reservation, error)
	ListReservationsByOwner(ctx context.Context, ownerID string) ([]models.Reservation, error)
	// ListReservationsByOwnerAndRange returns the owner's reservations intersecting [from, to)
	ListReservationsByOwnerAndRange(ctx context.Context, ownerID string, from, to time.Time) ([]models.Reservation, error)
}

// AuctionDB defines the auction storage interface
type AuctionDB interface {
	FindAuctionWithBids(ctx context.Context, auctionID string) (models.Auction, error)
	// ListActiveAuctions returns flagged-active auctions with EndsAt >= now
	ListActiveAuctions(ctx context.Context, now time.Time) ([]models.Auction, error)
	AppendBid(ctx context.Context, auctionID string, bid models.AuctionBid) (models.Auction, error)
}
