package models

import "time"

// ReservationStatus is the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "Pending"
	StatusConfirmed  ReservationStatus = "Confirmed"
	StatusInProgress ReservationStatus = "InProgress"
	StatusCompleted  ReservationStatus = "Completed"
	StatusCancelled  ReservationStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Holding reports whether a reservation in this status blocks the car for its interval
func (s ReservationStatus) Holding() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// Terminal reports whether the status ends the reservation lifecycle
func (s ReservationStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// HoldingStatuses lists every status that occupies a car
var HoldingStatuses = []ReservationStatus{StatusPending, StatusConfirmed, StatusInProgress}

// Reservation is a renter's booking of a car over a half-open [StartDate, EndDate) interval
type Reservation struct {
	ID                   string            `json:"id"`
	CarID                string            `json:"car_id"`
	RenterID             string            `json:"renter_id"`
	StartDate            time.Time         `json:"start_date"`
	EndDate              time.Time         `json:"end_date"`
	TotalPrice           float64           `json:"total_price"`
	Status               ReservationStatus `json:"status"`
	Notes                string            `json:"notes,omitempty"`
	PaymentTransactionID string            `json:"payment_transaction_id,omitempty"`
	PaymentMethod        string            `json:"payment_method,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	ConfirmedAt          *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt          *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason   string            `json:"cancellation_reason,omitempty"`
}

// Car is the catalog entry a reservation or auction points at
type Car struct {
	CarID       string  `json:"car_id"`
	OwnerID     string  `json:"owner_id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsForRent   bool    `json:"is_for_rent"`
	PricePerDay float64 `json:"price_per_day"`
}

// CarRentalInfo is the subset of a car the reservation engine prices and gates on
type CarRentalInfo struct {
	CarID       string
	OwnerID     string
	IsForRent   bool
	PricePerDay float64
}

// RentalInfo projects the car onto its rental terms
func (c Car) RentalInfo() CarRentalInfo {
	return CarRentalInfo{
		CarID:       c.CarID,
		OwnerID:     c.OwnerID,
		IsForRent:   c.IsForRent,
		PricePerDay: c.PricePerDay,
	}
}

// Summary returns the display fields of the car
func (c Car) Summary() CarSummary {
	return CarSummary{
		CarID:    c.CarID,
		Brand:    c.Brand,
		Model:    c.Model,
		Color:    c.Color,
		ImageURL: c.ImageURL,
	}
}

// CarSummary is the display projection of a car
type CarSummary struct {
	CarID    string `json:"car_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	ImageURL string `json:"image_url,omitempty"`
}

// User is a renter, bidder or seller profile
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// OwnerAccount holds the billing state the access gate evaluates
type OwnerAccount struct {
	OwnerID            string     `json:"owner_id"`
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at,omitempty"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	Suspended          bool       `json:"suspended"`
}

// DateRange is a half-open [StartDate, EndDate) range
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Availability is the answer to an availability query
type Availability struct {
	IsAvailable      bool        `json:"is_available"`
	UnavailableDates []DateRange `json:"unavailable_dates"`
}

// ReservationDetails is a reservation joined with its car and renter
type ReservationDetails struct {
	Reservation
	Car    CarSummary `json:"car"`
	Renter User       `json:"renter"`
}

// CalendarEntry is the owner calendar projection of a reservation
type CalendarEntry struct {
	ReservationID string            `json:"id"`
	Car           CarSummary        `json:"car"`
	RenterName    string            `json:"renter_name"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	TotalPrice    float64           `json:"total_price"`
	Status        ReservationStatus `json:"status"`
}

// Auction is a timed sale of a car; it owns its bids
type Auction struct {
	AuctionID      string       `json:"auction_id"`
	CarID          string       `json:"car_id"`
	OwnerID        string       `json:"owner_id"`
	StartPriceEur  float64      `json:"start_price_eur"`
	BuyNowPriceEur *float64     `json:"buy_now_price_eur,omitempty"`
	StartsAt       time.Time    `json:"starts_at"`
	EndsAt         time.Time    `json:"ends_at"`
	IsActive       bool         `json:"is_active"`
	Description    string       `json:"description"`
	Issues         []string     `json:"issues"`
	ImageURLs      []string     `json:"image_urls"`
	VideoURLs      []string     `json:"video_urls"`
	Bids           []AuctionBid `json:"bids"`
}

// AuctionBid is an accepted bid on an auction
type AuctionBid struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	BidderID   string    `json:"bidder_id,omitempty"`
	BidderName string    `json:"bidder_name"`
	AmountEur  float64   `json:"amount_eur"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuctionPhase is the lifecycle state of an auction derived from the clock and its flag
type AuctionPhase string

const (
	PhaseScheduled AuctionPhase = "Scheduled"
	PhaseActive    AuctionPhase = "Active"
	PhaseEnded     AuctionPhase = "Ended"
)

// AuctionView is the read model of an auction computed at a given instant
type AuctionView struct {
	Auction
	Car             CarSummary   `json:"car"`
	CurrentPriceEur float64      `json:"current_price_eur"`
	MinimumBidEur   float64      `json:"minimum_bid_eur"`
	Phase           AuctionPhase `json:"phase"`
	HasStarted      bool         `json:"has_started"`
	HasEnded        bool         `json:"has_ended"`
}
