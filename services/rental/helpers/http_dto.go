package helpers

import (
	"time"

	"car-rental-core/internal/models"

	"github.com/samber/lo"
)

// Request DTOs
type CreateReservationRequest struct {
	CarID                string    `json:"car_id" binding:"required"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	Notes                string    `json:"notes"`
	PaymentTransactionID string    `json:"payment_transaction_id"`
	PaymentMethod        string    `json:"payment_method"`
}

type UpdateReservationRequest struct {
	StartDate          *time.Time                `json:"start_date"`
	EndDate            *time.Time                `json:"end_date"`
	Status             *models.ReservationStatus `json:"status"`
	Notes              *string                   `json:"notes"`
	CancellationReason *string                   `json:"cancellation_reason"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type CheckAvailabilityRequest struct {
	CarID     string    `json:"car_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type PlaceBidRequest struct {
	AmountEur   float64 `json:"amount_eur" binding:"required,gt=0"`
	DisplayName string  `json:"display_name"`
}

// Response DTOs
type ReservationResponse struct {
	ID                 string  `json:"id"`
	CarID              string  `json:"car_id"`
	CarBrand           string  `json:"car_brand"`
	CarModel           string  `json:"car_model"`
	CarImageURL        string  `json:"car_image_url,omitempty"`
	RenterID           string  `json:"renter_id"`
	RenterName         string  `json:"renter_name"`
	RenterEmail        string  `json:"renter_email,omitempty"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	TotalPrice         float64 `json:"total_price"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes,omitempty"`
	CreatedAt          string  `json:"created_at"`
	ConfirmedAt        string  `json:"confirmed_at,omitempty"`
	CancelledAt        string  `json:"cancelled_at,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
}

type CalendarReservationResponse struct {
	ID          string  `json:"id"`
	CarID       string  `json:"car_id"`
	CarBrand    string  `json:"car_brand"`
	CarModel    string  `json:"car_model"`
	CarColor    string  `json:"car_color"`
	CarImageURL string  `json:"car_image_url,omitempty"`
	RenterName  string  `json:"renter_name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
}

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityResponse struct {
	IsAvailable      bool                `json:"is_available"`
	UnavailableDates []DateRangeResponse `json:"unavailable_dates"`
}

type CarResponse struct {
	CarID    string `json:"car_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	ImageURL string `json:"image_url,omitempty"`
}

type BidResponse struct {
	ID         string  `json:"id"`
	BidderName string  `json:"bidder_name"`
	AmountEur  float64 `json:"amount_eur"`
	CreatedAt  string  `json:"created_at"`
}

type AuctionResponse struct {
	ID              string        `json:"id"`
	CarID           string        `json:"car_id"`
	Car             CarResponse   `json:"car"`
	Description     string        `json:"description"`
	StartPriceEur   float64       `json:"start_price_eur"`
	BuyNowPriceEur  *float64      `json:"buy_now_price_eur,omitempty"`
	CurrentPriceEur float64       `json:"current_price_eur"`
	MinimumBidEur   float64       `json:"minimum_bid_eur"`
	StartsAt        string        `json:"starts_at"`
	EndsAt          string        `json:"ends_at"`
	IsActive        bool          `json:"is_active"`
	HasStarted      bool          `json:"has_started"`
	HasEnded        bool          `json:"has_ended"`
	Phase           string        `json:"phase"`
	Issues          []string      `json:"issues"`
	ImageURLs       []string      `json:"image_urls"`
	VideoURLs       []string      `json:"video_urls"`
	Bids            []BidResponse `json:"bids"`
}

// FormatTime renders timestamps the way every response does
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

// NewReservationResponse flattens a joined reservation
func NewReservationResponse(d models.ReservationDetails) ReservationResponse {
	return ReservationResponse{
		ID:                 d.ID,
		CarID:              d.CarID,
		CarBrand:           d.Car.Brand,
		CarModel:           d.Car.Model,
		CarImageURL:        d.Car.ImageURL,
		RenterID:           d.RenterID,
		RenterName:         d.Renter.Name,
		RenterEmail:        d.Renter.Email,
		StartDate:          FormatTime(d.StartDate),
		EndDate:            FormatTime(d.EndDate),
		TotalPrice:         d.TotalPrice,
		Status:             string(d.Status),
		Notes:              d.Notes,
		CreatedAt:          FormatTime(d.CreatedAt),
		ConfirmedAt:        formatOptionalTime(d.ConfirmedAt),
		CancelledAt:        formatOptionalTime(d.CancelledAt),
		CancellationReason: d.CancellationReason,
	}
}

func NewReservationResponses(ds []models.ReservationDetails) []ReservationResponse {
	return lo.Map(ds, func(d models.ReservationDetails, _ int) ReservationResponse {
		return NewReservationResponse(d)
	})
}

func NewCalendarResponses(entries []models.CalendarEntry) []CalendarReservationResponse {
	return lo.Map(entries, func(e models.CalendarEntry, _ int) CalendarReservationResponse {
		return CalendarReservationResponse{
			ID:          e.ReservationID,
			CarID:       e.Car.CarID,
			CarBrand:    e.Car.Brand,
			CarModel:    e.Car.Model,
			CarColor:    e.Car.Color,
			CarImageURL: e.Car.ImageURL,
			RenterName:  e.RenterName,
			StartDate:   FormatTime(e.StartDate),
			EndDate:     FormatTime(e.EndDate),
			TotalPrice:  e.TotalPrice,
			Status:      string(e.Status),
		}
	})
}

func NewAvailabilityResponse(a models.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		IsAvailable: a.IsAvailable,
		UnavailableDates: lo.Map(a.UnavailableDates, func(r models.DateRange, _ int) DateRangeResponse {
			return DateRangeResponse{StartDate: FormatTime(r.StartDate), EndDate: FormatTime(r.EndDate)}
		}),
	}
}

// NewAuctionResponse maps the engine's read model. Bidder ids are not exposed.
func NewAuctionResponse(v models.AuctionView) AuctionResponse {
	return AuctionResponse{
		ID:    v.AuctionID,
		CarID: v.CarID,
		Car: CarResponse{
			CarID:    v.Car.CarID,
			Brand:    v.Car.Brand,
			Model:    v.Car.Model,
			Color:    v.Car.Color,
			ImageURL: v.Car.ImageURL,
		},
		Description:     v.Description,
		StartPriceEur:   v.StartPriceEur,
		BuyNowPriceEur:  v.BuyNowPriceEur,
		CurrentPriceEur: v.CurrentPriceEur,
		MinimumBidEur:   v.MinimumBidEur,
		StartsAt:        FormatTime(v.StartsAt),
		EndsAt:          FormatTime(v.EndsAt),
		IsActive:        v.IsActive,
		HasStarted:      v.HasStarted,
		HasEnded:        v.HasEnded,
		Phase:           string(v.Phase),
		Issues:          nonNil(v.Issues),
		ImageURLs:       nonNil(v.ImageURLs),
		VideoURLs:       nonNil(v.VideoURLs),
		Bids: lo.Map(v.Bids, func(b models.AuctionBid, _ int) BidResponse {
			return BidResponse{
				ID:         b.BidID,
				BidderName: b.BidderName,
				AmountEur:  b.AmountEur,
				CreatedAt:  FormatTime(b.CreatedAt),
			}
		}),
	}
}

func NewAuctionResponses(vs []models.AuctionView) []AuctionResponse {
	return lo.Map(vs, func(v models.AuctionView, _ int) AuctionResponse {
		return NewAuctionResponse(v)
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
