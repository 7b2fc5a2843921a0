package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"car-rental-core/internal/access"
	auction "car-rental-core/internal/auctionService"
	"car-rental-core/internal/models"
	"car-rental-core/internal/repository"
	reservation "car-rental-core/internal/reservationService"
	"car-rental-core/internal/server"
	"car-rental-core/services/rental/helpers"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// testNow is the instant every service and handler in these tests sees
var testNow = time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

// SetupTestRouter initializes the router with a seeded in-memory repository and an enforcing access gate.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	repo.AddUser(models.User{UserID: "renter1", Name: "Anna", Email: "anna@example.com"})
	repo.AddUser(models.User{UserID: "renter2", Name: "Ben", Email: "ben@example.com"})
	repo.AddUser(models.User{UserID: "bidder1", Name: "Clara", Email: "clara@example.com"})
	repo.AddCar(models.Car{CarID: "car1", OwnerID: "owner1", Brand: "Skoda", Model: "Octavia", Color: "blue", IsForRent: true, PricePerDay: 40})
	repo.AddCar(models.Car{CarID: "car2", OwnerID: "owner2", Brand: "BMW", Model: "320d", Color: "black"})
	repo.AddCar(models.Car{CarID: "car3", OwnerID: "owner3", Brand: "Audi", Model: "A4"})
	repo.AddCar(models.Car{CarID: "car4", OwnerID: "owner3", Brand: "Audi", Model: "A6", IsForRent: true, PricePerDay: 55})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "owner1", SubscriptionEndsAt: lo.ToPtr(testNow.AddDate(1, 0, 0))})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "owner2", SubscriptionEndsAt: lo.ToPtr(testNow.AddDate(0, 1, 0))})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "owner3", TrialEndsAt: lo.ToPtr(testNow.Add(-time.Hour))})
	repo.AddAuction(models.Auction{
		AuctionID:     "auction1",
		CarID:         "car2",
		OwnerID:       "owner2",
		StartPriceEur: 5000,
		StartsAt:      testNow.Add(-time.Hour),
		EndsAt:        testNow.Add(24 * time.Hour),
		IsActive:      true,
	})
	repo.AddAuction(models.Auction{
		AuctionID:     "auction2",
		CarID:         "car3",
		OwnerID:       "owner3",
		StartPriceEur: 3000,
		StartsAt:      testNow.Add(-time.Hour),
		EndsAt:        testNow.Add(24 * time.Hour),
		IsActive:      true,
	})

	clock := func() time.Time { return testNow }
	gate := access.NewGate(access.Config{Enforce: true, TrialEnabled: true}, repo)
	reservations := reservation.NewReservationService(repo, repo, reservation.WithClock(clock), reservation.WithAccessChecker(gate))
	auctions := auction.NewBiddingService(repo, repo, gate)

	return server.SetupRouter(reservations, auctions, clock), repo
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, userID string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(helpers.HeaderUserID, userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

func createReservation(t *testing.T, router *gin.Engine, renterID, carID string, start, end time.Time) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, router, "POST", "/reservations", helpers.CreateReservationRequest{
		CarID:     carID,
		StartDate: start,
		EndDate:   end,
	}, renterID)
}
