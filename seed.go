package main

import (
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/repository"

	"github.com/samber/lo"
)

// seedDemoData adds sample cars, people and auctions to the in-memory repo
func seedDemoData(repo *repository.MemoryRepo, now time.Time) {
	users := []models.User{
		{UserID: "owner1", Name: "Olivia Owner", Email: "olivia@example.com"},
		{UserID: "owner2", Name: "Oscar Owner", Email: "oscar@example.com"},
		{UserID: "renter1", Name: "Anna Renter", Email: "anna@example.com"},
		{UserID: "bidder1", Name: "Clara Bidder", Email: "clara@example.com"},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "owner1", SubscriptionEndsAt: lo.ToPtr(now.AddDate(1, 0, 0))})
	repo.AddOwnerAccount(models.OwnerAccount{OwnerID: "owner2", TrialEndsAt: lo.ToPtr(now.AddDate(0, 0, 14))})

	cars := []models.Car{
		{CarID: "car1", OwnerID: "owner1", Brand: "Skoda", Model: "Octavia", Color: "blue", IsForRent: true, PricePerDay: 40},
		{CarID: "car2", OwnerID: "owner1", Brand: "Volkswagen", Model: "Golf", Color: "white", IsForRent: true, PricePerDay: 35},
		{CarID: "car3", OwnerID: "owner2", Brand: "BMW", Model: "320d", Color: "black", IsForRent: false, PricePerDay: 70},
		{CarID: "car4", OwnerID: "owner2", Brand: "Audi", Model: "A4", Color: "grey", IsForRent: false},
	}
	for _, c := range cars {
		repo.AddCar(c)
	}

	repo.AddAuction(models.Auction{
		AuctionID:      "auction1",
		CarID:          "car3",
		OwnerID:        "owner2",
		StartPriceEur:  9200,
		BuyNowPriceEur: lo.ToPtr(14500.0),
		StartsAt:       now.Add(-time.Hour),
		EndsAt:         now.AddDate(0, 0, 7),
		IsActive:       true,
		Description:    "Single owner, full service history",
		Issues:         []string{"stone chip on windscreen"},
		ImageURLs:      []string{},
		VideoURLs:      []string{},
	})
	repo.AddAuction(models.Auction{
		AuctionID:     "auction2",
		CarID:         "car4",
		OwnerID:       "owner2",
		StartPriceEur: 5000,
		StartsAt:      now.AddDate(0, 0, 2),
		EndsAt:        now.AddDate(0, 0, 9),
		IsActive:      true,
		Description:   "Winter tyres included",
		Issues:        []string{},
		ImageURLs:     []string{},
		VideoURLs:     []string{},
	})
}
