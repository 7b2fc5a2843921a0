package server

import (
	"time"

	handler "car-rental-core/services/rental/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(reservations handler.ReservationServiceInterface, auctions handler.AuctionServiceInterface, now func() time.Time) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	reservationHandler := handler.NewReservationHandler(reservations)
	auctionHandler := handler.NewAuctionHandler(auctions, now)

	res := router.Group("/reservations")
	{
		res.POST("", reservationHandler.CreateReservationHandler)
		res.POST("/availability", reservationHandler.CheckAvailabilityHandler)
		res.GET("/:id", reservationHandler.GetReservationHandler)
		res.PUT("/:id", reservationHandler.UpdateReservationHandler)
		res.DELETE("/:id", reservationHandler.DeleteReservationHandler)
		res.POST("/:id/confirm", reservationHandler.ConfirmReservationHandler)
		res.POST("/:id/cancel", reservationHandler.CancelReservationHandler)
	}

	cars := router.Group("/cars")
	{
		cars.GET("/:car_id/reservations", reservationHandler.ListCarReservationsHandler)
	}

	owners := router.Group("/owners")
	{
		owners.GET("/:owner_id/reservations", reservationHandler.ListOwnerReservationsHandler)
		owners.GET("/:owner_id/calendar", reservationHandler.OwnerCalendarHandler)
	}

	renters := router.Group("/renters")
	{
		renters.GET("/:renter_id/reservations", reservationHandler.ListRenterReservationsHandler)
	}

	auc := router.Group("/auctions")
	{
		auc.GET("", auctionHandler.ListActiveAuctionsHandler)
		auc.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auc.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
	}

	return router
}
