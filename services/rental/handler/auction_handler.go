package handler

import (
	"context"
	"net/http"
	"time"

	auction "car-rental-core/internal/auctionService"
	"car-rental-core/internal/models"
	"car-rental-core/services/rental/helpers"
	"car-rental-core/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	GetActive(ctx context.Context, now time.Time) ([]models.AuctionView, error)
	GetByID(ctx context.Context, auctionID string, now time.Time) (models.AuctionView, error)
	PlaceBid(ctx context.Context, in auction.PlaceBidInput, now time.Time) (models.AuctionView, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	now     func() time.Time
}

// NewAuctionHandler creates a handler; a nil clock means time.Now in UTC
func NewAuctionHandler(service AuctionServiceInterface, now func() time.Time) *AuctionHandler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &AuctionHandler{service: service, now: now}
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	views, err := h.service.GetActive(c.Request.Context(), h.now())
	if err != nil {
		helpers.RespondError(c, "ListActiveAuctionsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponses(views), "auctions retrieved successfully")
	helpers.LogSuccess("ListActiveAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(views),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	view, err := h.service.GetByID(c.Request.Context(), auctionID, h.now())
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(view), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"phase":      string(view.Phase),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids. Anonymous bids are allowed.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	caller := helpers.OptionalCaller(c)
	view, err := h.service.PlaceBid(c.Request.Context(), auction.PlaceBidInput{
		AuctionID:   auctionID,
		AmountEur:   req.AmountEur,
		BidderID:    caller.UserID,
		DisplayName: req.DisplayName,
		BidderEmail: caller.Email,
	}, h.now())
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"bidder_id":  caller.UserID,
			"amount_eur": req.AmountEur,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(view), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    auctionID,
		"bidder_id":     caller.UserID,
		"amount_eur":    req.AmountEur,
		"current_price": view.CurrentPriceEur,
	})
}
