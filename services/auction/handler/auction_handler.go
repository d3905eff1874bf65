package handler

import (
	"fmt"
	"net/http"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

// ContextUserKey is the gin context key under which the auth middleware
// stores the authenticated username.
const ContextUserKey = "auth.username"

type AuctionServiceInterface interface {
	CreateAuction(seller, title, description string, startingPrice, minIncrement float64, closeTime time.Time) (model.Auction, error)
	PlaceBid(auctionID, bidder string, amount float64) (model.Auction, model.Bid, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListActiveAuctions() ([]model.Auction, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	CloseAuction(auctionID, requester string) (model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// contextUsername returns the username placed in the context by the auth
// middleware. Reaching a protected handler without it is a programming
// defect scoped to this request.
func contextUsername(c *gin.Context) (string, bool) {
	username := c.GetString(ContextUserKey)
	if username == "" {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing authenticated user"), "authentication required")
		return "", false
	}
	return username, true
}

// CreateAuctionHandler handles POST /create_auction
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	seller, ok := contextUsername(c)
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	closeTime := time.Now().UTC().Add(time.Duration(req.DurationSeconds) * time.Second)
	auction, err := h.service.CreateAuction(seller, req.Title, req.Description, req.StartingPrice, req.MinIncrement, closeTime)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"seller":  seller,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller":     seller,
		"close_time": auction.CloseTime,
	})
}

// PlaceBidHandler handles POST /bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	bidder, ok := contextUsername(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auction, bid, err := h.service.PlaceBid(req.AuctionID, bidder, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder":     bidder,
			"error":      err.Error(),
		})
		return
	}

	resp := gin.H{
		"bid":     helpers.ToBidResponse(bid),
		"auction": helpers.ToAuctionResponse(auction),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder":     bidder,
		"amount":     bid.Amount,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListActiveAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		resp = append(resp, helpers.ToAuctionResponse(a))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "active auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetAuctionHandler handles GET /auction?id=
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Query("id")
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"status":     auction.Status,
	})
}

// GetAuctionBidsHandler handles GET /auction/bids?id=
func (h *AuctionHandler) GetAuctionBidsHandler(c *gin.Context) {
	auctionID := c.Query("id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if status != http.StatusOK {
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("GetAuctionBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
			return
		}
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetAuctionBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// CloseAuctionHandler handles POST /close_auction
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	requester, ok := contextUsername(c)
	if !ok {
		return
	}

	var req helpers.CloseAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseAuctionHandler", err)
		return
	}

	auction, err := h.service.CloseAuction(req.AuctionID, requester)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CloseAuctionHandler: failed to close auction", map[string]any{
			"handler":    "CloseAuctionHandler",
			"auction_id": req.AuctionID,
			"requester":  requester,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"requester":  requester,
	})
}
