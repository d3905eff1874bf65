package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Credential and session failures share one message each, so responses never
// reveal whether a username exists or a token was ever issued.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction parameters"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidUsername):
		return http.StatusBadRequest, "invalid username"
	case errors.Is(err, auctionerrors.ErrWeakPassword):
		return http.StatusBadRequest, "password does not meet minimum length"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrInvalidSession):
		return http.StatusUnauthorized, "invalid or expired session"
	case errors.Is(err, auctionerrors.ErrNotSeller):
		return http.StatusForbidden, "only the seller may close the auction"
	case errors.Is(err, auctionerrors.ErrDuplicateUser):
		return http.StatusConflict, "username already exists"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "seller cannot bid on own auction"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToBidResponse converts a bid model to its response DTO
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		Bidder:    bid.Bidder,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponse converts an auction snapshot to its response DTO
func ToAuctionResponse(auction model.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:     auction.AuctionID,
		Title:         auction.Title,
		Description:   auction.Description,
		Seller:        auction.Seller,
		StartingPrice: auction.StartingPrice,
		MinIncrement:  auction.MinIncrement,
		CloseTime:     auction.CloseTime.UTC().Format(time.RFC3339),
		Status:        string(auction.Status),
	}
	if auction.HighestBid != nil {
		bid := ToBidResponse(*auction.HighestBid)
		resp.HighestBid = &bid
	}
	return resp
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
