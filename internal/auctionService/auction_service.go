package auction

import (
	"fmt"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// AuctionService defines the business logic for auctions and bidding
type AuctionService struct {
	store               repository.AuctionStore
	defaultMinIncrement float64
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, defaultMinIncrement float64) *AuctionService {
	return &AuctionService{
		store:               store,
		defaultMinIncrement: defaultMinIncrement,
	}
}

// CreateAuction validates the parameters, assigns a fresh id and stores the
// auction as Open with no highest bid. A zero minIncrement takes the
// configured default.
func (s *AuctionService) CreateAuction(seller, title, description string, startingPrice, minIncrement float64, closeTime time.Time) (models.Auction, error) {
	if minIncrement == 0 {
		minIncrement = s.defaultMinIncrement
	}
	if err := validateAuctionParams(seller, title, startingPrice, minIncrement, closeTime); err != nil {
		return models.Auction{}, err
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         title,
		Description:   description,
		Seller:        seller,
		StartingPrice: startingPrice,
		MinIncrement:  minIncrement,
		CloseTime:     closeTime.UTC(),
		Status:        models.StatusOpen,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for seller %s: %w", seller, err)
	}

	return auction, nil
}

// validateAuctionParams checks input validity for auction creation
func validateAuctionParams(seller, title string, startingPrice, minIncrement float64, closeTime time.Time) error {
	if seller == "" {
		return fmt.Errorf("service: %w - missing seller", auctionerrors.ErrInvalidAuction)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("service: %w - empty title", auctionerrors.ErrInvalidAuction)
	}
	if startingPrice <= 0 {
		return fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidAuction)
	}
	if minIncrement <= 0 {
		return fmt.Errorf("service: %w - non-positive minimum increment", auctionerrors.ErrInvalidAuction)
	}
	if !closeTime.After(time.Now()) {
		return fmt.Errorf("service: %w - close time must be in the future", auctionerrors.ErrInvalidAuction)
	}
	return nil
}

// PlaceBid validates the input and delegates the atomic check-then-act to
// the store; all business rules that depend on current auction state run
// under the auction's own lock there.
func (s *AuctionService) PlaceBid(auctionID, bidder string, amount float64) (models.Auction, models.Bid, error) {
	if auctionID == "" || bidder == "" {
		return models.Auction{}, models.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidder", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Auction{}, models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	auction, bid, err := s.store.PlaceBid(auctionID, bidder, amount)
	if err != nil {
		return models.Auction{}, models.Bid{}, fmt.Errorf("service: failed to place bid on auction %s by %s: %w", auctionID, bidder, err)
	}

	return auction, bid, nil
}

// GetAuction returns a snapshot of a single auction
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	return auction, nil
}

// ListActiveAuctions returns snapshots of all currently open auctions
func (s *AuctionService) ListActiveAuctions() ([]models.Auction, error) {
	auctions, err := s.store.ListActiveAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}
	return auctions, nil
}

// GetBidsForAuction returns the accepted bid history for an auction
func (s *AuctionService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.store.GetBidsForAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// CloseAuction closes an auction ahead of its close time on behalf of the
// seller
func (s *AuctionService) CloseAuction(auctionID, requester string) (models.Auction, error) {
	if auctionID == "" || requester == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auctionID or requester", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.store.CloseAuction(auctionID, requester)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
	}

	return auction, nil
}
