package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the auction storage interface for the auction system
type AuctionStore interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListActiveAuctions() ([]model.Auction, error)
	PlaceBid(auctionID, bidder string, amount float64) (model.Auction, model.Bid, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	CloseAuction(auctionID, requester string) (model.Auction, error)
}

// auctionEntry holds one auction's mutable state behind its own lock, so
// bids on different auctions never block each other.
type auctionEntry struct {
	mu      sync.Mutex
	auction model.Auction
	bids    []model.Bid
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// The registry mutex guards only the map structure (insert/lookup) and is
// never held across a bid validation sequence.
type MemoryRepo struct {
	mu                    sync.RWMutex
	auctions              map[string]*auctionEntry // key: auctionID
	allowStartingPriceBid bool
}

// NewMemoryRepo creates a new in-memory repository instance.
// allowStartingPriceBid controls whether a first bid equal to the starting
// price is accepted; by default a first bid must exceed it.
func NewMemoryRepo(allowStartingPriceBid bool) *MemoryRepo {
	return &MemoryRepo{
		auctions:              make(map[string]*auctionEntry),
		allowStartingPriceBid: allowStartingPriceBid,
	}
}

// CreateAuction inserts a new auction. The id must be unique.
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.AuctionID]; exists {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrDuplicateAuction)
	}
	r.auctions[auction.AuctionID] = &auctionEntry{auction: auction}
	return nil
}

// GetAuction returns a defensive snapshot of the auction, applying the lazy
// close transition if the close time has passed.
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	entry, err := r.lookup(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	closeIfDue(entry, time.Now().UTC())
	return snapshot(entry), nil
}

// ListActiveAuctions returns snapshots of all auctions that are open and not
// yet past their close time, evaluated against the clock at call time.
func (r *MemoryRepo) ListActiveAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	entries := make([]*auctionEntry, 0, len(r.auctions))
	for _, entry := range r.auctions {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	now := time.Now().UTC()
	active := make([]model.Auction, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		closeIfDue(entry, now)
		if entry.auction.Status == model.StatusOpen {
			active = append(active, snapshot(entry))
		}
		entry.mu.Unlock()
	}
	return active, nil
}

// PlaceBid atomically validates and applies a bid against one auction. The
// whole check-then-act sequence runs under the auction's own lock: the close
// transition, the seller check, the threshold check and the write are one
// unit, so a racing bid can never commit against a stale highest bid.
func (r *MemoryRepo) PlaceBid(auctionID, bidder string, amount float64) (model.Auction, model.Bid, error) {
	entry, err := r.lookup(auctionID)
	if err != nil {
		return model.Auction{}, model.Bid{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now().UTC()
	closeIfDue(entry, now)

	if entry.auction.Status == model.StatusClosed {
		return model.Auction{}, model.Bid{}, fmt.Errorf("place bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}
	if bidder == entry.auction.Seller {
		return model.Auction{}, model.Bid{}, fmt.Errorf("place bid on auction %s: %w", auctionID, auctionerrors.ErrSelfBid)
	}
	if !r.meetsThreshold(&entry.auction, amount) {
		return model.Auction{}, model.Bid{}, fmt.Errorf("place bid on auction %s: %w - minimum acceptable is %.2f",
			auctionID, auctionerrors.ErrBidTooLow, r.minAcceptable(&entry.auction))
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: now,
	}
	entry.auction.HighestBid = &bid
	entry.bids = append(entry.bids, bid)

	return snapshot(entry), bid, nil
}

// GetBidsForAuction returns a copy of the auction's accepted bid history in
// commit order.
func (r *MemoryRepo) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	entry, err := r.lookup(auctionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if len(entry.bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), entry.bids...), nil
}

// CloseAuction transitions an open auction to Closed ahead of its close
// time. Only the seller may do this; Closed is terminal either way.
func (r *MemoryRepo) CloseAuction(auctionID, requester string) (model.Auction, error) {
	entry, err := r.lookup(auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	closeIfDue(entry, time.Now().UTC())

	if entry.auction.Status == model.StatusClosed {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionClosed)
	}
	if requester != entry.auction.Seller {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrNotSeller)
	}

	entry.auction.Status = model.StatusClosed
	return snapshot(entry), nil
}

// lookup fetches an entry under the registry read lock only.
func (r *MemoryRepo) lookup(auctionID string) (*auctionEntry, error) {
	r.mu.RLock()
	entry, exists := r.auctions[auctionID]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return entry, nil
}

// meetsThreshold applies the bid-acceptance rule. Caller must hold the
// entry lock.
func (r *MemoryRepo) meetsThreshold(auction *model.Auction, amount float64) bool {
	if auction.HighestBid == nil {
		if r.allowStartingPriceBid {
			return amount >= auction.StartingPrice
		}
		return amount > auction.StartingPrice
	}
	return amount >= auction.HighestBid.Amount+auction.MinIncrement
}

// minAcceptable reports the threshold for error messages. Caller must hold
// the entry lock.
func (r *MemoryRepo) minAcceptable(auction *model.Auction) float64 {
	if auction.HighestBid == nil {
		return auction.StartingPrice
	}
	return auction.HighestBid.Amount + auction.MinIncrement
}

// closeIfDue applies the lazy close transition. Caller must hold the entry
// lock.
func closeIfDue(entry *auctionEntry, now time.Time) {
	if entry.auction.Status == model.StatusOpen && !now.Before(entry.auction.CloseTime) {
		entry.auction.Status = model.StatusClosed
	}
}

// snapshot copies the auction, including the highest bid, so callers never
// hold a live reference. Caller must hold the entry lock.
func snapshot(entry *auctionEntry) model.Auction {
	a := entry.auction
	if a.HighestBid != nil {
		bid := *a.HighestBid
		a.HighestBid = &bid
	}
	return a
}
