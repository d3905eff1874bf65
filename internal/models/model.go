package models

import "time"

// User represents a registered account. The password is never stored in
// clear; Salt and PasswordHash together allow verification only.
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	Salt         []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session represents an authenticated login, valid until ExpiresAt.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at the given time.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusOpen   AuctionStatus = "open"
	StatusClosed AuctionStatus = "closed"
)

// Auction represents a sellable item with a close time. HighestBid is nil
// until the first accepted bid.
type Auction struct {
	AuctionID     string        `json:"auction_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Seller        string        `json:"seller"`
	StartingPrice float64       `json:"starting_price"`
	MinIncrement  float64       `json:"min_increment"`
	CloseTime     time.Time     `json:"close_time"`
	Status        AuctionStatus `json:"status"`
	HighestBid    *Bid          `json:"highest_bid,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Bid represents an accepted bid on an auction.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
