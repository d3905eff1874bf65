package auctionerrors

import "errors"

// Account and session errors
var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrWeakPassword       = errors.New("password does not meet minimum length")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Repository-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrDuplicateAuction = errors.New("auction id already exists")
	ErrNoBids           = errors.New("no bids found for auction")
)

// business logic errors
var (
	ErrInvalidAuction = errors.New("invalid auction parameters")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrAuctionClosed  = errors.New("auction is closed")
	ErrSelfBid        = errors.New("seller cannot bid on own auction")
	ErrNotSeller      = errors.New("only the seller may close the auction")
)
