package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type CreateAuctionRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	StartingPrice   float64 `json:"starting_price" binding:"required,gt=0"`
	MinIncrement    float64 `json:"min_increment" binding:"omitempty,gt=0"`
	DurationSeconds int64   `json:"duration_seconds" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type CloseAuctionRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	Bidder    string  `json:"bidder"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string       `json:"auction_id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Seller        string       `json:"seller"`
	StartingPrice float64      `json:"starting_price"`
	MinIncrement  float64      `json:"min_increment"`
	CloseTime     string       `json:"close_time"`
	Status        string       `json:"status"`
	HighestBid    *BidResponse `json:"highest_bid,omitempty"`
}
