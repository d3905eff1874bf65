package auction

import (
	"errors"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests CreateAuction
func TestAuctionService_CreateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	// Table-driven test cases
	tests := []struct {
		name          string
		seller        string
		title         string
		startingPrice float64
		minIncrement  float64
		closeTime     time.Time
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:          "valid_auction",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  10,
			closeTime:     future,
			mockSetup: func() {
				mockStore.EXPECT().CreateAuction(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "zero_increment_takes_default",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  0,
			closeTime:     future,
			mockSetup: func() {
				mockStore.EXPECT().CreateAuction(gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_seller",
			seller:        "",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  10,
			closeTime:     future,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "blank_title",
			seller:        "alice",
			title:         "   ",
			startingPrice: 100,
			minIncrement:  10,
			closeTime:     future,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "zero_starting_price",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 0,
			minIncrement:  10,
			closeTime:     future,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "negative_starting_price",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: -50,
			minIncrement:  10,
			closeTime:     future,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "negative_increment",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  -1,
			closeTime:     future,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "close_time_in_the_past",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  10,
			closeTime:     past,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidAuction,
		},
		{
			name:          "store_fails",
			seller:        "alice",
			title:         "Vintage camera",
			startingPrice: 100,
			minIncrement:  10,
			closeTime:     future,
			mockSetup: func() {
				mockStore.EXPECT().CreateAuction(gomock.Any()).Return(errors.New("store write failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			auction, err := service.CreateAuction(tc.seller, tc.title, "description", tc.startingPrice, tc.minIncrement, tc.closeTime)

			if tc.expectError || tc.expectedError != nil {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
				return
			}

			require.NoError(t, err)

			// Validate generated AuctionID
			require.NotEmpty(t, auction.AuctionID)
			_, parseErr := uuid.Parse(auction.AuctionID)
			require.NoError(t, parseErr, "AuctionID should be a valid UUID")

			require.Equal(t, tc.seller, auction.Seller)
			require.Equal(t, model.StatusOpen, auction.Status)
			require.Nil(t, auction.HighestBid)

			if tc.minIncrement == 0 {
				require.Equal(t, 1.0, auction.MinIncrement)
			} else {
				require.Equal(t, tc.minIncrement, auction.MinIncrement)
			}
		})
	}
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidder        string
		amount        float64
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_bid",
			auctionID: "a1",
			bidder:    "bob",
			amount:    150,
			mockSetup: func() {
				bid := model.Bid{BidID: uuid.NewString(), AuctionID: "a1", Bidder: "bob", Amount: 150, CreatedAt: now}
				auction := model.Auction{AuctionID: "a1", Seller: "alice", Status: model.StatusOpen, HighestBid: &bid}
				mockStore.EXPECT().PlaceBid("a1", "bob", 150.0).Return(auction, bid, nil)
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidder:        "bob",
			amount:        150,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "empty_bidder",
			auctionID:     "a1",
			bidder:        "",
			amount:        150,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			auctionID:     "a1",
			bidder:        "bob",
			amount:        0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			auctionID:     "a1",
			bidder:        "bob",
			amount:        -50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "bid_too_low_from_store",
			auctionID: "a1",
			bidder:    "bob",
			amount:    105,
			mockSetup: func() {
				mockStore.EXPECT().PlaceBid("a1", "bob", 105.0).
					Return(model.Auction{}, model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "auction_closed_from_store",
			auctionID: "a1",
			bidder:    "bob",
			amount:    500,
			mockSetup: func() {
				mockStore.EXPECT().PlaceBid("a1", "bob", 500.0).
					Return(model.Auction{}, model.Bid{}, auctionerrors.ErrAuctionClosed)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrAuctionClosed,
		},
		{
			name:      "self_bid_from_store",
			auctionID: "a1",
			bidder:    "alice",
			amount:    500,
			mockSetup: func() {
				mockStore.EXPECT().PlaceBid("a1", "alice", 500.0).
					Return(model.Auction{}, model.Bid{}, auctionerrors.ErrSelfBid)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrSelfBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			auction, bid, err := service.PlaceBid(tc.auctionID, tc.bidder, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.ErrorIs(t, err, tc.expectedError)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.amount, bid.Amount)
			require.Equal(t, tc.bidder, bid.Bidder)
			require.NotNil(t, auction.HighestBid)
		})
	}
}

// Tests GetAuction
func TestAuctionService_GetAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	t.Run("valid_auction", func(t *testing.T) {
		mockStore.EXPECT().GetAuction("a1").Return(model.Auction{AuctionID: "a1", Seller: "alice"}, nil)

		auction, err := service.GetAuction("a1")
		require.NoError(t, err)
		require.Equal(t, "a1", auction.AuctionID)
	})

	t.Run("empty_auctionID", func(t *testing.T) {
		_, err := service.GetAuction("")
		require.Error(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		mockStore.EXPECT().GetAuction("missing").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)

		_, err := service.GetAuction("missing")
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})
}

// Tests ListActiveAuctions
func TestAuctionService_ListActiveAuctions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	expected := []model.Auction{
		{AuctionID: "a1", Seller: "alice", Status: model.StatusOpen},
		{AuctionID: "a2", Seller: "bob", Status: model.StatusOpen},
	}
	mockStore.EXPECT().ListActiveAuctions().Return(expected, nil)

	auctions, err := service.ListActiveAuctions()
	require.NoError(t, err)
	require.Equal(t, expected, auctions)
}

// Tests GetBidsForAuction
func TestAuctionService_GetBidsForAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	t.Run("valid_auction_with_bids", func(t *testing.T) {
		expected := []model.Bid{
			{BidID: "b1", AuctionID: "a1", Bidder: "bob", Amount: 110},
			{BidID: "b2", AuctionID: "a1", Bidder: "carol", Amount: 120},
		}
		mockStore.EXPECT().GetBidsForAuction("a1").Return(expected, nil)

		bids, err := service.GetBidsForAuction("a1")
		require.NoError(t, err)
		require.Equal(t, expected, bids)
	})

	t.Run("empty_auctionID", func(t *testing.T) {
		_, err := service.GetBidsForAuction("")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
	})

	t.Run("no_bids", func(t *testing.T) {
		mockStore.EXPECT().GetBidsForAuction("a2").Return(nil, auctionerrors.ErrNoBids)

		_, err := service.GetBidsForAuction("a2")
		require.ErrorIs(t, err, auctionerrors.ErrNoBids)
	})
}

// Tests CloseAuction
func TestAuctionService_CloseAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore, 1.0)

	t.Run("seller_closes", func(t *testing.T) {
		mockStore.EXPECT().CloseAuction("a1", "alice").
			Return(model.Auction{AuctionID: "a1", Seller: "alice", Status: model.StatusClosed}, nil)

		auction, err := service.CloseAuction("a1", "alice")
		require.NoError(t, err)
		require.Equal(t, model.StatusClosed, auction.Status)
	})

	t.Run("missing_requester", func(t *testing.T) {
		_, err := service.CloseAuction("a1", "")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidAuction)
	})

	t.Run("not_seller", func(t *testing.T) {
		mockStore.EXPECT().CloseAuction("a1", "bob").
			Return(model.Auction{}, auctionerrors.ErrNotSeller)

		_, err := service.CloseAuction("a1", "bob")
		require.ErrorIs(t, err, auctionerrors.ErrNotSeller)
	})
}
