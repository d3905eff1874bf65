package server

import (
	auction "auction-house/internal/auctionService"
	auth "auction-house/internal/authService"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, authService *auth.AuthService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)
	authHandler := handler.NewAuthHandler(authService)

	// public routes
	router.POST("/register", authHandler.RegisterHandler)
	router.POST("/login", authHandler.LoginHandler)
	router.GET("/auctions", auctionHandler.ListAuctionsHandler)
	router.GET("/auction", auctionHandler.GetAuctionHandler)
	router.GET("/auction/bids", auctionHandler.GetAuctionBidsHandler)

	// session-authenticated routes
	authRequired := AuthRequiredMiddleware(authService)
	router.POST("/logout", authRequired, authHandler.LogoutHandler)
	router.POST("/create_auction", authRequired, auctionHandler.CreateAuctionHandler)
	router.POST("/close_auction", authRequired, auctionHandler.CloseAuctionHandler)
	router.POST("/bid", authRequired, auctionHandler.PlaceBidHandler)

	return router
}
