package mockserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"auctionfront/internal/api/mockapi"
)

// buildRouter wires the API routes. The surface mirrors what the remote
// backend exposes so the httpapi binding works against either.
func buildRouter(backend *mockapi.Backend, logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	// The storefront dev server runs on another origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)

	h := &handlers{backend: backend, logger: logger}

	apiGroup := router.Group("/api")
	apiGroup.POST("/auth/login", h.login)
	apiGroup.POST("/users/signup", h.signup)
	apiGroup.GET("/users/:id", h.getUser)

	apiGroup.GET("/auctions", h.searchAuctions)
	apiGroup.GET("/auctions/:id", h.getAuction)
	apiGroup.GET("/auctions/:id/bids", h.auctionBids)
	apiGroup.GET("/orders/:orderId/public", h.publicOrder)

	auth := apiGroup.Group("", h.requireAuth)
	auth.POST("/auctions/:id/bids", h.placeBid)
	auth.POST("/auctions/:id/buy-now", h.buyNow)
	auth.GET("/bids/me", h.myBids)
	auth.GET("/orders/me", h.myOrders)
	auth.GET("/orders/:orderId", h.getOrder)
	auth.GET("/orders/by-auction/:auctionId", h.orderByAuction)
	auth.POST("/payments/confirm", h.confirmPayment)
	auth.GET("/carts/me", h.getCart)
	auth.GET("/carts/me/count", h.cartCount)
	auth.POST("/carts/me/items", h.addCartItem)
	auth.DELETE("/carts/me/items/:id", h.removeCartItem)
	auth.POST("/carts/me/buy-now", h.cartBuyNow)
	auth.POST("/carts/me/buy-now-all", h.cartBuyNowAll)
	auth.DELETE("/carts/me/expired", h.clearExpired)
	auth.GET("/settlements/me", h.settlements)
	auth.GET("/settlements/me/latest", h.latestSettlement)
	auth.GET("/settlements/me/pendings", h.settlementPendings)

	v1 := router.Group("/api/v1", h.requireAuth)
	v1.POST("/auctions", h.createAuction)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
