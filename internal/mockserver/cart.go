package mockserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auctionfront/internal/domain"
)

func (h *handlers) getCart(c *gin.Context) {
	respond(c, http.StatusOK, h.backend.Cart(h.userID(c)))
}

func (h *handlers) cartCount(c *gin.Context) {
	cart := h.backend.Cart(h.userID(c))
	respond(c, http.StatusOK, gin.H{"count": cart.ActiveItemCount})
}

type addCartItemRequest struct {
	AuctionID int64 `json:"auctionId"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	if err := h.backend.AddItemToCart(h.userID(c), req.AuctionID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"auctionId": req.AuctionID})
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	if err := h.backend.RemoveItemFromCart(h.userID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"removed": id})
}

type cartBuyNowRequest struct {
	CartItemIDs []int64 `json:"cartItemIds"`
}

func (h *handlers) cartBuyNow(c *gin.Context) {
	var req cartBuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	orderIDs, err := h.backend.BuyNowFromCart(h.userID(c), req.CartItemIDs)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"orderIds": orderIDs})
}

func (h *handlers) cartBuyNowAll(c *gin.Context) {
	orderIDs, err := h.backend.BuyNowAllCart(h.userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"orderIds": orderIDs})
}

func (h *handlers) clearExpired(c *gin.Context) {
	h.backend.ClearExpiredItems(h.userID(c))
	respond(c, http.StatusOK, gin.H{"cleared": true})
}
