package mockserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auctionfront/internal/domain"
)

func (h *handlers) buyNow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	order, err := h.backend.BuyNow(h.userID(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"orderId": order.OrderID})
}

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.backend.OrderForUser(h.userID(c), c.Param("orderId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

func (h *handlers) publicOrder(c *gin.Context) {
	order, err := h.backend.Order(c.Param("orderId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

func (h *handlers) orderByAuction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("auctionId"), 10, 64)
	if err != nil {
		respondErr(c, domain.ErrNotFound)
		return
	}
	order, err := h.backend.OrderByAuction(h.userID(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, order)
}

func (h *handlers) myOrders(c *gin.Context) {
	respond(c, http.StatusOK, h.backend.UserOrders(h.userID(c)))
}

type confirmPaymentRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

func (h *handlers) confirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, domain.ErrValidationFailed)
		return
	}
	if err := h.backend.ConfirmPayment(req.PaymentKey, req.OrderID, req.Amount); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"orderId": req.OrderID, "status": string(domain.OrderCompleted)})
}
