package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"auctionfront/internal/domain"
)

type buyNowResponse struct {
	OrderID string `json:"orderId"`
}

func (c *Client) BuyNow(ctx context.Context, auctionID int64) (string, error) {
	if err := c.requireAuth(); err != nil {
		return "", err
	}
	var resp buyNowResponse
	path := fmt.Sprintf("/api/auctions/%d/buy-now", auctionID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return "", err
	}
	if resp.OrderID == "" {
		return "", fmt.Errorf("%w: buy-now response missing order id", domain.ErrRequestFailed)
	}
	return resp.OrderID, nil
}

func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetPublicOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID+"/public", nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrderByAuctionID(ctx context.Context, auctionID int64) (*domain.Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var order domain.Order
	path := fmt.Sprintf("/api/orders/by-auction/%d", auctionID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetMyOrders(ctx context.Context) ([]domain.Order, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/me", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type confirmPaymentRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

func (c *Client) ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	body := confirmPaymentRequest{PaymentKey: paymentKey, OrderID: orderID, Amount: amount}
	return c.do(ctx, http.MethodPost, "/api/payments/confirm", nil, body, nil)
}
