package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"auctionfront/internal/domain"
)

func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var cart domain.Cart
	if err := c.do(ctx, http.MethodGet, "/api/carts/me", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

type cartCountResponse struct {
	Count int `json:"count"`
}

func (c *Client) GetCartItemCount(ctx context.Context) (int, error) {
	if err := c.requireAuth(); err != nil {
		return 0, err
	}
	var resp cartCountResponse
	if err := c.do(ctx, http.MethodGet, "/api/carts/me/count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

type addCartItemRequest struct {
	AuctionID int64 `json:"auctionId"`
}

func (c *Client) AddItemToCart(ctx context.Context, auctionID int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/carts/me/items", nil, addCartItemRequest{AuctionID: auctionID}, nil)
}

func (c *Client) RemoveItemFromCart(ctx context.Context, cartItemID int64) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/carts/me/items/%d", cartItemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type cartBuyNowRequest struct {
	CartItemIDs []int64 `json:"cartItemIds"`
}

type cartBuyNowResponse struct {
	OrderIDs []string `json:"orderIds"`
}

func (c *Client) BuyNowFromCart(ctx context.Context, cartItemIDs []int64) ([]string, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var resp cartBuyNowResponse
	err := c.do(ctx, http.MethodPost, "/api/carts/me/buy-now", nil, cartBuyNowRequest{CartItemIDs: cartItemIDs}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.OrderIDs, nil
}

func (c *Client) BuyNowAllCart(ctx context.Context) ([]string, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var resp cartBuyNowResponse
	if err := c.do(ctx, http.MethodPost, "/api/carts/me/buy-now-all", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.OrderIDs, nil
}

func (c *Client) ClearExpiredItems(ctx context.Context) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/carts/me/expired", nil, nil, nil)
}
