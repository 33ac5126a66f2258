package httpapi

import (
	"context"
	"net/http"

	"auctionfront/internal/domain"
)

func (c *Client) GetSettlementHistory(ctx context.Context) (*domain.Settlement, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var settlement domain.Settlement
	if err := c.do(ctx, http.MethodGet, "/api/settlements/me/latest", nil, nil, &settlement); err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (c *Client) GetAllSettlements(ctx context.Context) ([]domain.Settlement, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var settlements []domain.Settlement
	if err := c.do(ctx, http.MethodGet, "/api/settlements/me", nil, nil, &settlements); err != nil {
		return nil, err
	}
	return settlements, nil
}

func (c *Client) GetSettlementPendings(ctx context.Context) ([]domain.SettlementPendingItem, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var pendings []domain.SettlementPendingItem
	if err := c.do(ctx, http.MethodGet, "/api/settlements/me/pendings", nil, nil, &pendings); err != nil {
		return nil, err
	}
	return pendings, nil
}
