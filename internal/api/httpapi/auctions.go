package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"auctionfront/internal/api"
	"auctionfront/internal/domain"
)

// searchResponse mirrors the backend's page shape, which counts pages from 1.
type searchResponse struct {
	Content    []domain.AuctionItem `json:"content"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"totalPages"`
}

func (c *Client) SearchAuctions(ctx context.Context, filter api.SearchFilter) (*api.SearchResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page+1))
	if filter.Size > 0 {
		query.Set("size", strconv.Itoa(filter.Size))
	}
	if filter.Keyword != "" {
		query.Set("keyword", filter.Keyword)
	}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/api/auctions", query, nil, &resp); err != nil {
		return nil, err
	}
	return &api.SearchResult{
		Items:      resp.Content,
		Page:       resp.Page - 1,
		Size:       resp.Size,
		TotalPages: resp.TotalPages,
	}, nil
}

func (c *Client) GetAuctionByID(ctx context.Context, id int64) (*domain.AuctionItem, error) {
	var item domain.AuctionItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/auctions/%d", id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateAuction posts a multipart form: a "request" part holding the listing
// JSON and one "images" part per upload.
func (c *Client) CreateAuction(ctx context.Context, in api.CreateAuctionInput, images []api.ImageUpload) (*domain.AuctionItem, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if err := api.ValidateCreateAuction(in, time.Now()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	part, err := form.CreateFormField("request")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, err
	}
	for _, img := range images {
		fw, err := form.CreateFormFile("images", img.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(img.Data); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/auctions", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var item domain.AuctionItem
	if err := c.send(req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type placeBidRequest struct {
	Amount int64 `json:"amount"`
}

func (c *Client) PlaceBid(ctx context.Context, auctionID, amount int64) (*domain.Bid, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var bid domain.Bid
	path := fmt.Sprintf("/api/auctions/%d/bids", auctionID)
	if err := c.do(ctx, http.MethodPost, path, nil, placeBidRequest{Amount: amount}, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

func (c *Client) GetMyBids(ctx context.Context) ([]domain.Bid, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	var bids []domain.Bid
	if err := c.do(ctx, http.MethodGet, "/api/bids/me", nil, nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (c *Client) GetAuctionBids(ctx context.Context, auctionID int64) ([]domain.Bid, error) {
	var bids []domain.Bid
	path := fmt.Sprintf("/api/auctions/%d/bids", auctionID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}
