// Package api defines the one stable contract the orchestrator and any
// presentation layer program against, regardless of whether the binding talks
// to the remote backend or to the in-memory mock.
package api

import (
	"context"
	"time"

	"auctionfront/internal/domain"
)

// Sort orders accepted by SearchAuctions.
const (
	SortLatest  = "LATEST"
	SortPopular = "POPULAR"
)

// SearchFilter narrows an auction search. Page is 0-based; bindings that talk
// to the remote backend translate to its 1-based pages.
type SearchFilter struct {
	Page     int
	Size     int
	Keyword  string
	Category domain.AuctionCategory
	Status   domain.AuctionStatus
	Sort     string
}

// SearchResult is one page of auction projections.
// TotalPages == ceil(total matching / Size); a page at or past TotalPages is
// an empty item list, not an error.
type SearchResult struct {
	Items      []domain.AuctionItem `json:"items"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"totalPages"`
}

// CreateAuctionInput carries the fields of a new auction listing.
type CreateAuctionInput struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    domain.AuctionCategory `json:"category"`
	StartPrice  int64                  `json:"startPrice"`
	BuyNowPrice *int64                 `json:"buyNowPrice,omitempty"`
	StartAt     time.Time              `json:"startAt"`
	EndAt       time.Time              `json:"endAt"`
}

// ImageUpload is an image attached to a new auction.
type ImageUpload struct {
	Filename string
	Data     []byte
}

type SignupInput struct {
	Nickname    string `json:"nickname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Client is the API client abstraction. Implemented by httpapi (remote
// backend) and mockapi (in-memory simulation); selected once at composition
// time. Every mutating operation checks the session first and returns
// domain.ErrAuthRequired without touching the network when signed out.
type Client interface {
	SearchAuctions(ctx context.Context, filter SearchFilter) (*SearchResult, error)
	GetAuctionByID(ctx context.Context, id int64) (*domain.AuctionItem, error)
	CreateAuction(ctx context.Context, in CreateAuctionInput, images []ImageUpload) (*domain.AuctionItem, error)

	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Logout() error
	IsAuthenticated() bool
	CurrentUser() *domain.User
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	PlaceBid(ctx context.Context, auctionID, amount int64) (*domain.Bid, error)
	GetMyBids(ctx context.Context) ([]domain.Bid, error)
	GetAuctionBids(ctx context.Context, auctionID int64) ([]domain.Bid, error)

	BuyNow(ctx context.Context, auctionID int64) (string, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetPublicOrder(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrderByAuctionID(ctx context.Context, auctionID int64) (*domain.Order, error)
	GetMyOrders(ctx context.Context) ([]domain.Order, error)
	ConfirmPayment(ctx context.Context, paymentKey, orderID string, amount int64) error

	GetCart(ctx context.Context) (*domain.Cart, error)
	GetCartItemCount(ctx context.Context) (int, error)
	AddItemToCart(ctx context.Context, auctionID int64) error
	RemoveItemFromCart(ctx context.Context, cartItemID int64) error
	BuyNowFromCart(ctx context.Context, cartItemIDs []int64) ([]string, error)
	BuyNowAllCart(ctx context.Context) ([]string, error)
	ClearExpiredItems(ctx context.Context) error

	GetSettlementHistory(ctx context.Context) (*domain.Settlement, error)
	GetAllSettlements(ctx context.Context) ([]domain.Settlement, error)
	GetSettlementPendings(ctx context.Context) ([]domain.SettlementPendingItem, error)
}

// ValidateCreateAuction is the client-side fast-fail check; the backend stays
// authoritative and re-validates the same rules.
func ValidateCreateAuction(in CreateAuctionInput, now time.Time) error {
	switch {
	case in.Title == "":
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "title is required"}
	case in.Description == "":
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "description is required"}
	case in.StartPrice <= 0:
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "start price must be positive"}
	case in.BuyNowPrice != nil && *in.BuyNowPrice <= in.StartPrice:
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "buy-now price must exceed start price"}
	case !in.StartAt.After(now):
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "start time must be in the future"}
	case !in.EndAt.After(in.StartAt):
		return &domain.CodedError{Kind: domain.ErrValidationFailed, Code: domain.CodeValidationFailed, Message: "end time must be after start time"}
	}
	return nil
}
