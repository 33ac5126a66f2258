package domain

import "time"

type OrderType string

const (
	OrderAuctionWin OrderType = "AUCTION_WIN"
	OrderBuyNow     OrderType = "BUY_NOW"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order is created server-side in response to buy-now or cart checkout.
// PENDING becomes COMPLETED only via a confirmed payment callback; the
// PENDING -> CANCELLED transition is server-owned.
type Order struct {
	ID             int64       `json:"id"`
	OrderID        string      `json:"orderId"`
	AuctionID      int64       `json:"auctionId"`
	AuctionTitle   string      `json:"auctionTitle"`
	ThumbnailURL   string      `json:"thumbnailUrl,omitempty"`
	WinnerID       int64       `json:"winnerId"`
	WinnerNickname string      `json:"winnerNickname,omitempty"`
	SellerID       int64       `json:"sellerId"`
	SellerNickname string      `json:"sellerNickname,omitempty"`
	FinalPrice     int64       `json:"finalPrice"`
	OrderType      OrderType   `json:"orderType"`
	Status         OrderStatus `json:"status"`
	PaymentKey     string      `json:"paymentKey,omitempty"`
	PaidAt         *time.Time  `json:"paidAt,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}
